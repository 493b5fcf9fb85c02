// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Full-screen pipeline board, dashboard, and record lists
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pipecrm/store"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewBoard ViewMode = iota
	ViewDashboard
	ViewContacts
	ViewActivities
	ViewConfirmDelete
)

// Model is the main bubbletea model
type Model struct {
	store    *store.Store
	viewMode ViewMode

	// Board view state
	stageIdx int
	dealIdx  int

	// Contacts view state
	contactIdx int

	// Delete confirmation state
	deleteMessage string
	confirmDelete func() error

	// UI state
	width  int
	height int
	err    error
}

// NewModel creates a new TUI model
func NewModel(st *store.Store) Model {
	return Model{
		store:    st,
		viewMode: ViewBoard,
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewBoard:
		return m.renderBoardView()
	case ViewDashboard:
		return m.renderDashboardView()
	case ViewContacts:
		return m.renderContactsView()
	case ViewActivities:
		return m.renderActivitiesView()
	case ViewConfirmDelete:
		return m.renderConfirmDeleteView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "1":
		m.viewMode = ViewBoard
		return m, nil
	case "2":
		m.viewMode = ViewDashboard
		return m, nil
	case "3":
		m.viewMode = ViewContacts
		return m, nil
	case "4":
		m.viewMode = ViewActivities
		return m, nil
	}

	// Delegate to view-specific handlers
	switch m.viewMode {
	case ViewBoard:
		return m.handleBoardKeys(msg)
	case ViewContacts:
		return m.handleContactsKeys(msg)
	case ViewConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	}

	return m, nil
}

func (m Model) renderTabs() string {
	tabs := []string{"Board", "Dashboard", "Contacts", "Activity"}
	var rendered []string

	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)
