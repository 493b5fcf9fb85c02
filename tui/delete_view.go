// ABOUTME: Delete confirmation view for TUI
// ABOUTME: Confirms cascade deletes before they run
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	confirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 2).
			Width(60).
			Align(lipgloss.Center)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	confirmButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("9")).
				Padding(0, 2).
				MarginRight(2)

	cancelButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("8")).
				Padding(0, 2)
)

func (m Model) renderConfirmDeleteView() string {
	var s strings.Builder

	s.WriteString(warningStyle.Render("⚠ CONFIRM DELETE"))
	s.WriteString("\n\n")
	s.WriteString(m.deleteMessage)
	s.WriteString("\n\n")
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		confirmButtonStyle.Render("y: delete"),
		cancelButtonStyle.Render("n: cancel")))

	return confirmBoxStyle.Render(s.String())
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.confirmDelete != nil {
			if err := m.confirmDelete(); err != nil {
				m.err = err
			}
		}
		m.confirmDelete = nil
		m.dealIdx = 0
		m.contactIdx = 0
		m.viewMode = ViewBoard
	case "n", "N", "esc":
		m.confirmDelete = nil
		m.viewMode = ViewBoard
	}

	return m, nil
}
