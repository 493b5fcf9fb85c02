// ABOUTME: Contacts list view
// ABOUTME: Bubbles table of contacts with delete confirmation
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) renderContactsView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("PIPECRM — CONTACTS"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Company", Width: 18},
		{Title: "Status", Width: 10},
		{Title: "Email", Width: 28},
		{Title: "Last Contacted", Width: 14},
	}

	var rows []table.Row
	for _, c := range m.store.Contacts() {
		rows = append(rows, table.Row{
			c.Name,
			c.Company,
			c.Status,
			c.Email,
			c.LastContacted.Format("2006-01-02"),
		})
	}

	height := m.height - 12
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	if m.contactIdx < len(rows) {
		t.SetCursor(m.contactIdx)
	}
	s.WriteString(t.View())

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("↑/↓ select  d delete (cascades to deals)  1-4 views  q quit"))

	return s.String()
}

func (m Model) handleContactsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	contacts := m.store.Contacts()

	switch msg.String() {
	case "up", "k":
		if m.contactIdx > 0 {
			m.contactIdx--
		}
	case "down", "j":
		if m.contactIdx < len(contacts)-1 {
			m.contactIdx++
		}
	case "d":
		if m.contactIdx < len(contacts) {
			contact := contacts[m.contactIdx]
			m.deleteMessage = fmt.Sprintf("Delete contact %q, their deals, and their contact activities?", contact.Name)
			m.confirmDelete = func() error { return m.store.DeleteContact(contact.ID) }
			m.viewMode = ViewConfirmDelete
		}
	}

	return m, nil
}
