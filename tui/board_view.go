// ABOUTME: Kanban pipeline board view
// ABOUTME: Stage columns with deal cards; selected deals move between stages
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pipecrm/models"
)

var stageColors = map[string]lipgloss.Color{
	"blue":   lipgloss.Color("4"),
	"purple": lipgloss.Color("5"),
	"yellow": lipgloss.Color("3"),
	"orange": lipgloss.Color("208"),
	"green":  lipgloss.Color("2"),
	"red":    lipgloss.Color("1"),
}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	cardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("170")).
				Padding(0, 1)
)

func (m Model) renderBoardView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("PIPECRM — PIPELINE"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	stages := m.store.Stages()
	colWidth := m.width/len(stages) - 2
	if colWidth < 16 {
		colWidth = 16
	}

	var columns []string
	for i, stage := range stages {
		columns = append(columns, m.renderStageColumn(i, stage, colWidth))
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))

	s.WriteString("\n")
	if m.err != nil {
		s.WriteString(errStyle.Render(fmt.Sprintf("error: %v", m.err)))
		s.WriteString("\n")
	}
	s.WriteString(helpStyle.Render("←/→ stage  ↑/↓ deal  shift+←/→ move deal  d delete  1-4 views  q quit"))

	return s.String()
}

func (m Model) renderStageColumn(idx int, stage models.PipelineStage, width int) string {
	color, ok := stageColors[stage.Color]
	if !ok {
		color = lipgloss.Color("7")
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Width(width).
		Render(stage.Name)

	deals := m.store.DealsByStage(stage.ID)
	var total float64
	for _, d := range deals {
		total += d.Value
	}
	sub := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Width(width).
		Render(fmt.Sprintf("%d deals · $%.0fK", len(deals), total/1000))

	parts := []string{header, sub}
	for j, d := range deals {
		style := cardStyle
		if idx == m.stageIdx && j == m.dealIdx {
			style = cardSelectedStyle
		}
		card := fmt.Sprintf("%s\n$%.0f · %d%%\n%s",
			truncate(d.Name, width-4), d.Value, d.Probability,
			truncate(m.store.ContactName(d.ContactID), width-4))
		parts = append(parts, style.Width(width-2).Render(card))
	}

	return lipgloss.NewStyle().Width(width).MarginRight(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func truncate(s string, max int) string {
	if max < 1 || len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func (m Model) handleBoardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	stages := m.store.Stages()

	switch msg.String() {
	case "left", "h":
		if m.stageIdx > 0 {
			m.stageIdx--
			m.dealIdx = 0
		}
	case "right", "l":
		if m.stageIdx < len(stages)-1 {
			m.stageIdx++
			m.dealIdx = 0
		}
	case "up", "k":
		if m.dealIdx > 0 {
			m.dealIdx--
		}
	case "down", "j":
		deals := m.store.DealsByStage(stages[m.stageIdx].ID)
		if m.dealIdx < len(deals)-1 {
			m.dealIdx++
		}
	case "shift+left", "H":
		return m.moveSelectedDeal(-1)
	case "shift+right", "L":
		return m.moveSelectedDeal(1)
	case "d":
		deals := m.store.DealsByStage(stages[m.stageIdx].ID)
		if m.dealIdx < len(deals) {
			deal := deals[m.dealIdx]
			m.deleteMessage = fmt.Sprintf("Delete deal %q and its activities?", deal.Name)
			m.confirmDelete = func() error { return m.store.DeleteDeal(deal.ID) }
			m.viewMode = ViewConfirmDelete
		}
	}

	return m, nil
}

// moveSelectedDeal shifts the selected deal one stage left or right and
// follows it into the target column.
func (m Model) moveSelectedDeal(delta int) (tea.Model, tea.Cmd) {
	stages := m.store.Stages()
	target := m.stageIdx + delta
	if target < 0 || target >= len(stages) {
		return m, nil
	}

	deals := m.store.DealsByStage(stages[m.stageIdx].ID)
	if m.dealIdx >= len(deals) {
		return m, nil
	}

	deal := deals[m.dealIdx]
	if _, err := m.store.MoveDealStage(deal.ID, stages[target].ID); err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.stageIdx = target
	moved := m.store.DealsByStage(stages[target].ID)
	for j, d := range moved {
		if d.ID == deal.ID {
			m.dealIdx = j
			break
		}
	}
	return m, nil
}
