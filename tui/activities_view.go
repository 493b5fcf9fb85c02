// ABOUTME: Activity feed view
// ABOUTME: Read-only list of recent activities, newest first
package tui

import (
	"fmt"
	"strings"

	"pipecrm/models"
)

var activityIcons = map[string]string{
	models.ActivityNote:    "📝",
	models.ActivityEmail:   "✉️ ",
	models.ActivityCall:    "📞",
	models.ActivityMeeting: "🤝",
	models.ActivityTask:    "☑️ ",
}

func (m Model) renderActivitiesView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("PIPECRM — ACTIVITY"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	limit := m.height - 10
	if limit < 5 {
		limit = 5
	}

	for _, a := range m.store.RecentActivities(limit) {
		icon, ok := activityIcons[a.Type]
		if !ok {
			icon = "•"
		}

		related := ""
		switch a.RelatedTo.Type {
		case models.RelatedContact:
			related = m.store.ContactName(a.RelatedTo.ID)
		case models.RelatedDeal:
			if d, err := m.store.DealByID(a.RelatedTo.ID); err == nil {
				related = d.Name
			} else {
				related = "Unknown Deal"
			}
		}

		s.WriteString(fmt.Sprintf("%s %s  %s — %s\n", icon,
			a.CreatedAt.Format("2006-01-02 15:04"), a.Title, related))
		if a.Description != "" {
			s.WriteString(fmt.Sprintf("     %s\n", truncate(a.Description, m.width-6)))
		}
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("1-4 views  q quit"))

	return s.String()
}
