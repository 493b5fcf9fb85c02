// ABOUTME: Dashboard view with forecast and feeds
// ABOUTME: Read-only; renders derived views from the store
package tui

import (
	"fmt"
	"strings"

	"pipecrm/viz"
)

func (m Model) renderDashboardView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("PIPECRM — DASHBOARD"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	stats := viz.GenerateDashboardStats(m.store)
	s.WriteString(viz.RenderDashboard(stats))
	s.WriteString("\n")

	s.WriteString("FORECAST (top open deals by probability)\n")
	for _, d := range m.store.Forecast(5) {
		s.WriteString(fmt.Sprintf("  %3d%%  %-35s $%.0f\n", d.Probability, truncate(d.Name, 35), d.Value))
	}
	s.WriteString("\n")

	s.WriteString("METRICS\n")
	for _, metric := range m.store.Metrics() {
		s.WriteString(fmt.Sprintf("  %-22s %10.0f  (%+.1f%% %s)\n",
			metric.Name, metric.Value, metric.Change, metric.Period))
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("1-4 views  q quit"))

	return s.String()
}
