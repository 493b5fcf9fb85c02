// ABOUTME: Terminal dashboard statistics and rendering
// ABOUTME: Provides ASCII dashboard for CRM overview
package viz

import (
	"fmt"
	"strings"
	"time"

	"pipecrm/store"
)

type DashboardStats struct {
	// Pipeline overview, in funnel order
	Pipeline []store.StageSummary

	// Overall stats
	TotalContacts   int
	TotalDeals      int
	OpenDeals       int
	OpenValue       float64
	TotalActivities int

	// Needs attention
	StaleContacts []StaleContact
	StaleDeals    []StaleDeal
}

type StaleContact struct {
	Name      string
	DaysSince int
}

type StaleDeal struct {
	Name      string
	DaysSince int
}

func GenerateDashboardStats(s *store.Store) *DashboardStats {
	stats := &DashboardStats{
		Pipeline:        s.StageSummaries(),
		TotalContacts:   len(s.Contacts()),
		TotalActivities: len(s.Activities()),
	}

	deals := s.Deals()
	stats.TotalDeals = len(deals)
	for _, d := range deals {
		if !d.IsClosed() {
			stats.OpenDeals++
			stats.OpenValue += d.Value
		}
	}

	now := time.Now()

	// Stale contacts (no contact in 30+ days)
	for _, c := range s.Contacts() {
		daysSince := int(now.Sub(c.LastContacted).Hours() / 24)
		if daysSince > 30 {
			stats.StaleContacts = append(stats.StaleContacts, StaleContact{
				Name:      c.Name,
				DaysSince: daysSince,
			})
		}
	}

	// Stale deals (open, untouched in 14+ days)
	for _, d := range deals {
		if d.IsClosed() {
			continue
		}
		daysSince := int(now.Sub(d.UpdatedAt).Hours() / 24)
		if daysSince > 14 {
			stats.StaleDeals = append(stats.StaleDeals, StaleDeal{
				Name:      d.Name,
				DaysSince: daysSince,
			})
		}
	}

	return stats
}

func RenderDashboard(stats *DashboardStats) string {
	var out strings.Builder

	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  PIPECRM DASHBOARD\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	out.WriteString("PIPELINE OVERVIEW\n")
	renderPipeline(&out, stats.Pipeline)
	out.WriteString("\n")

	out.WriteString("STATS\n")
	out.WriteString(fmt.Sprintf("  📇 %d contacts  💼 %d deals (%d open, $%.0fK in play)  📝 %d activities\n\n",
		stats.TotalContacts, stats.TotalDeals, stats.OpenDeals, stats.OpenValue/1000, stats.TotalActivities))

	if len(stats.StaleContacts) > 0 || len(stats.StaleDeals) > 0 {
		out.WriteString("NEEDS ATTENTION\n")

		if len(stats.StaleContacts) > 0 {
			out.WriteString(fmt.Sprintf("  ⚠️  %d contacts - no contact in 30+ days\n", len(stats.StaleContacts)))
		}

		if len(stats.StaleDeals) > 0 {
			out.WriteString(fmt.Sprintf("  ⚠️  %d deals - stale (untouched in 14+ days)\n", len(stats.StaleDeals)))
		}
	}

	return out.String()
}

func renderPipeline(out *strings.Builder, pipeline []store.StageSummary) {
	// Find max count for scaling
	maxCount := 0
	for _, ss := range pipeline {
		if ss.Count > maxCount {
			maxCount = ss.Count
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	for _, ss := range pipeline {
		// Bar length in 0-10 blocks
		barLength := (ss.Count * 10) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)

		out.WriteString(fmt.Sprintf("  %-13s %s  %2d ($%.0fK)\n",
			ss.Stage.Name, bar, ss.Count, ss.Value/1000))
	}
}
