// ABOUTME: Pipeline board and analytics CLI commands
// ABOUTME: Per-stage summaries, dashboard, trends, and histogram output
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"pipecrm/store"
	"pipecrm/viz"
)

// BoardCommand prints the kanban board as per-stage columns.
func BoardCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("board", flag.ExitOnError)
	_ = fs.Parse(args)

	for _, ss := range st.StageSummaries() {
		fmt.Printf("%s — %d deals, $%.0f\n", ss.Stage.Name, ss.Count, ss.Value)
		for _, d := range st.DealsByStage(ss.Stage.ID) {
			fmt.Printf("  • %s  $%.0f  %d%%  (%s)\n", d.Name, d.Value, d.Probability, st.ContactName(d.ContactID))
		}
	}
	return nil
}

// DashboardCommand prints the ASCII dashboard plus the recent activity
// feed. feedLimit comes from the feed_limit config setting.
func DashboardCommand(st *store.Store, feedLimit int, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	_ = fs.Parse(args)

	stats := viz.GenerateDashboardStats(st)
	fmt.Print(viz.RenderDashboard(stats))

	fmt.Println("\nRECENT ACTIVITY")
	for _, a := range st.RecentActivities(feedLimit) {
		fmt.Printf("  [%s] %s  %s\n", a.Type, a.Title, a.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

// TrendsCommand prints the trailing six months of deal flow and contact
// acquisition.
func TrendsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("trends", flag.ExitOnError)
	_ = fs.Parse(args)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tDEALS\tVALUE\tWON\tNEW CONTACTS")
	acquisition := st.ContactAcquisition(nowUTC())
	for i, b := range st.MonthlyTrends(nowUTC()) {
		fmt.Fprintf(w, "%s\t%d\t$%.0f\t$%.0f\t%d\n",
			b.Label, b.DealCount, b.Value, b.WonValue, acquisition[i].Count)
	}
	return w.Flush()
}

// HistogramCommand prints the deal-size distribution.
func HistogramCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("histogram", flag.ExitOnError)
	_ = fs.Parse(args)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BUCKET\tDEALS\tVALUE")
	for _, b := range st.DealSizeHistogram() {
		fmt.Fprintf(w, "%s\t%d\t$%.0f\n", b.Label, b.Count, b.Value)
	}
	return w.Flush()
}

// MetricsCommand prints the static sales metric snapshot.
func MetricsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("metrics", flag.ExitOnError)
	_ = fs.Parse(args)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE\tPREVIOUS\tCHANGE\tPERIOD")
	for _, m := range st.Metrics() {
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%+.1f%%\t%s\n", m.Name, m.Value, m.PreviousValue, m.Change, m.Period)
	}
	return w.Flush()
}
