// ABOUTME: Deal CLI commands
// ABOUTME: Deal lifecycle, stage moves, and pipeline listings
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"pipecrm/models"
	"pipecrm/store"
)

func nowUTC() time.Time { return time.Now().UTC() }

// AddDealCommand adds a new deal.
func AddDealCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-deal", flag.ExitOnError)
	name := fs.String("name", "", "Deal name (required)")
	value := fs.Float64("value", 0, "Deal value")
	stage := fs.String("stage", "", "Pipeline stage id (default lead)")
	contactID := fs.String("contact", "", "Contact ID the deal belongs to")
	probability := fs.Int("probability", 0, "Win probability 0-100")
	closeDate := fs.String("close", "", "Expected close date (YYYY-MM-DD)")
	notes := fs.String("notes", "", "Notes about the deal")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}
	if *value < 0 {
		return fmt.Errorf("--value must be non-negative")
	}

	patch := models.DealPatch{Name: name}
	if *value != 0 {
		patch.Value = value
	}
	if *stage != "" {
		patch.Stage = stage
	}
	if *contactID != "" {
		patch.ContactID = contactID
	}
	if *probability != 0 {
		patch.Probability = probability
	}
	if *notes != "" {
		patch.Notes = notes
	}
	if *closeDate != "" {
		t, err := time.Parse("2006-01-02", *closeDate)
		if err != nil {
			return fmt.Errorf("invalid --close date: %w", err)
		}
		patch.ExpectedCloseDate = &t
	}

	deal, err := st.AddDeal(patch)
	if err != nil {
		return fmt.Errorf("failed to create deal: %w", err)
	}

	fmt.Printf("✓ Deal created: %s (ID: %s)\n", deal.Name, deal.ID)
	fmt.Printf("  Stage: %s  Value: $%.0f  Contact: %s\n", deal.Stage, deal.Value, st.ContactName(deal.ContactID))
	return nil
}

// ListDealsCommand lists deals, optionally filtered by stage.
func ListDealsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-deals", flag.ExitOnError)
	stage := fs.String("stage", "", "Filter by pipeline stage id")
	_ = fs.Parse(args)

	deals := st.Deals()
	if *stage != "" {
		deals = st.DealsByStage(*stage)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVALUE\tSTAGE\tPROB\tCONTACT\tUPDATED")
	for _, d := range deals {
		fmt.Fprintf(w, "%s\t%s\t$%.0f\t%s\t%d%%\t%s\t%s\n",
			d.ID, d.Name, d.Value, d.Stage, d.Probability,
			st.ContactName(d.ContactID), d.UpdatedAt.Format("2006-01-02"))
	}
	return w.Flush()
}

// UpdateDealCommand updates fields on an existing deal. Only flags that
// were passed are applied; updatedAt refreshes either way.
func UpdateDealCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-deal", flag.ExitOnError)
	id := fs.String("id", "", "Deal ID (required)")
	name := fs.String("name", "", "Deal name")
	value := fs.Float64("value", 0, "Deal value")
	stage := fs.String("stage", "", "Pipeline stage id")
	contactID := fs.String("contact", "", "Contact ID")
	probability := fs.Int("probability", 0, "Win probability 0-100")
	notes := fs.String("notes", "", "Notes about the deal")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	var patch models.DealPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "value":
			patch.Value = value
		case "stage":
			patch.Stage = stage
		case "contact":
			patch.ContactID = contactID
		case "probability":
			patch.Probability = probability
		case "notes":
			patch.Notes = notes
		}
	})
	if patch.Value != nil && *patch.Value < 0 {
		return fmt.Errorf("--value must be non-negative")
	}

	deal, err := st.UpdateDeal(*id, patch)
	if err != nil {
		return fmt.Errorf("failed to update deal: %w", err)
	}

	fmt.Printf("✓ Deal updated: %s (stage %s)\n", deal.Name, deal.Stage)
	return nil
}

// MoveDealCommand moves a deal to another pipeline stage.
func MoveDealCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("move-deal", flag.ExitOnError)
	id := fs.String("id", "", "Deal ID (required)")
	stage := fs.String("stage", "", "Target stage id (required)")
	_ = fs.Parse(args)

	if *id == "" || *stage == "" {
		return fmt.Errorf("--id and --stage are required")
	}

	deal, err := st.MoveDealStage(*id, *stage)
	if err != nil {
		return fmt.Errorf("failed to move deal: %w", err)
	}

	fmt.Printf("✓ Deal moved: %s → %s\n", deal.Name, deal.Stage)
	return nil
}

// DeleteDealCommand deletes a deal along with its activities.
func DeleteDealCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-deal", flag.ExitOnError)
	id := fs.String("id", "", "Deal ID (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	if err := st.DeleteDeal(*id); err != nil {
		return fmt.Errorf("failed to delete deal: %w", err)
	}

	fmt.Printf("✓ Deal deleted (with its activities)\n")
	return nil
}

// ForecastCommand prints the open deals with the highest win probability.
// defaultLimit comes from the feed_limit config setting.
func ForecastCommand(st *store.Store, defaultLimit int, args []string) error {
	fs := flag.NewFlagSet("forecast", flag.ExitOnError)
	limit := fs.Int("limit", defaultLimit, "Number of deals to show")
	_ = fs.Parse(args)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVALUE\tPROB\tSTAGE\tCONTACT")
	for _, d := range st.Forecast(*limit) {
		fmt.Fprintf(w, "%s\t$%.0f\t%d%%\t%s\t%s\n",
			d.Name, d.Value, d.Probability, d.Stage, st.ContactName(d.ContactID))
	}
	return w.Flush()
}
