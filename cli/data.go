// ABOUTME: Data management CLI commands
// ABOUTME: Export snapshots, clear persisted data, render the deal graph
package cli

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"pipecrm/export"
	"pipecrm/store"
	"pipecrm/viz"
)

// Clearer deletes the persisted collection keys.
type Clearer interface {
	Clear() error
}

// ExportCommand writes a snapshot of contacts, deals, and activities to a
// file. One-way; there is no import.
func ExportCommand(st *store.Store, exportDir string, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	format := fs.String("format", "json", "Export format: json or xlsx")
	out := fs.String("out", "", "Output file (default: timestamped name in the export dir)")
	_ = fs.Parse(args)

	snap := export.NewSnapshot(st)

	path := *out
	if path == "" {
		path = filepath.Join(exportDir, export.DefaultFileName(snap, *format))
	}

	switch *format {
	case "json":
		if err := export.WriteJSON(snap, path); err != nil {
			return err
		}
	case "xlsx":
		if err := export.WriteXLSX(snap, path); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want json or xlsx)", *format)
	}

	fmt.Printf("✓ Exported %d contacts, %d deals, %d activities to %s\n",
		len(snap.Contacts), len(snap.Deals), len(snap.Activities), path)
	return nil
}

// ClearDataCommand deletes the persisted collections. The change shows on
// the next start; any session already running keeps its in-memory state.
func ClearDataCommand(repo Clearer, args []string) error {
	fs := flag.NewFlagSet("clear-data", flag.ExitOnError)
	yes := fs.Bool("yes", false, "Confirm deletion of all persisted data")
	_ = fs.Parse(args)

	if !*yes {
		return fmt.Errorf("refusing to clear data without --yes")
	}

	if err := repo.Clear(); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}

	fmt.Println("✓ Persisted data cleared. Seed data returns on next start.")
	return nil
}

// GraphCommand renders the contact→deal network as DOT or PNG.
func GraphCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("graph", flag.ExitOnError)
	out := fs.String("out", "", "Write a PNG to this path instead of printing DOT")
	_ = fs.Parse(args)

	ctx := context.Background()
	if *out != "" {
		if err := viz.RenderDealGraphPNG(ctx, st, *out); err != nil {
			return err
		}
		fmt.Printf("✓ Graph written to %s\n", *out)
		return nil
	}

	dot, err := viz.GenerateDealGraph(ctx, st)
	if err != nil {
		return err
	}
	fmt.Print(dot)
	return nil
}
