// ABOUTME: Entry point for the pipecrm CLI and TUI
// ABOUTME: Routes subcommands against a store backed by the local KV repository
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"pipecrm/cli"
	"pipecrm/config"
	"pipecrm/kvstore"
	"pipecrm/store"
	"pipecrm/tui"
)

const version = "0.1.0"

func main() {
	// .env is optional; env vars override config file values
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Show version and exit")
	dataDir := flag.String("data-dir", "", "KV store path (default: xdg data dir)")
	ephemeral := flag.Bool("ephemeral", false, "Run on seed data only, nothing persisted")
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("pipecrm version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	var repo store.Repository
	var clearer cli.Clearer
	if *ephemeral {
		mem := kvstore.NewMemory()
		repo, clearer = mem, mem
	} else {
		kv, err := kvstore.Open(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to open data store: %v", err)
		}
		defer kv.Close()
		repo, clearer = kv, kv
	}

	st, err := store.New(repo)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	// Contact commands
	case "add-contact":
		run(cli.AddContactCommand(st, commandArgs))
	case "list-contacts":
		run(cli.ListContactsCommand(st, commandArgs))
	case "update-contact":
		run(cli.UpdateContactCommand(st, commandArgs))
	case "delete-contact":
		run(cli.DeleteContactCommand(st, commandArgs))
	case "show-contact":
		run(cli.ShowContactCommand(st, commandArgs))

	// Deal commands
	case "add-deal":
		run(cli.AddDealCommand(st, commandArgs))
	case "list-deals":
		run(cli.ListDealsCommand(st, commandArgs))
	case "update-deal":
		run(cli.UpdateDealCommand(st, commandArgs))
	case "move-deal":
		run(cli.MoveDealCommand(st, commandArgs))
	case "delete-deal":
		run(cli.DeleteDealCommand(st, commandArgs))
	case "forecast":
		run(cli.ForecastCommand(st, cfg.FeedLimit, commandArgs))

	// Activity commands
	case "add-activity":
		run(cli.AddActivityCommand(st, commandArgs))
	case "list-activities":
		run(cli.ListActivitiesCommand(st, commandArgs))
	case "complete-task":
		run(cli.CompleteTaskCommand(st, commandArgs))
	case "delete-activity":
		run(cli.DeleteActivityCommand(st, commandArgs))

	// Board and analytics
	case "board":
		run(cli.BoardCommand(st, commandArgs))
	case "dashboard":
		run(cli.DashboardCommand(st, cfg.FeedLimit, commandArgs))
	case "trends":
		run(cli.TrendsCommand(st, commandArgs))
	case "histogram":
		run(cli.HistogramCommand(st, commandArgs))
	case "metrics":
		run(cli.MetricsCommand(st, commandArgs))
	case "graph":
		run(cli.GraphCommand(st, commandArgs))

	// Data management
	case "export":
		run(cli.ExportCommand(st, cfg.ExportDir, commandArgs))
	case "clear-data":
		run(cli.ClearDataCommand(clearer, commandArgs))

	case "tui":
		p := tea.NewProgram(tui.NewModel(st), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func run(err error) {
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func printUsage() {
	fmt.Println(`pipecrm - local-first sales CRM

Usage: pipecrm [flags] <command> [command flags]

Flags:
  -version        Show version and exit
  -data-dir PATH  KV store path (default: xdg data dir)
  -ephemeral      Run on seed data only, nothing persisted

Contacts:
  add-contact     --name NAME [--email --phone --company --position --status --notes]
  list-contacts   [--status S] [--recent] [--limit N]
  update-contact  --id ID [field flags] [--touch]
  delete-contact  --id ID
  show-contact    --id ID

Deals:
  add-deal        --name NAME [--value V --stage S --contact ID --probability P --close YYYY-MM-DD --notes]
  list-deals      [--stage S]
  update-deal     --id ID [field flags]
  move-deal       --id ID --stage S
  delete-deal     --id ID
  forecast        [--limit N]

Activities:
  add-activity    --title T [--type note|email|call|meeting|task] [--contact ID | --deal ID] [--due YYYY-MM-DD]
  list-activities [--limit N]
  complete-task   --id ID
  delete-activity --id ID

Analytics:
  board           Pipeline board with per-stage deals
  dashboard       ASCII dashboard overview
  trends          Trailing six months of deal flow
  histogram       Deal-size distribution
  metrics         Sales metric snapshot
  graph           Contact→deal network ([--out file.png] for PNG, DOT otherwise)

Data:
  export          [--format json|xlsx] [--out FILE]
  clear-data      --yes

  tui             Interactive full-screen interface`)
}
