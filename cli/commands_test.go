// ABOUTME: Tests for the CLI commands
// ABOUTME: Runs commands against an in-memory store and checks store effects
package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pipecrm/kvstore"
	"pipecrm/models"
	"pipecrm/store"
)

func setupTestCLI(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(kvstore.NewMemory())
	if err != nil {
		t.Fatalf("store.New failed: %v", err)
	}
	return st
}

func TestAddContactCommand(t *testing.T) {
	st := setupTestCLI(t)

	err := AddContactCommand(st, []string{
		"--name", "Dana Lee", "--email", "dana@example.com", "--company", "Example Inc",
	})
	if err != nil {
		t.Fatalf("AddContactCommand failed: %v", err)
	}

	var found bool
	for _, c := range st.Contacts() {
		if c.Name == "Dana Lee" {
			found = true
			if c.Email != "dana@example.com" {
				t.Errorf("email = %q, want dana@example.com", c.Email)
			}
			if c.Status != models.StatusLead {
				t.Errorf("status = %q, want default lead", c.Status)
			}
		}
	}
	if !found {
		t.Errorf("contact was not added")
	}
}

func TestAddContactCommandRequiresName(t *testing.T) {
	st := setupTestCLI(t)

	if err := AddContactCommand(st, nil); err == nil {
		t.Errorf("expected error without --name")
	}
}

func TestUpdateContactCommandAppliesOnlyPassedFlags(t *testing.T) {
	st := setupTestCLI(t)

	err := UpdateContactCommand(st, []string{"--id", "1", "--status", models.StatusLost})
	if err != nil {
		t.Fatalf("UpdateContactCommand failed: %v", err)
	}

	c, err := st.ContactByID("1")
	if err != nil {
		t.Fatalf("ContactByID failed: %v", err)
	}
	if c.Status != models.StatusLost {
		t.Errorf("status = %q, want lost", c.Status)
	}
	if c.Name != "Alice Johnson" {
		t.Errorf("name changed unexpectedly: %q", c.Name)
	}
}

func TestDeleteContactCommandCascades(t *testing.T) {
	st := setupTestCLI(t)

	if err := DeleteContactCommand(st, []string{"--id", "1"}); err != nil {
		t.Fatalf("DeleteContactCommand failed: %v", err)
	}

	if _, err := st.ContactByID("1"); err == nil {
		t.Errorf("contact 1 should be gone")
	}
	for _, d := range st.Deals() {
		if d.ContactID == "1" {
			t.Errorf("deal %s for contact 1 survived the cascade", d.ID)
		}
	}
}

func TestAddDealCommand(t *testing.T) {
	st := setupTestCLI(t)

	err := AddDealCommand(st, []string{
		"--name", "New Deal", "--value", "25000", "--contact", "2", "--probability", "40",
	})
	if err != nil {
		t.Fatalf("AddDealCommand failed: %v", err)
	}

	var found bool
	for _, d := range st.Deals() {
		if d.Name == "New Deal" {
			found = true
			if d.Value != 25000 {
				t.Errorf("value = %v, want 25000", d.Value)
			}
			if d.Stage != models.StageLead {
				t.Errorf("stage = %q, want default lead", d.Stage)
			}
		}
	}
	if !found {
		t.Errorf("deal was not added")
	}
}

func TestAddDealCommandRejectsNegativeValue(t *testing.T) {
	st := setupTestCLI(t)

	err := AddDealCommand(st, []string{"--name", "Bad Deal", "--value", "-5"})
	if err == nil {
		t.Errorf("expected error for negative value")
	}
}

func TestMoveDealCommand(t *testing.T) {
	st := setupTestCLI(t)

	if err := MoveDealCommand(st, []string{"--id", "1", "--stage", models.StageNegotiation}); err != nil {
		t.Fatalf("MoveDealCommand failed: %v", err)
	}

	d, err := st.DealByID("1")
	if err != nil {
		t.Fatalf("DealByID failed: %v", err)
	}
	if d.Stage != models.StageNegotiation {
		t.Errorf("stage = %q, want negotiation", d.Stage)
	}
}

func TestAddActivityCommandTaskGetsCompletedFlag(t *testing.T) {
	st := setupTestCLI(t)

	err := AddActivityCommand(st, []string{
		"--type", models.ActivityTask, "--title", "Chase invoice", "--deal", "1", "--due", "2026-09-15",
	})
	if err != nil {
		t.Fatalf("AddActivityCommand failed: %v", err)
	}

	var found bool
	for _, a := range st.Activities() {
		if a.Title == "Chase invoice" {
			found = true
			if a.Completed == nil || *a.Completed {
				t.Errorf("task should start with Completed=false")
			}
			if a.DueDate == nil {
				t.Errorf("task due date missing")
			}
			if a.RelatedTo != (models.RelatedRef{Type: models.RelatedDeal, ID: "1"}) {
				t.Errorf("related ref = %+v", a.RelatedTo)
			}
		}
	}
	if !found {
		t.Errorf("activity was not added")
	}
}

func TestAddActivityCommandRejectsBothTargets(t *testing.T) {
	st := setupTestCLI(t)

	err := AddActivityCommand(st, []string{"--title", "x", "--contact", "1", "--deal", "1"})
	if err == nil {
		t.Errorf("expected error when both --contact and --deal are set")
	}
}

func TestCompleteTaskCommand(t *testing.T) {
	st := setupTestCLI(t)

	// Seed activity 5 is the open task.
	if err := CompleteTaskCommand(st, []string{"--id", "5"}); err != nil {
		t.Fatalf("CompleteTaskCommand failed: %v", err)
	}

	for _, a := range st.Activities() {
		if a.ID == "5" {
			if a.Completed == nil || !*a.Completed {
				t.Errorf("task 5 should be completed")
			}
		}
	}
}

func TestListCommandsRunWithoutError(t *testing.T) {
	st := setupTestCLI(t)

	cmds := map[string]func() error{
		"list-contacts":   func() error { return ListContactsCommand(st, nil) },
		"list-deals":      func() error { return ListDealsCommand(st, nil) },
		"list-activities": func() error { return ListActivitiesCommand(st, []string{"--limit", "3"}) },
		"show-contact":    func() error { return ShowContactCommand(st, []string{"--id", "1"}) },
		"board":           func() error { return BoardCommand(st, nil) },
		"dashboard":       func() error { return DashboardCommand(st, 5, nil) },
		"trends":          func() error { return TrendsCommand(st, nil) },
		"histogram":       func() error { return HistogramCommand(st, nil) },
		"metrics":         func() error { return MetricsCommand(st, nil) },
		"forecast":        func() error { return ForecastCommand(st, 5, []string{"--limit", "3"}) },
	}
	for name, run := range cmds {
		if err := run(); err != nil {
			t.Errorf("%s failed: %v", name, err)
		}
	}
}

func TestExportCommandJSON(t *testing.T) {
	st := setupTestCLI(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "snapshot.json")

	if err := ExportCommand(st, dir, []string{"--out", out}); err != nil {
		t.Fatalf("ExportCommand failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "Alice Johnson") {
		t.Errorf("export missing seed contact")
	}
}

func TestExportCommandUnknownFormat(t *testing.T) {
	st := setupTestCLI(t)

	err := ExportCommand(st, t.TempDir(), []string{"--format", "csv"})
	if err == nil {
		t.Errorf("expected error for unknown format")
	}
}

func TestClearDataCommandNeedsYes(t *testing.T) {
	repo := kvstore.NewMemory()

	if err := ClearDataCommand(repo, nil); err == nil {
		t.Errorf("expected refusal without --yes")
	}
	if err := ClearDataCommand(repo, []string{"--yes"}); err != nil {
		t.Errorf("ClearDataCommand failed: %v", err)
	}
}
