// ABOUTME: Activity CLI commands
// ABOUTME: Notes, emails, calls, meetings, and tasks against contacts or deals
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

// AddActivityCommand records a new activity against a contact or deal.
func AddActivityCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-activity", flag.ExitOnError)
	actType := fs.String("type", models.ActivityNote, "Type: note, email, call, meeting, or task")
	title := fs.String("title", "", "Activity title (required)")
	description := fs.String("description", "", "Longer description")
	contactID := fs.String("contact", "", "Related contact ID")
	dealID := fs.String("deal", "", "Related deal ID")
	due := fs.String("due", "", "Due date for tasks (YYYY-MM-DD)")
	_ = fs.Parse(args)

	if *title == "" {
		return fmt.Errorf("--title is required")
	}
	if *contactID != "" && *dealID != "" {
		return fmt.Errorf("--contact and --deal are mutually exclusive")
	}

	patch := models.ActivityPatch{Type: actType, Title: title}
	if *description != "" {
		patch.Description = description
	}
	switch {
	case *dealID != "":
		patch.RelatedTo = &models.RelatedRef{Type: models.RelatedDeal, ID: *dealID}
	case *contactID != "":
		patch.RelatedTo = &models.RelatedRef{Type: models.RelatedContact, ID: *contactID}
	}
	if *actType == models.ActivityTask {
		patch.Completed = models.Ptr(false)
		if *due != "" {
			t, err := time.Parse("2006-01-02", *due)
			if err != nil {
				return fmt.Errorf("invalid --due date: %w", err)
			}
			patch.DueDate = &t
		}
	}

	activity, err := st.AddActivity(patch)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	fmt.Printf("✓ Activity recorded: [%s] %s (ID: %s)\n", activity.Type, activity.Title, activity.ID)
	return nil
}

// ListActivitiesCommand lists the activity feed, newest first.
func ListActivitiesCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-activities", flag.ExitOnError)
	limit := fs.Int("limit", 0, "Limit number of rows (0 = all)")
	_ = fs.Parse(args)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tTITLE\tRELATED\tCREATED")
	for _, a := range st.RecentActivities(*limit) {
		related := fmt.Sprintf("%s %s", a.RelatedTo.Type, a.RelatedTo.ID)
		if a.RelatedTo.Type == models.RelatedContact {
			related = st.ContactName(a.RelatedTo.ID)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.Type, a.Title, related, a.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

// CompleteTaskCommand marks a task-typed activity as completed.
func CompleteTaskCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("complete-task", flag.ExitOnError)
	id := fs.String("id", "", "Activity ID (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	activity, err := st.UpdateActivity(*id, models.ActivityPatch{Completed: models.Ptr(true)})
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	fmt.Printf("✓ Task completed: %s\n", activity.Title)
	return nil
}

// DeleteActivityCommand deletes an activity.
func DeleteActivityCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-activity", flag.ExitOnError)
	id := fs.String("id", "", "Activity ID (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	if err := st.DeleteActivity(*id); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}

	fmt.Println("✓ Activity deleted")
	return nil
}
