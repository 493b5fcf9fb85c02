// ABOUTME: Contact CLI commands
// ABOUTME: Human-friendly commands for managing contacts
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"pipecrm/models"
	"pipecrm/store"
)

// AddContactCommand adds a new contact.
func AddContactCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-contact", flag.ExitOnError)
	name := fs.String("name", "", "Contact name (required)")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	company := fs.String("company", "", "Company name")
	position := fs.String("position", "", "Job title")
	status := fs.String("status", "", "Status: lead, customer, or lost (default lead)")
	notes := fs.String("notes", "", "Notes about the contact")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	patch := models.ContactPatch{Name: name}
	if *email != "" {
		patch.Email = email
	}
	if *phone != "" {
		patch.Phone = phone
	}
	if *company != "" {
		patch.Company = company
	}
	if *position != "" {
		patch.Position = position
	}
	if *status != "" {
		patch.Status = status
	}
	if *notes != "" {
		patch.Notes = notes
	}

	contact, err := st.AddContact(patch)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	fmt.Printf("✓ Contact created: %s (ID: %s)\n", contact.Name, contact.ID)
	if contact.Email != "" {
		fmt.Printf("  Email: %s\n", contact.Email)
	}
	if contact.Company != "" {
		fmt.Printf("  Company: %s\n", contact.Company)
	}
	return nil
}

// ListContactsCommand lists contacts in a table.
func ListContactsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-contacts", flag.ExitOnError)
	status := fs.String("status", "", "Filter by status")
	recent := fs.Bool("recent", false, "Order by last contacted, newest first")
	limit := fs.Int("limit", 0, "Limit number of rows (0 = all)")
	_ = fs.Parse(args)

	contacts := st.Contacts()
	if *recent {
		contacts = st.RecentContacts(*limit)
	} else if *limit > 0 && len(contacts) > *limit {
		contacts = contacts[:*limit]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tSTATUS\tEMAIL\tLAST CONTACTED")
	for _, c := range contacts {
		if *status != "" && c.Status != *status {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Company, c.Status, c.Email, c.LastContacted.Format("2006-01-02"))
	}
	return w.Flush()
}

// UpdateContactCommand updates fields on an existing contact. Only flags
// that were passed are applied.
func UpdateContactCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-contact", flag.ExitOnError)
	id := fs.String("id", "", "Contact ID (required)")
	name := fs.String("name", "", "Contact name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	company := fs.String("company", "", "Company name")
	position := fs.String("position", "", "Job title")
	status := fs.String("status", "", "Status: lead, customer, or lost")
	notes := fs.String("notes", "", "Notes about the contact")
	touch := fs.Bool("touch", false, "Mark the contact as contacted now")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	var patch models.ContactPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "email":
			patch.Email = email
		case "phone":
			patch.Phone = phone
		case "company":
			patch.Company = company
		case "position":
			patch.Position = position
		case "status":
			patch.Status = status
		case "notes":
			patch.Notes = notes
		}
	})
	if *touch {
		patch.LastContacted = models.Ptr(nowUTC())
	}

	contact, err := st.UpdateContact(*id, patch)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	fmt.Printf("✓ Contact updated: %s (ID: %s)\n", contact.Name, contact.ID)
	return nil
}

// DeleteContactCommand deletes a contact along with its deals and the
// activities related directly to it.
func DeleteContactCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-contact", flag.ExitOnError)
	id := fs.String("id", "", "Contact ID (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	name := st.ContactName(*id)
	if err := st.DeleteContact(*id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	fmt.Printf("✓ Contact deleted: %s (with its deals and contact activities)\n", name)
	return nil
}

// ShowContactCommand prints one contact with its deals and activity feed.
func ShowContactCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("show-contact", flag.ExitOnError)
	id := fs.String("id", "", "Contact ID (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	contact, err := st.ContactByID(*id)
	if err != nil {
		return err
	}

	fmt.Printf("%s  [%s]\n", contact.Name, contact.Status)
	if contact.Position != "" || contact.Company != "" {
		fmt.Printf("  %s, %s\n", contact.Position, contact.Company)
	}
	if contact.Email != "" {
		fmt.Printf("  %s\n", contact.Email)
	}
	if contact.Phone != "" {
		fmt.Printf("  %s\n", contact.Phone)
	}
	fmt.Printf("  Last contacted: %s\n", contact.LastContacted.Format("2006-01-02"))
	if contact.Notes != "" {
		fmt.Printf("  Notes: %s\n", contact.Notes)
	}

	var hasDeals bool
	for _, d := range st.Deals() {
		if d.ContactID == contact.ID {
			if !hasDeals {
				fmt.Println("\nDeals:")
				hasDeals = true
			}
			fmt.Printf("  %s  $%.0f  [%s]  (ID: %s)\n", d.Name, d.Value, d.Stage, d.ID)
		}
	}

	var hasActivities bool
	for _, a := range st.Activities() {
		if a.RelatedTo.Type == models.RelatedContact && a.RelatedTo.ID == contact.ID {
			if !hasActivities {
				fmt.Println("\nActivities:")
				hasActivities = true
			}
			fmt.Printf("  [%s] %s  %s\n", a.Type, a.Title, a.CreatedAt.Format("2006-01-02"))
		}
	}

	return nil
}
