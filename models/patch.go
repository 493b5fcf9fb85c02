// ABOUTME: Typed patch structs for partial record updates
// ABOUTME: Nil fields are left untouched by Apply; set fields overwrite
package models

import "time"

// ContactPatch carries optional field overrides for a contact. Apply leaves
// every nil field unchanged; the record id is never patchable.
type ContactPatch struct {
	Name          *string
	Email         *string
	Phone         *string
	Company       *string
	Position      *string
	Status        *string
	Notes         *string
	LastContacted *time.Time
	CreatedAt     *time.Time
	AssignedTo    *string
	Avatar        *string
}

func (p ContactPatch) Apply(c Contact) Contact {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.Position != nil {
		c.Position = *p.Position
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.LastContacted != nil {
		c.LastContacted = *p.LastContacted
	}
	if p.CreatedAt != nil {
		c.CreatedAt = *p.CreatedAt
	}
	if p.AssignedTo != nil {
		c.AssignedTo = *p.AssignedTo
	}
	if p.Avatar != nil {
		c.Avatar = *p.Avatar
	}
	return c
}

// DealPatch carries optional field overrides for a deal. UpdatedAt is owned
// by the store and refreshed on every update, so it is not patchable.
type DealPatch struct {
	Name              *string
	Value             *float64
	Stage             *string
	ContactID         *string
	Probability       *int
	ExpectedCloseDate *time.Time
	Notes             *string
	CreatedAt         *time.Time
	AssignedTo        *string
}

func (p DealPatch) Apply(d Deal) Deal {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Value != nil {
		d.Value = *p.Value
	}
	if p.Stage != nil {
		d.Stage = *p.Stage
	}
	if p.ContactID != nil {
		d.ContactID = *p.ContactID
	}
	if p.Probability != nil {
		d.Probability = *p.Probability
	}
	if p.ExpectedCloseDate != nil {
		d.ExpectedCloseDate = *p.ExpectedCloseDate
	}
	if p.Notes != nil {
		d.Notes = *p.Notes
	}
	if p.CreatedAt != nil {
		d.CreatedAt = *p.CreatedAt
	}
	if p.AssignedTo != nil {
		d.AssignedTo = *p.AssignedTo
	}
	return d
}

// ActivityPatch carries optional field overrides for an activity.
type ActivityPatch struct {
	Type        *string
	Title       *string
	Description *string
	CreatedAt   *time.Time
	CreatedBy   *string
	RelatedTo   *RelatedRef
	Completed   *bool
	DueDate     *time.Time
}

func (p ActivityPatch) Apply(a Activity) Activity {
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.CreatedAt != nil {
		a.CreatedAt = *p.CreatedAt
	}
	if p.CreatedBy != nil {
		a.CreatedBy = *p.CreatedBy
	}
	if p.RelatedTo != nil {
		a.RelatedTo = *p.RelatedTo
	}
	if p.Completed != nil {
		a.Completed = p.Completed
	}
	if p.DueDate != nil {
		a.DueDate = p.DueDate
	}
	return a
}

// Ptr returns a pointer to v. Convenience for building patches.
func Ptr[T any](v T) *T { return &v }
