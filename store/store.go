// ABOUTME: Domain store owning the six CRM collections
// ABOUTME: Handles CRUD operations, cascade deletes, and persistence writes
package store

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"pipecrm/models"
)

// ErrNotFound is returned by id-based lookups and updates when no record
// matches. Deletes are idempotent and never return it.
var ErrNotFound = errors.New("record not found")

// Repository persists the three mutable collections. A nil collection from
// Load means "nothing stored for that key"; the store keeps its seed data.
// Save must write all three collections atomically.
type Repository interface {
	Load() (contacts []models.Contact, deals []models.Deal, activities []models.Activity, err error)
	Save(contacts []models.Contact, deals []models.Deal, activities []models.Activity) error
}

// Store is the single source of truth for every view. It is constructed by
// the composition root and passed down explicitly; there is no package-level
// instance. All operations are synchronous and the store is not safe for
// concurrent use — it is owned by one session.
type Store struct {
	repo Repository

	user    models.User
	stages  []models.PipelineStage
	metrics []models.SalesMetric

	contacts   []models.Contact
	deals      []models.Deal
	activities []models.Activity
}

// New builds a store seeded with the built-in sample data, then overlays
// whatever the repository has persisted for contacts, deals, and
// activities. A nil repository gives a purely in-memory (ephemeral) store.
func New(repo Repository) (*Store, error) {
	s := &Store{
		repo:       repo,
		user:       seedUser,
		stages:     slices.Clone(seedStages),
		metrics:    slices.Clone(seedMetrics),
		contacts:   slices.Clone(seedContacts),
		deals:      slices.Clone(seedDeals),
		activities: slices.Clone(seedActivities),
	}

	if repo != nil {
		contacts, deals, activities, err := repo.Load()
		if err != nil {
			return nil, fmt.Errorf("load persisted state: %w", err)
		}
		if contacts != nil {
			s.contacts = contacts
		}
		if deals != nil {
			s.deals = deals
		}
		if activities != nil {
			s.activities = activities
		}
	}

	return s, nil
}

func (s *Store) persist() error {
	if s.repo == nil {
		return nil
	}
	if err := s.repo.Save(s.contacts, s.deals, s.activities); err != nil {
		return fmt.Errorf("persist collections: %w", err)
	}
	return nil
}

// CurrentUser returns the operator record.
func (s *Store) CurrentUser() models.User { return s.user }

// Stages returns the pipeline stage list in funnel order.
func (s *Store) Stages() []models.PipelineStage { return slices.Clone(s.stages) }

// Metrics returns the static sales metric snapshot.
func (s *Store) Metrics() []models.SalesMetric { return slices.Clone(s.metrics) }

func (s *Store) Contacts() []models.Contact { return slices.Clone(s.contacts) }

func (s *Store) Deals() []models.Deal { return slices.Clone(s.deals) }

func (s *Store) Activities() []models.Activity { return slices.Clone(s.activities) }

// AddContact appends a new contact built from defaults plus the given
// patch. The id is always freshly generated.
func (s *Store) AddContact(p models.ContactPatch) (models.Contact, error) {
	now := time.Now()
	c := models.Contact{
		Status:        models.StatusLead,
		LastContacted: now,
		CreatedAt:     now,
		AssignedTo:    s.user.ID,
	}
	c = p.Apply(c)
	c.ID = uuid.NewString()

	s.contacts = append(s.contacts, c)
	if err := s.persist(); err != nil {
		return models.Contact{}, err
	}
	return c, nil
}

// UpdateContact merges the patch over the stored contact, preserving its
// position in the collection.
func (s *Store) UpdateContact(id string, p models.ContactPatch) (models.Contact, error) {
	i := slices.IndexFunc(s.contacts, func(c models.Contact) bool { return c.ID == id })
	if i < 0 {
		return models.Contact{}, fmt.Errorf("contact %s: %w", id, ErrNotFound)
	}

	s.contacts[i] = p.Apply(s.contacts[i])
	if err := s.persist(); err != nil {
		return models.Contact{}, err
	}
	return s.contacts[i], nil
}

// DeleteContact removes the contact, every deal tied to it, and every
// activity related directly to the contact. Activities hanging off the
// removed deals are left in place. Deleting an unknown id is a no-op.
func (s *Store) DeleteContact(id string) error {
	s.contacts = slices.DeleteFunc(s.contacts, func(c models.Contact) bool { return c.ID == id })
	s.deals = slices.DeleteFunc(s.deals, func(d models.Deal) bool { return d.ContactID == id })
	s.activities = slices.DeleteFunc(s.activities, func(a models.Activity) bool {
		return a.RelatedTo.Type == models.RelatedContact && a.RelatedTo.ID == id
	})
	return s.persist()
}

func (s *Store) ContactByID(id string) (models.Contact, error) {
	for _, c := range s.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Contact{}, fmt.Errorf("contact %s: %w", id, ErrNotFound)
}

// ContactName resolves a contact id to its display name, degrading to a
// fixed label for dangling references instead of failing.
func (s *Store) ContactName(contactID string) string {
	c, err := s.ContactByID(contactID)
	if err != nil {
		return "Unknown Contact"
	}
	return c.Name
}

// AddDeal appends a new deal built from defaults plus the given patch.
func (s *Store) AddDeal(p models.DealPatch) (models.Deal, error) {
	now := time.Now()
	d := models.Deal{
		Stage:             models.StageLead,
		ExpectedCloseDate: now,
		CreatedAt:         now,
		UpdatedAt:         now,
		AssignedTo:        s.user.ID,
	}
	d = p.Apply(d)
	d.ID = uuid.NewString()

	s.deals = append(s.deals, d)
	if err := s.persist(); err != nil {
		return models.Deal{}, err
	}
	return d, nil
}

// UpdateDeal merges the patch over the stored deal and refreshes UpdatedAt
// unconditionally, whether or not any field actually changed.
func (s *Store) UpdateDeal(id string, p models.DealPatch) (models.Deal, error) {
	i := slices.IndexFunc(s.deals, func(d models.Deal) bool { return d.ID == id })
	if i < 0 {
		return models.Deal{}, fmt.Errorf("deal %s: %w", id, ErrNotFound)
	}

	d := p.Apply(s.deals[i])
	d.UpdatedAt = time.Now()
	s.deals[i] = d
	if err := s.persist(); err != nil {
		return models.Deal{}, err
	}
	return d, nil
}

// DeleteDeal removes the deal and every activity related to it. The parent
// contact is untouched. Deleting an unknown id is a no-op.
func (s *Store) DeleteDeal(id string) error {
	s.deals = slices.DeleteFunc(s.deals, func(d models.Deal) bool { return d.ID == id })
	s.activities = slices.DeleteFunc(s.activities, func(a models.Activity) bool {
		return a.RelatedTo.Type == models.RelatedDeal && a.RelatedTo.ID == id
	})
	return s.persist()
}

func (s *Store) DealByID(id string) (models.Deal, error) {
	for _, d := range s.deals {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Deal{}, fmt.Errorf("deal %s: %w", id, ErrNotFound)
}

// MoveDealStage moves a deal to another pipeline stage. The stage id is
// not validated against the stage list; callers pass known stage ids.
func (s *Store) MoveDealStage(dealID, stageID string) (models.Deal, error) {
	return s.UpdateDeal(dealID, models.DealPatch{Stage: &stageID})
}

// DealsByStage returns deals whose stage matches exactly, in insertion
// order.
func (s *Store) DealsByStage(stageID string) []models.Deal {
	var out []models.Deal
	for _, d := range s.deals {
		if d.Stage == stageID {
			out = append(out, d)
		}
	}
	return out
}

// AddActivity appends a new activity built from defaults plus the given
// patch. The related record is not checked for existence; cascade deletes
// clean up after the fact.
func (s *Store) AddActivity(p models.ActivityPatch) (models.Activity, error) {
	a := models.Activity{
		Type:      models.ActivityNote,
		CreatedAt: time.Now(),
		CreatedBy: s.user.ID,
		RelatedTo: models.RelatedRef{Type: models.RelatedContact},
	}
	a = p.Apply(a)
	a.ID = uuid.NewString()

	s.activities = append(s.activities, a)
	if err := s.persist(); err != nil {
		return models.Activity{}, err
	}
	return a, nil
}

func (s *Store) UpdateActivity(id string, p models.ActivityPatch) (models.Activity, error) {
	i := slices.IndexFunc(s.activities, func(a models.Activity) bool { return a.ID == id })
	if i < 0 {
		return models.Activity{}, fmt.Errorf("activity %s: %w", id, ErrNotFound)
	}

	s.activities[i] = p.Apply(s.activities[i])
	if err := s.persist(); err != nil {
		return models.Activity{}, err
	}
	return s.activities[i], nil
}

// DeleteActivity removes the activity. Deleting an unknown id is a no-op.
func (s *Store) DeleteActivity(id string) error {
	s.activities = slices.DeleteFunc(s.activities, func(a models.Activity) bool { return a.ID == id })
	return s.persist()
}
