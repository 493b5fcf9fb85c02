// ABOUTME: Tests for domain store CRUD, defaults, and cascade deletes
// ABOUTME: Covers persistence write-through and the NotFound taxonomy
package store

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipecrm/kvstore"
	"pipecrm/models"
)

func TestNewSeedsCollections(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	assert.Len(t, s.Contacts(), 5)
	assert.Len(t, s.Deals(), 6)
	assert.Len(t, s.Activities(), 5)
	assert.Len(t, s.Stages(), 6)
	assert.Len(t, s.Metrics(), 4)
	assert.Equal(t, "John Doe", s.CurrentUser().Name)
}

func TestAddContactDefaults(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	before := time.Now()
	contact, err := s.AddContact(models.ContactPatch{Name: models.Ptr("Dana Lee")})
	require.NoError(t, err)

	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, "Dana Lee", contact.Name)
	assert.Equal(t, models.StatusLead, contact.Status)
	assert.Equal(t, s.CurrentUser().ID, contact.AssignedTo)
	assert.WithinDuration(t, before, contact.CreatedAt, time.Second)
	assert.WithinDuration(t, before, contact.LastContacted, time.Second)

	// Appears exactly once in full-collection reads.
	var seen int
	for _, c := range s.Contacts() {
		if c.ID == contact.ID {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestAddContactGeneratesUniqueIDs(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	ids := make(map[string]bool)
	for _, c := range s.Contacts() {
		ids[c.ID] = true
	}
	for i := 0; i < 20; i++ {
		contact, err := s.AddContact(models.ContactPatch{Name: models.Ptr("Contact")})
		require.NoError(t, err)
		assert.False(t, ids[contact.ID], "id %s reused", contact.ID)
		ids[contact.ID] = true
	}
}

func TestUpdateContactMergesOnlyPatchedFields(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	original, err := s.ContactByID("3")
	require.NoError(t, err)

	updated, err := s.UpdateContact("3", models.ContactPatch{Name: models.Ptr("X")})
	require.NoError(t, err)

	assert.Equal(t, "X", updated.Name)
	assert.Equal(t, original.Email, updated.Email)
	assert.Equal(t, original.Status, updated.Status)
	assert.Equal(t, original.Company, updated.Company)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)

	// Position in the collection is preserved.
	assert.Equal(t, "3", s.Contacts()[2].ID)
	assert.Equal(t, "X", s.Contacts()[2].Name)
}

func TestUpdateNotFoundIsUniform(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	_, err = s.UpdateContact("nope", models.ContactPatch{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateDeal("nope", models.DealPatch{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateActivity("nope", models.ActivityPatch{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.ContactByID("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.DealByID("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	require.NoError(t, s.DeleteContact("nope"))
	require.NoError(t, s.DeleteDeal("nope"))
	require.NoError(t, s.DeleteActivity("nope"))
	assert.Len(t, s.Contacts(), 5)
	assert.Len(t, s.Deals(), 6)
	assert.Len(t, s.Activities(), 5)
}

func TestUpdateDealRefreshesUpdatedAt(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	deal, err := s.DealByID("1")
	require.NoError(t, err)
	prev := deal.UpdatedAt

	// Patch carries the value the deal already has; updatedAt still moves.
	updated, err := s.UpdateDeal("1", models.DealPatch{Value: models.Ptr(deal.Value)})
	require.NoError(t, err)

	assert.True(t, !updated.UpdatedAt.Before(prev), "updatedAt went backwards")
	assert.True(t, updated.UpdatedAt.After(prev), "updatedAt not refreshed")
	assert.Equal(t, deal.Value, updated.Value)
}

func TestDeleteContactCascades(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	// Contact 1 owns deals 1 and 6. Activity 4 relates to contact 4;
	// activities 1 and 5 relate to deal 1.
	require.NoError(t, s.DeleteContact("1"))

	_, err = s.ContactByID("1")
	assert.ErrorIs(t, err, ErrNotFound)
	for _, d := range s.Deals() {
		assert.NotEqual(t, "1", d.ContactID)
	}
	_, err = s.DealByID("1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.DealByID("6")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteContactKeepsDealActivities(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	// Deleting contact 1 removes its deals but NOT the activities that
	// relate to those deals; only activities related directly to the
	// contact are pruned.
	require.NoError(t, s.DeleteContact("1"))

	ids := make(map[string]bool)
	for _, a := range s.Activities() {
		ids[a.ID] = true
	}
	assert.True(t, ids["1"], "deal activity removed by contact cascade")
	assert.True(t, ids["5"], "deal activity removed by contact cascade")
}

func TestDeleteContactPrunesContactActivities(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	// Activity 4 relates directly to contact 4.
	require.NoError(t, s.DeleteContact("4"))

	for _, a := range s.Activities() {
		assert.NotEqual(t, "4", a.ID)
	}
}

func TestDeleteDealCascadesActivities(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	// Activities 1 and 5 relate to deal 1; contact 1 must survive.
	require.NoError(t, s.DeleteDeal("1"))

	for _, a := range s.Activities() {
		if a.RelatedTo.Type == models.RelatedDeal {
			assert.NotEqual(t, "1", a.RelatedTo.ID)
		}
	}
	assert.Len(t, s.Activities(), 3)

	_, err = s.ContactByID("1")
	assert.NoError(t, err)
}

func TestDealsByStageExactMatchInsertionOrder(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	proposal := s.DealsByStage(models.StageProposal)
	require.Len(t, proposal, 2)
	assert.Equal(t, "3", proposal[0].ID)
	assert.Equal(t, "6", proposal[1].ID)

	added, err := s.AddDeal(models.DealPatch{
		Name:  models.Ptr("Another Proposal"),
		Stage: models.Ptr(models.StageProposal),
	})
	require.NoError(t, err)

	proposal = s.DealsByStage(models.StageProposal)
	require.Len(t, proposal, 3)
	assert.Equal(t, added.ID, proposal[2].ID)

	assert.Empty(t, s.DealsByStage("no-such-stage"))
}

func TestContactNameFallback(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	assert.Equal(t, "Alice Johnson", s.ContactName("1"))
	assert.Equal(t, "Unknown Contact", s.ContactName("dangling"))
	assert.Equal(t, "Unknown Contact", s.ContactName(""))
}

func TestMoveDealStage(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	moved, err := s.MoveDealStage("4", models.StageNegotiation)
	require.NoError(t, err)
	assert.Equal(t, models.StageNegotiation, moved.Stage)

	// Terminal stages are not enforced; moving back out is allowed.
	moved, err = s.MoveDealStage("5", models.StageLead)
	require.NoError(t, err)
	assert.Equal(t, models.StageLead, moved.Stage)
}

func TestAddDealDefaults(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	before := time.Now()
	deal, err := s.AddDeal(models.DealPatch{Name: models.Ptr("Bare Deal")})
	require.NoError(t, err)

	assert.NotEmpty(t, deal.ID)
	assert.Zero(t, deal.Value)
	assert.Equal(t, models.StageLead, deal.Stage)
	assert.Zero(t, deal.Probability)
	assert.Empty(t, deal.ContactID)
	assert.WithinDuration(t, before, deal.CreatedAt, time.Second)
	assert.WithinDuration(t, before, deal.UpdatedAt, time.Second)
	assert.WithinDuration(t, before, deal.ExpectedCloseDate, time.Second)
}

func TestAddActivityDefaults(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	activity, err := s.AddActivity(models.ActivityPatch{Title: models.Ptr("Ping")})
	require.NoError(t, err)

	assert.Equal(t, models.ActivityNote, activity.Type)
	assert.Equal(t, s.CurrentUser().ID, activity.CreatedBy)
	assert.Equal(t, models.RelatedContact, activity.RelatedTo.Type)
	assert.Nil(t, activity.Completed)
	assert.Nil(t, activity.DueDate)
}

func TestMutationsWriteThroughRepository(t *testing.T) {
	mem := kvstore.NewMemory()
	s, err := New(mem)
	require.NoError(t, err)

	_, err = s.AddContact(models.ContactPatch{Name: models.Ptr("Persisted")})
	require.NoError(t, err)

	contacts, deals, activities, err := mem.Load()
	require.NoError(t, err)
	assert.Len(t, contacts, 6)
	assert.Len(t, deals, 6)
	assert.Len(t, activities, 5)
}

func TestHydrationRoundTrip(t *testing.T) {
	mem := kvstore.NewMemory()
	s, err := New(mem)
	require.NoError(t, err)

	_, err = s.AddContact(models.ContactPatch{Name: models.Ptr("Round Trip")})
	require.NoError(t, err)
	_, err = s.MoveDealStage("4", models.StageDiscovery)
	require.NoError(t, err)
	require.NoError(t, s.DeleteActivity("2"))

	reloaded, err := New(mem)
	require.NoError(t, err)

	assert.Equal(t, asJSON(t, s.Contacts()), asJSON(t, reloaded.Contacts()))
	assert.Equal(t, asJSON(t, s.Deals()), asJSON(t, reloaded.Deals()))
	assert.Equal(t, asJSON(t, s.Activities()), asJSON(t, reloaded.Activities()))
}

func TestEmptyCollectionsSurviveReload(t *testing.T) {
	mem := kvstore.NewMemory()
	s, err := New(mem)
	require.NoError(t, err)

	for _, c := range s.Contacts() {
		require.NoError(t, s.DeleteContact(c.ID))
	}
	require.Empty(t, s.Contacts())

	// An explicitly persisted empty collection must not fall back to seed.
	reloaded, err := New(mem)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Contacts())
}

func TestScenarioDanaLee(t *testing.T) {
	mem := kvstore.NewMemory()
	s, err := New(mem)
	require.NoError(t, err)

	before := time.Now()
	contact, err := s.AddContact(models.ContactPatch{Name: models.Ptr("Dana Lee")})
	require.NoError(t, err)
	require.NotEmpty(t, contact.ID)
	require.Equal(t, models.StatusLead, contact.Status)
	require.WithinDuration(t, before, contact.CreatedAt, time.Second)
	require.WithinDuration(t, before, contact.LastContacted, time.Second)

	deal, err := s.AddDeal(models.DealPatch{
		Name:      models.Ptr("Dana Deal"),
		ContactID: models.Ptr(contact.ID),
	})
	require.NoError(t, err)
	require.Zero(t, deal.Value)
	require.Equal(t, models.StageLead, deal.Stage)
	require.Zero(t, deal.Probability)

	_, err = s.MoveDealStage(deal.ID, models.StageNegotiation)
	require.NoError(t, err)

	inNegotiation := func() bool {
		for _, d := range s.DealsByStage(models.StageNegotiation) {
			if d.ID == deal.ID {
				return true
			}
		}
		return false
	}
	inLead := func() bool {
		for _, d := range s.DealsByStage(models.StageLead) {
			if d.ID == deal.ID {
				return true
			}
		}
		return false
	}
	require.True(t, inNegotiation())
	require.False(t, inLead())

	require.NoError(t, s.DeleteContact(contact.ID))
	require.False(t, inNegotiation())
	for _, a := range s.Activities() {
		assert.NotEqual(t, contact.ID, a.RelatedTo.ID)
		assert.NotEqual(t, deal.ID, a.RelatedTo.ID)
	}
}

func asJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestErrNotFoundWrapping(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	_, err = s.UpdateActivity("missing", models.ActivityPatch{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "missing")
}
