// ABOUTME: In-memory repository for tests and ephemeral sessions
// ABOUTME: Holds deep copies via the same JSON round-trip as the badger store
package kvstore

import (
	"encoding/json"
	"fmt"

	"pipecrm/models"
)

// Memory is a store.Repository that keeps the serialized collections in
// process memory. It round-trips through JSON so its behavior matches the
// durable store, malformed-data fallback aside.
type Memory struct {
	contacts   []byte
	deals      []byte
	activities []byte
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Load() (contacts []models.Contact, deals []models.Deal, activities []models.Activity, err error) {
	if contacts, err = unmarshalList[models.Contact](m.contacts); err != nil {
		return nil, nil, nil, fmt.Errorf("decode contacts: %w", err)
	}
	if deals, err = unmarshalList[models.Deal](m.deals); err != nil {
		return nil, nil, nil, fmt.Errorf("decode deals: %w", err)
	}
	if activities, err = unmarshalList[models.Activity](m.activities); err != nil {
		return nil, nil, nil, fmt.Errorf("decode activities: %w", err)
	}
	return contacts, deals, activities, nil
}

func unmarshalList[T any](raw []byte) ([]T, error) {
	if raw == nil {
		return nil, nil
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (m *Memory) Save(contacts []models.Contact, deals []models.Deal, activities []models.Activity) error {
	rawContacts, err := marshalList(contacts)
	if err != nil {
		return fmt.Errorf("encode contacts: %w", err)
	}
	rawDeals, err := marshalList(deals)
	if err != nil {
		return fmt.Errorf("encode deals: %w", err)
	}
	rawActivities, err := marshalList(activities)
	if err != nil {
		return fmt.Errorf("encode activities: %w", err)
	}

	m.contacts, m.deals, m.activities = rawContacts, rawDeals, rawActivities
	return nil
}

func (m *Memory) Clear() error {
	m.contacts, m.deals, m.activities = nil, nil, nil
	return nil
}
