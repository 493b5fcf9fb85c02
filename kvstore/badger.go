// ABOUTME: Durable local key-value persistence on BadgerDB
// ABOUTME: Three JSON list keys written together in one transaction
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dgraph-io/badger/v3"

	"pipecrm/models"
)

// Collection keys, one per persisted collection. The value under each key
// is the whole collection serialized as a flat JSON list.
const (
	KeyContacts   = "crm-contacts"
	KeyDeals      = "crm-deals"
	KeyActivities = "crm-activities"
)

// KV is a badger-backed store.Repository.
type KV struct {
	db *badger.DB
}

// Open opens (or creates) the badger store under dir.
func Open(dir string) (*KV, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dir, err)
	}
	return &KV{db: db}, nil
}

func (k *KV) Close() error { return k.db.Close() }

// Load reads the three collection keys. A missing key yields nil for that
// collection. An unparsable value also yields nil, with a logged warning,
// so startup falls back to seed data instead of failing.
func (k *KV) Load() (contacts []models.Contact, deals []models.Deal, activities []models.Activity, err error) {
	err = k.db.View(func(txn *badger.Txn) error {
		contacts = loadList[models.Contact](txn, KeyContacts)
		deals = loadList[models.Deal](txn, KeyDeals)
		activities = loadList[models.Activity](txn, KeyActivities)
		return nil
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read collections: %w", err)
	}
	return contacts, deals, activities, nil
}

func loadList[T any](txn *badger.Txn, key string) []T {
	item, err := txn.Get([]byte(key))
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			log.Printf("warning: read %s: %v", key, err)
		}
		return nil
	}

	raw, err := item.ValueCopy(nil)
	if err != nil {
		log.Printf("warning: read %s: %v", key, err)
		return nil
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		log.Printf("warning: %s holds malformed data, keeping seed values: %v", key, err)
		return nil
	}
	if list == nil {
		// A persisted "null" counts as absent, not as an empty collection.
		return nil
	}
	return list
}

// Save writes all three collections in a single transaction so a crash can
// never leave the keys mutually inconsistent.
func (k *KV) Save(contacts []models.Contact, deals []models.Deal, activities []models.Activity) error {
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

	err = k.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(KeyContacts), rawContacts); err != nil {
			return err
		}
		if err := txn.Set([]byte(KeyDeals), rawDeals); err != nil {
			return err
		}
		return txn.Set([]byte(KeyActivities), rawActivities)
	})
	if err != nil {
		return fmt.Errorf("write collections: %w", err)
	}
	return nil
}

func marshalList[T any](list []T) ([]byte, error) {
	if list == nil {
		list = []T{}
	}
	return json.Marshal(list)
}

// Clear deletes the three collection keys. A store already running keeps
// its in-memory state; the deletion shows on the next start.
func (k *KV) Clear() error {
	err := k.db.Update(func(txn *badger.Txn) error {
		for _, key := range []string{KeyContacts, KeyDeals, KeyActivities} {
			if err := txn.Delete([]byte(key)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear collections: %w", err)
	}
	return nil
}
