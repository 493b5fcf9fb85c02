// ABOUTME: One-way data export of the persisted collections
// ABOUTME: Produces a JSON snapshot document; there is no import path
package export

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/oklog/ulid/v2"

	"pipecrm/models"
	"pipecrm/store"
)

// Snapshot is the export document: the three persisted collections plus an
// export timestamp and a snapshot id.
type Snapshot struct {
	ID         string            `json:"id"`
	ExportedAt time.Time         `json:"exportedAt"`
	Contacts   []models.Contact  `json:"contacts"`
	Deals      []models.Deal     `json:"deals"`
	Activities []models.Activity `json:"activities"`
}

// NewSnapshot captures the store's current contacts, deals, and activities.
func NewSnapshot(s *store.Store) Snapshot {
	return Snapshot{
		ID:         newSnapshotID(),
		ExportedAt: time.Now(),
		Contacts:   s.Contacts(),
		Deals:      s.Deals(),
		Activities: s.Activities(),
	}
}

func newSnapshotID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0) //nolint:gosec // ids, not secrets
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// WriteJSON writes the snapshot to path as indented JSON.
func WriteJSON(snap Snapshot, path string) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// DefaultFileName builds a timestamped export file name for the format.
func DefaultFileName(snap Snapshot, format string) string {
	return fmt.Sprintf("pipecrm-export-%s.%s", snap.ExportedAt.Format("20060102-150405"), format)
}
