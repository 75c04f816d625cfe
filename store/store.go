/*
Package store defines the persistence interfaces for the PTO engine.

PURPOSE:
  The engine itself is pure and stateless; everything that needs to
  survive a restart lives behind these interfaces. Two concerns exist:
  the vacation plan (individual requests) and imported balance
  snapshots (kept verbatim so a re-import replays exactly the bytes
  the user supplied).

IMPLEMENTATIONS:
  store/sqlite: SQLite-backed, used by cmd/server
  store/memory: In-memory, used by tests

SEE ALSO:
  - pto/vacation.go: VacationRequest
  - pto/snapshot.go: Snapshot wire format
*/
package store

import (
	"context"
	"errors"

	"github.com/warp/pto-engine/pto"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// VacationStore persists the vacation plan.
type VacationStore interface {
	// SaveVacation inserts or replaces a request by ID.
	SaveVacation(ctx context.Context, v pto.VacationRequest) error

	// GetVacation returns a request by ID, or ErrNotFound.
	GetVacation(ctx context.Context, id string) (pto.VacationRequest, error)

	// ListVacations returns all requests ordered by start date.
	ListVacations(ctx context.Context) ([]pto.VacationRequest, error)

	// DeleteVacation removes a request, or returns ErrNotFound.
	DeleteVacation(ctx context.Context, id string) error
}

// SnapshotStore keeps imported snapshots verbatim.
type SnapshotStore interface {
	// SaveSnapshot records the raw snapshot document under its export date.
	SaveSnapshot(ctx context.Context, exportDate pto.Date, raw []byte) error

	// LatestSnapshot returns the most recently saved snapshot, or ErrNotFound.
	LatestSnapshot(ctx context.Context) ([]byte, pto.Date, error)
}

// Store is the full persistence surface cmd/server wires up.
type Store interface {
	VacationStore
	SnapshotStore
	Close() error
}
