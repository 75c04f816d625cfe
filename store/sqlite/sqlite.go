/*
Package sqlite provides a SQLite-backed implementation of the storage interfaces.

PURPOSE:
  Implements store.VacationStore and store.SnapshotStore using SQLite.
  In production, the same patterns apply to PostgreSQL - only minor SQL
  dialect differences.

KEY TABLES:
  vacations: One row per planned request; hours stored as decimal text
             so no precision is lost on round-trip
  snapshots: Imported snapshot documents kept verbatim, keyed by
             export date

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  st, err := sqlite.New("./data/pto.db")
  if err != nil {
      log.Fatal(err)
  }
  defer st.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - store/store.go: Interface definitions
  - store/memory/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/pto-engine/pto"
	"github.com/warp/pto-engine/store"
)

// Store implements store.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	st := &Store{db: db}
	if err := st.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return st, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS vacations (
		id TEXT PRIMARY KEY,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		standard_hours TEXT NOT NULL,
		flex_hours TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_vacations_start_date
		ON vacations(start_date);

	CREATE TABLE IF NOT EXISTS snapshots (
		export_date TEXT PRIMARY KEY,
		raw_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_created_at
		ON snapshots(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// VACATION STORE (store.VacationStore interface)
// =============================================================================

// SaveVacation inserts or replaces a vacation request.
func (s *Store) SaveVacation(ctx context.Context, v pto.VacationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := v.Span()

	query := `
		INSERT INTO vacations (id, start_date, end_date, standard_hours, flex_hours, name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			standard_hours = excluded.standard_hours,
			flex_hours = excluded.flex_hours,
			name = excluded.name
	`

	_, err := s.db.ExecContext(ctx, query,
		v.ID,
		span.Start.String(),
		span.End.String(),
		v.StandardHours.String(),
		v.FlexHours.String(),
		v.Name,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save vacation: %w", err)
	}
	return nil
}

// GetVacation returns a vacation request by ID.
func (s *Store) GetVacation(ctx context.Context, id string) (pto.VacationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT id, start_date, end_date, standard_hours, flex_hours, name FROM vacations WHERE id = ?",
		id,
	)

	v, err := scanVacation(row)
	if err == sql.ErrNoRows {
		return pto.VacationRequest{}, store.ErrNotFound
	}
	return v, err
}

// ListVacations returns all vacation requests ordered by start date.
func (s *Store) ListVacations(ctx context.Context) ([]pto.VacationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, start_date, end_date, standard_hours, flex_hours, name FROM vacations ORDER BY start_date ASC, id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query vacations: %w", err)
	}
	defer rows.Close()

	var vacations []pto.VacationRequest
	for rows.Next() {
		v, err := scanVacation(rows)
		if err != nil {
			return nil, err
		}
		vacations = append(vacations, v)
	}
	return vacations, rows.Err()
}

// DeleteVacation removes a vacation request.
func (s *Store) DeleteVacation(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM vacations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete vacation: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVacation(row rowScanner) (pto.VacationRequest, error) {
	var (
		v                   pto.VacationRequest
		startDate, endDate  string
		stdHours, flexHours string
	)

	if err := row.Scan(&v.ID, &startDate, &endDate, &stdHours, &flexHours, &v.Name); err != nil {
		return v, err
	}

	var err error
	if v.StartDate, err = pto.ParseDate(startDate); err != nil {
		return v, fmt.Errorf("failed to scan vacation %s: %w", v.ID, err)
	}
	if v.EndDate, err = pto.ParseDate(endDate); err != nil {
		return v, fmt.Errorf("failed to scan vacation %s: %w", v.ID, err)
	}
	if v.StandardHours, err = pto.ParseHours(stdHours); err != nil {
		return v, fmt.Errorf("failed to scan vacation %s: %w", v.ID, err)
	}
	if v.FlexHours, err = pto.ParseHours(flexHours); err != nil {
		return v, fmt.Errorf("failed to scan vacation %s: %w", v.ID, err)
	}
	return v, nil
}

// =============================================================================
// SNAPSHOT STORE (store.SnapshotStore interface)
// =============================================================================

// SaveSnapshot records a snapshot document verbatim under its export date.
// A re-import on the same export date replaces the previous document.
func (s *Store) SaveSnapshot(ctx context.Context, exportDate pto.Date, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO snapshots (export_date, raw_json, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(export_date) DO UPDATE SET
			raw_json = excluded.raw_json,
			created_at = excluded.created_at
	`

	_, err := s.db.ExecContext(ctx, query,
		exportDate.String(),
		string(raw),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// LatestSnapshot returns the most recently saved snapshot document.
func (s *Store) LatestSnapshot(ctx context.Context) ([]byte, pto.Date, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exportDate, raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT export_date, raw_json FROM snapshots ORDER BY created_at DESC, export_date DESC LIMIT 1",
	).Scan(&exportDate, &raw)

	if err == sql.ErrNoRows {
		return nil, pto.Date{}, store.ErrNotFound
	}
	if err != nil {
		return nil, pto.Date{}, err
	}

	d, err := pto.ParseDate(exportDate)
	if err != nil {
		return nil, pto.Date{}, fmt.Errorf("failed to parse stored export date: %w", err)
	}
	return []byte(raw), d, nil
}
