package pto

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidSnapshot is returned when an imported snapshot cannot be
	// replayed: missing or unparseable dates. Lenient numeric coercion
	// handles bad hour fields, so only date problems are fatal.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidSnapshotError identifies which snapshot field failed to parse.
type InvalidSnapshotError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidSnapshotError) Error() string {
	return fmt.Sprintf("invalid snapshot: field %q value %q: %v", e.Field, e.Value, e.Err)
}

func (e *InvalidSnapshotError) Unwrap() error {
	return ErrInvalidSnapshot
}
