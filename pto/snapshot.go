/*
snapshot.go - Export/import snapshot and reconciliation

PURPOSE:
  The snapshot is the only persisted/wire format: a frozen balance pair,
  its export date, and the vacation list, all dates as calendar-only
  YYYY-MM-DD strings so round-trips preserve civil date identity exactly.

RECONCILIATION:
  Importing replays what happened between the export date and today:
  - Monthly accruals starting the month AFTER the export month (the
    export is treated as having already captured its own month's
    accrual), generated while the accrual date is strictly before today.
  - Whole-request vacation deductions for every vacation whose start
    falls in [exportDate, today) - export-inclusive, today-exclusive.
  The stream runs through the cap-aware simulator seeded with the flex
  already credited as of the export date. Vacations starting on or after
  today pass through untouched; vacations predating the export are
  assumed to be reflected in the snapshot balance and are dropped.

LENIENCY:
  Hour fields coerce to zero when missing or non-numeric, and IDs may be
  strings or numbers. An unparseable date is fatal: it would corrupt the
  replay, so it surfaces as ErrInvalidSnapshot instead of a silent default.
*/
package pto

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// WIRE TYPES
// =============================================================================

// Snapshot is the exported balance state. Store it verbatim; the engine
// never touches storage itself.
type Snapshot struct {
	ExportDate         string             `json:"exportDate"`
	CurrentStandardPto JSONHours          `json:"currentStandardPto"`
	CurrentFlexPto     JSONHours          `json:"currentFlexPto"`
	Vacations          []SnapshotVacation `json:"vacations"`
}

// SnapshotVacation is a vacation request in wire form.
type SnapshotVacation struct {
	ID            SnapshotID `json:"id"`
	StartDate     string     `json:"startDate"`
	EndDate       string     `json:"endDate"`
	StandardHours JSONHours  `json:"standardHours"`
	FlexHours     JSONHours  `json:"flexHours"`
	Name          string     `json:"name,omitempty"`
}

// JSONHours is Hours with lenient decoding: missing, null, or
// non-numeric values become zero rather than a decode error.
type JSONHours struct {
	Hours
}

func (h JSONHours) MarshalJSON() ([]byte, error) {
	return []byte(h.Value.String()), nil
}

func (h *JSONHours) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		h.Hours = ZeroHours()
		return nil
	}
	s = strings.Trim(s, `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		h.Hours = ZeroHours()
		return nil
	}
	h.Hours = Hours{Value: d}
	return nil
}

// SnapshotID accepts either a JSON string or a JSON number.
type SnapshotID string

func (id *SnapshotID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*id = ""
		return nil
	}
	*id = SnapshotID(strings.Trim(s, `"`))
	return nil
}

// ParseSnapshot decodes snapshot JSON. Structural problems are fatal;
// field-level leniency is handled by the wire types.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, &InvalidSnapshotError{Field: "(document)", Err: err}
	}
	return s, nil
}

// =============================================================================
// EXPORT
// =============================================================================

// Export freezes the current state into wire form.
func Export(now Date, balance Balance, vacations []VacationRequest) Snapshot {
	wire := make([]SnapshotVacation, len(vacations))
	for i, v := range vacations {
		span := v.Span()
		wire[i] = SnapshotVacation{
			ID:            SnapshotID(v.ID),
			StartDate:     span.Start.String(),
			EndDate:       span.End.String(),
			StandardHours: JSONHours{v.StandardHours},
			FlexHours:     JSONHours{v.FlexHours},
			Name:          v.Name,
		}
	}
	return Snapshot{
		ExportDate:         now.String(),
		CurrentStandardPto: JSONHours{balance.Standard},
		CurrentFlexPto:     JSONHours{balance.Flex},
		Vacations:          wire,
	}
}

// =============================================================================
// RECONCILE
// =============================================================================

// ReconcileResult is the up-to-date state after replaying the gap between
// the export date and today.
type ReconcileResult struct {
	Balance         Balance
	FutureVacations []VacationRequest
}

// Reconcile replays accruals and elapsed vacations between the snapshot's
// export date and today through the simulator.
func Reconcile(s Snapshot, today Date, cfg Config) (ReconcileResult, error) {
	exportDate, err := ParseDate(s.ExportDate)
	if err != nil {
		return ReconcileResult{}, &InvalidSnapshotError{Field: "exportDate", Value: s.ExportDate, Err: err}
	}

	vacations := make([]VacationRequest, 0, len(s.Vacations))
	for _, sv := range s.Vacations {
		start, err := ParseDate(sv.StartDate)
		if err != nil {
			return ReconcileResult{}, &InvalidSnapshotError{Field: "startDate", Value: sv.StartDate, Err: err}
		}
		var end Date
		if sv.EndDate != "" {
			if end, err = ParseDate(sv.EndDate); err != nil {
				return ReconcileResult{}, &InvalidSnapshotError{Field: "endDate", Value: sv.EndDate, Err: err}
			}
		}
		vacations = append(vacations, VacationRequest{
			ID:            string(sv.ID),
			StartDate:     start,
			EndDate:       end,
			StandardHours: sv.StandardHours.Hours,
			FlexHours:     sv.FlexHours.Hours,
			Name:          sv.Name,
		})
	}

	var events []BalanceEvent

	// The export already reflects its own month's accrual; replay starts
	// the following month and runs strictly before today.
	accrualDate := exportDate.StartOfMonth().AddMonths(1)
	for accrualDate.Before(today) {
		events = append(events, BalanceEvent{
			Date:     accrualDate,
			Kind:     EventAccrual,
			Standard: cfg.StandardMonthlyRate,
			Flex:     cfg.flexMonthly(accrualDate.Month()),
		})
		accrualDate = accrualDate.AddMonths(1)
	}

	var future []VacationRequest
	for _, v := range vacations {
		switch {
		case v.StartDate.AfterOrEqual(today):
			future = append(future, v)
		case v.StartDate.AfterOrEqual(exportDate):
			events = append(events, VacationBalanceEvent(v))
		}
		// Anything before the export date is already in the balance.
	}

	initial := Balance{
		Standard: s.CurrentStandardPto.Hours,
		Flex:     s.CurrentFlexPto.Hours,
	}
	final := ApplyEvents(initial, events, exportDate, cfg)

	return ReconcileResult{Balance: final, FutureVacations: future}, nil
}
