/*
Package pto computes and projects paid-time-off balances under two
concurrently accruing policies: Standard and Flex.

PURPOSE:
  This package is the pure calculation engine. It knows how to:
  - Build the observed-holiday calendar and count workdays
  - Generate the monthly accrual schedule
  - Expand a vacation request into per-workday deductions
  - Replay an event stream against caps and year-end rollover rules
  - Produce a chronological, display-ready ledger
  - Reconcile an exported snapshot against the present date

KEY CONCEPTS IN THIS FILE (types.go):
  - Hours: A quantity of PTO hours (decimal-backed, exact)
  - Config: The complete policy ruleset, injected into every operation
  - Balance: The (standard, flex) pair of independent hour counters

DESIGN PRINCIPLES:
  1. Determinism: The reference date is always a parameter; the engine
     never reads the wall clock.
  2. Precision: Uses decimal.Decimal so the 13.34 monthly rate and cap
     comparisons never drift.
  3. Purity: No I/O, no persistence, no state between calls. Config is
     an immutable value shared by reference and never mutated.

USAGE:
  cfg := pto.DefaultConfig()
  ledger := pto.BuildLedger(today, pto.Balance{...}, vacations, 2, cfg)

SEE ALSO:
  - calendar.go: Observed-holiday calendar
  - simulator.go: Cap-aware balance replay
  - ledger.go: Display ledger builder
  - snapshot.go: Export/import reconciliation
*/
package pto

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// HOURS - Quantity of PTO hours
// =============================================================================

// Hours is an exact quantity of PTO hours. The zero value is zero hours.
type Hours struct {
	Value decimal.Decimal
}

func NewHours(v float64) Hours    { return Hours{Value: decimal.NewFromFloat(v)} }
func NewHoursFromInt(n int) Hours { return Hours{Value: decimal.NewFromInt(int64(n))} }

func ZeroHours() Hours { return Hours{Value: decimal.Zero} }

// ParseHours parses a decimal string, as produced by Hours.String.
func ParseHours(s string) (Hours, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Hours{}, err
	}
	return Hours{Value: d}, nil
}

func (h Hours) Add(o Hours) Hours         { return Hours{Value: h.Value.Add(o.Value)} }
func (h Hours) Sub(o Hours) Hours         { return Hours{Value: h.Value.Sub(o.Value)} }
func (h Hours) Neg() Hours                { return Hours{Value: h.Value.Neg()} }
func (h Hours) MulInt(n int) Hours        { return Hours{Value: h.Value.Mul(decimal.NewFromInt(int64(n)))} }
func (h Hours) IsNegative() bool          { return h.Value.IsNegative() }
func (h Hours) IsPositive() bool          { return h.Value.IsPositive() }
func (h Hours) IsZero() bool              { return h.Value.IsZero() }
func (h Hours) Equal(o Hours) bool        { return h.Value.Equal(o.Value) }
func (h Hours) GreaterThan(o Hours) bool  { return h.Value.GreaterThan(o.Value) }
func (h Hours) LessThan(o Hours) bool     { return h.Value.LessThan(o.Value) }
func (h Hours) Float64() float64          { f, _ := h.Value.Float64(); return f }
func (h Hours) String() string            { return h.Value.String() }

func (h Hours) Min(o Hours) Hours {
	if h.LessThan(o) {
		return h
	}
	return o
}

func (h Hours) Max(o Hours) Hours {
	if h.GreaterThan(o) {
		return h
	}
	return o
}

// =============================================================================
// CONFIG - Policy ruleset, injected into every operation
// =============================================================================

// Config holds both policies' accrual amounts and caps. It is an immutable
// value: callers pass it explicitly, the engine never mutates it, and there
// is no hidden default singleton.
type Config struct {
	// Standard pool: constant monthly rate, one cap that acts as both the
	// balance ceiling and the year-end rollover clamp.
	StandardMonthlyRate Hours
	StandardCap         Hours

	// Flex pool: January grant differs from the other months; three
	// independent caps (credited-per-year, carryover-at-year-end, and the
	// hard balance ceiling).
	FlexJanMonthly       Hours
	FlexOtherMonthly     Hours
	FlexAnnualAccrualCap Hours
	FlexCarryoverCap     Hours
	FlexBalanceCap       Hours

	// Hours representing one full workday.
	WorkdayHours Hours
}

// DefaultConfig returns the production policy values.
func DefaultConfig() Config {
	return Config{
		StandardMonthlyRate:  NewHours(13.34),
		StandardCap:          NewHoursFromInt(160),
		FlexJanMonthly:       NewHoursFromInt(10),
		FlexOtherMonthly:     NewHoursFromInt(8),
		FlexAnnualAccrualCap: NewHoursFromInt(48),
		FlexCarryoverCap:     NewHoursFromInt(48),
		FlexBalanceCap:       NewHoursFromInt(96),
		WorkdayHours:         NewHoursFromInt(8),
	}
}

// flexMonthly returns the nominal flex grant for a month.
func (c Config) flexMonthly(month time.Month) Hours {
	if month == time.January {
		return c.FlexJanMonthly
	}
	return c.FlexOtherMonthly
}

// =============================================================================
// BALANCE - The two independent pools
// =============================================================================

// Balance is the (standard, flex) pair. Neither value is floor-enforced:
// a negative balance is the shortage signal, not an error.
type Balance struct {
	Standard Hours
	Flex     Hours
}
