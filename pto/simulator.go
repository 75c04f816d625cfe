/*
simulator.go - Cap-aware balance replay

PURPOSE:
  Replays a chronologically sorted event stream against a starting balance,
  enforcing every cap and the year-end rollover clamp. This is the single
  state machine behind both the raw projection (ApplyEvents) and the
  display ledger (BuildLedger); the two must never disagree on cap math.

THE THREE FLEX CAPS ARE INDEPENDENT:
  - Annual accrual cap: limits how much can be CREDITED within one
    calendar year, regardless of balance headroom. Excess nominal grant
    is discarded, never banked.
  - Balance cap: limits the RESULTING TOTAL after every credit,
    regardless of remaining annual credit room.
  - Carryover cap: what the flex balance clamps to when processing
    crosses a year boundary.

YEAR BOUNDARY:
  The first event dated in a later year triggers the clamp BEFORE that
  event is applied: standard -> min(standard, standardCap), flex ->
  min(flex, flexCarryoverCap), and the per-year credited counter resets.
  The clamp fires once per crossing even if the stream skips years.

SHORTAGE:
  Vacation deductions carry no floor. A negative balance is a valid state
  surfaced to callers, not an error.

SEE ALSO:
  - accrual.go: InitialFlexAccruedThisYear seeds the credited counter
  - ledger.go: Records the post-clamp deltas this file computes
*/
package pto

import "sort"

// =============================================================================
// EVENT STREAM
// =============================================================================

type EventKind string

const (
	// EventAccrual carries a nominal monthly grant for both pools.
	EventAccrual EventKind = "accrual"

	// EventVacation carries a whole-request deduction, applied at the
	// request's start date. Used by direct simulation callers; the ledger
	// builder replays per-day events instead.
	EventVacation EventKind = "vacation"
)

// BalanceEvent is one entry of the simulator's input stream.
type BalanceEvent struct {
	Date     Date
	Kind     EventKind
	Standard Hours
	Flex     Hours
}

// AccrualBalanceEvent adapts a schedule event for the simulator.
func AccrualBalanceEvent(ev AccrualEvent) BalanceEvent {
	return BalanceEvent{Date: ev.Date, Kind: EventAccrual, Standard: ev.Standard, Flex: ev.Flex}
}

// VacationBalanceEvent adapts a whole request into a single deduction
// dated at its start.
func VacationBalanceEvent(v VacationRequest) BalanceEvent {
	return BalanceEvent{Date: v.StartDate, Kind: EventVacation, Standard: v.StandardHours, Flex: v.FlexHours}
}

// =============================================================================
// REPLAY STATE - Shared cap/credit/rollover machine
// =============================================================================

// replay tracks the running balances, the flex credited so far this
// calendar year, and the year currently being processed.
type replay struct {
	cfg         Config
	balance     Balance
	flexAccrued Hours
	lastYear    int
}

func newReplay(initial Balance, asOf Date, cfg Config) *replay {
	return &replay{
		cfg:         cfg,
		balance:     initial,
		flexAccrued: InitialFlexAccruedThisYear(asOf, cfg),
		lastYear:    asOf.Year(),
	}
}

// crossYear applies the rollover clamp if d is in a later year than the
// last processed event. Returns the clamped-away amounts and whether a
// boundary was crossed.
func (r *replay) crossYear(d Date) (lostStandard, lostFlex Hours, crossed bool) {
	if d.Year() <= r.lastYear {
		return ZeroHours(), ZeroHours(), false
	}
	before := r.balance
	r.balance.Standard = r.balance.Standard.Min(r.cfg.StandardCap)
	r.balance.Flex = r.balance.Flex.Min(r.cfg.FlexCarryoverCap)
	r.flexAccrued = ZeroHours()
	r.lastYear = d.Year()
	return before.Standard.Sub(r.balance.Standard), before.Flex.Sub(r.balance.Flex), true
}

// accrue applies a nominal grant and returns the actual post-clamp deltas,
// which may be smaller than the nominal amounts.
func (r *replay) accrue(standard, flex Hours) (stdDelta, flexDelta Hours) {
	stdBefore := r.balance.Standard
	r.balance.Standard = r.balance.Standard.Add(standard).Min(r.cfg.StandardCap)

	flexBefore := r.balance.Flex
	room := r.cfg.FlexAnnualAccrualCap.Sub(r.flexAccrued).Max(ZeroHours())
	credit := room.Min(flex)
	if credit.IsPositive() {
		r.balance.Flex = r.balance.Flex.Add(credit)
		r.flexAccrued = r.flexAccrued.Add(credit)
	}
	r.balance.Flex = r.balance.Flex.Min(r.cfg.FlexBalanceCap)

	return r.balance.Standard.Sub(stdBefore), r.balance.Flex.Sub(flexBefore)
}

// deduct subtracts vacation hours with no floor.
func (r *replay) deduct(standard, flex Hours) {
	r.balance.Standard = r.balance.Standard.Sub(standard)
	r.balance.Flex = r.balance.Flex.Sub(flex)
}

// =============================================================================
// SIMULATOR
// =============================================================================

// ApplyEvents replays events against the initial balance and returns the
// final balances only; no per-event trace. asOf seeds the flex credited
// counter and the starting year. The input slice is not modified.
func ApplyEvents(initial Balance, events []BalanceEvent, asOf Date, cfg Config) Balance {
	sorted := make([]BalanceEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		// Same-date tie: accrual applies before vacation.
		return sorted[i].Kind == EventAccrual && sorted[j].Kind != EventAccrual
	})

	r := newReplay(initial, asOf, cfg)
	for _, ev := range sorted {
		r.crossYear(ev.Date)
		switch ev.Kind {
		case EventAccrual:
			r.accrue(ev.Standard, ev.Flex)
		case EventVacation:
			r.deduct(ev.Standard, ev.Flex)
		}
	}
	return r.balance
}
