/*
ledger.go - Chronological display ledger

PURPOSE:
  Produces the human-auditable timeline of every balance-affecting event:
  an initial entry, one entry per monthly accrual showing the ACTUAL
  credited delta (post-clamp, so a capped month shows less than the
  nominal rate), and one aggregated entry per vacation request.

ORDERING:
  Processing replays accruals and per-workday vacation deductions in
  strict date order, accrual first on a shared date. The final display
  list is sorted by date with the fixed type rank
  initial(0) < accrual(2) < vacation(3) breaking ties.

ROLLOVER ATTRIBUTION:
  The year-boundary clamp emits no standalone entry. The lost amounts are
  staged and attached to the next accrual entry dated exactly January 1.
  If the projection horizon produces no such entry the staged metadata is
  discarded; the balances are still correct, only the attribution is lost.

VACATION AGGREGATION:
  A request's day events fold into a single entry: summed (non-positive)
  deltas, the running balances as of the request's LAST applied day, and
  the request's start date used purely for sort position. A request whose
  span contains no workdays aggregates to a zero-delta entry with zero
  running balances.

SEE ALSO:
  - simulator.go: The replay state machine this file records
  - vacation.go: Per-workday expansion
*/
package pto

import (
	"sort"
	"time"
)

// =============================================================================
// LEDGER ENTRY
// =============================================================================

type EntryType string

const (
	EntryInitial  EntryType = "initial"
	EntryAccrual  EntryType = "accrual"
	EntryVacation EntryType = "vacation"
)

// displayRank orders same-date entries in the final list.
var displayRank = map[EntryType]int{
	EntryInitial:  0,
	EntryAccrual:  2,
	EntryVacation: 3,
}

// YearEndInfo records what a rollover clamp discarded. It is attached to
// the January-1 accrual entry of the year the clamp opened.
type YearEndInfo struct {
	FromYear     int
	ToYear       int
	LostStandard Hours
	LostFlex     Hours
}

// LedgerEntry is one display record of the timeline.
type LedgerEntry struct {
	Type        EntryType
	Date        Date
	Description string

	// Vacation entries only.
	VacationID string
	Name       string
	StartDate  Date
	EndDate    Date

	// Actual applied deltas: post-clamp for accruals, non-positive sums
	// for vacations, zero for the initial entry.
	StandardChange Hours
	FlexChange     Hours

	// Balances after this entry's effect was applied during replay.
	RunningStandard Hours
	RunningFlex     Hours

	YearEnd        *YearEndInfo
	CausesShortage bool
}

// Ledger is the ordered display timeline.
type Ledger struct {
	Entries        []LedgerEntry
	HasAnyShortage bool
}

// =============================================================================
// LEDGER BUILDER
// =============================================================================

// processEvent is the merged replay stream: accruals plus per-day
// vacation deductions.
type processEvent struct {
	date    Date
	accrual *AccrualEvent
	day     *VacationDayEvent
}

// BuildLedger projects the timeline from today through yearsAhead years,
// replaying every vacation request (past or future) alongside the accrual
// schedule.
func BuildLedger(today Date, initial Balance, vacations []VacationRequest, yearsAhead int, cfg Config) Ledger {
	accruals := GenerateAccrualEvents(today, yearsAhead, cfg)

	var stream []processEvent
	for i := range accruals {
		stream = append(stream, processEvent{date: accruals[i].Date, accrual: &accruals[i]})
	}
	for _, v := range vacations {
		days := ExpandVacationDays(v, cfg)
		for i := range days {
			stream = append(stream, processEvent{date: days[i].Date, day: &days[i]})
		}
	}

	sort.SliceStable(stream, func(i, j int) bool {
		if !stream[i].date.Equal(stream[j].date) {
			return stream[i].date.Before(stream[j].date)
		}
		return stream[i].accrual != nil && stream[j].accrual == nil
	})

	r := newReplay(initial, today, cfg)

	entries := []LedgerEntry{{
		Type:            EntryInitial,
		Date:            today,
		Description:     "Current Balance",
		RunningStandard: r.balance.Standard,
		RunningFlex:     r.balance.Flex,
	}}

	shortageByRequest := make(map[string]bool)
	dayEntriesByRequest := make(map[string][]LedgerEntry)

	var pendingYearEnd *YearEndInfo
	for _, ev := range stream {
		fromYear := r.lastYear
		if lostStd, lostFlex, crossed := r.crossYear(ev.date); crossed {
			pendingYearEnd = &YearEndInfo{
				FromYear:     fromYear,
				ToYear:       ev.date.Year(),
				LostStandard: lostStd,
				LostFlex:     lostFlex,
			}
		}

		switch {
		case ev.accrual != nil:
			stdDelta, flexDelta := r.accrue(ev.accrual.Standard, ev.accrual.Flex)
			entry := LedgerEntry{
				Type:            EntryAccrual,
				Date:            ev.date,
				Description:     "Monthly Accrual",
				StandardChange:  stdDelta,
				FlexChange:      flexDelta,
				RunningStandard: r.balance.Standard,
				RunningFlex:     r.balance.Flex,
			}
			if pendingYearEnd != nil && ev.date.Month() == time.January && ev.date.Day() == 1 {
				entry.YearEnd = pendingYearEnd
				pendingYearEnd = nil
			}
			entries = append(entries, entry)

		case ev.day != nil:
			r.deduct(ev.day.Standard, ev.day.Flex)
			if r.balance.Standard.IsNegative() || r.balance.Flex.IsNegative() {
				shortageByRequest[ev.day.ParentID] = true
			}
			dayEntriesByRequest[ev.day.ParentID] = append(dayEntriesByRequest[ev.day.ParentID], LedgerEntry{
				Date:            ev.date,
				StandardChange:  ev.day.Standard.Neg(),
				FlexChange:      ev.day.Flex.Neg(),
				RunningStandard: r.balance.Standard,
				RunningFlex:     r.balance.Flex,
			})
		}
	}

	// Fold each request's day entries into a single aggregated entry.
	for _, v := range vacations {
		group := dayEntriesByRequest[v.ID]
		stdDelta, flexDelta := ZeroHours(), ZeroHours()
		var runStd, runFlex Hours
		for _, day := range group {
			stdDelta = stdDelta.Add(day.StandardChange)
			flexDelta = flexDelta.Add(day.FlexChange)
			runStd = day.RunningStandard
			runFlex = day.RunningFlex
		}
		span := v.Span()
		entries = append(entries, LedgerEntry{
			Type:            EntryVacation,
			Date:            v.StartDate,
			Description:     "Vacation",
			VacationID:      v.ID,
			Name:            v.Name,
			StartDate:       span.Start,
			EndDate:         span.End,
			StandardChange:  stdDelta,
			FlexChange:      flexDelta,
			RunningStandard: runStd,
			RunningFlex:     runFlex,
			CausesShortage:  shortageByRequest[v.ID],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return displayRank[entries[i].Type] < displayRank[entries[j].Type]
	})

	hasShortage := false
	for _, e := range entries {
		if e.Type == EntryVacation && e.CausesShortage {
			hasShortage = true
			break
		}
	}

	return Ledger{Entries: entries, HasAnyShortage: hasShortage}
}
