/*
accrual.go - Monthly accrual schedule

PURPOSE:
  Generates the recurring accrual events both pools receive on the 1st of
  each month, and computes how much flex has already been credited in the
  current calendar year (needed to seed the simulator mid-year).

SCHEDULE:
  - Standard accrues at the constant configured monthly rate, every month.
  - Flex accrues the January grant in January and the other-month grant
    the rest of the year.
  - If the reference date is past the 1st, that month's accrual is treated
    as already deposited and the schedule starts the following month. If
    the reference date IS the 1st, the schedule starts that same day.

AMOUNTS ARE NOMINAL:
  Events carry the pre-cap grant. The simulator and ledger builder apply
  the annual credit cap and balance caps when the events are replayed.

SEE ALSO:
  - simulator.go: Replays these events against caps
  - ledger.go: Renders them as ledger entries
*/
package pto

// AccrualEvent is one month's nominal (pre-cap) grant to both pools.
type AccrualEvent struct {
	Date     Date
	Standard Hours
	Flex     Hours
}

// GenerateAccrualEvents produces the monthly schedule from base through
// December 31 of base.Year()+yearsAhead, inclusive.
func GenerateAccrualEvents(base Date, yearsAhead int, cfg Config) []AccrualEvent {
	end := EndOfYear(base.Year() + yearsAhead)

	current := base.StartOfMonth()
	if base.Day() > 1 {
		current = current.AddMonths(1)
	}

	var events []AccrualEvent
	for current.BeforeOrEqual(end) {
		events = append(events, AccrualEvent{
			Date:     current,
			Standard: cfg.StandardMonthlyRate,
			Flex:     cfg.flexMonthly(current.Month()),
		})
		current = current.AddMonths(1)
	}
	return events
}

// InitialFlexAccruedThisYear replays January through asOf's month applying
// the annual credit cap incrementally, yielding the flex already credited
// this calendar year. The simulator needs this seed so a mid-year start
// does not hand out a full year of credit room again.
func InitialFlexAccruedThisYear(asOf Date, cfg Config) Hours {
	accrued := ZeroHours()
	for month := 1; month <= int(asOf.Month()); month++ {
		remaining := cfg.FlexAnnualAccrualCap.Sub(accrued)
		if !remaining.IsPositive() {
			break
		}
		grant := cfg.FlexJanMonthly
		if month > 1 {
			grant = cfg.FlexOtherMonthly
		}
		accrued = accrued.Add(grant.Min(remaining))
	}
	return accrued
}
