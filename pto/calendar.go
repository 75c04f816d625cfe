/*
calendar.go - Observed-holiday calendar

PURPOSE:
  Computes the set of company-observed US holidays for a year or a date
  range. Workday counting and vacation expansion both exclude these days.

THE SEVEN HOLIDAYS:
  Fixed-date (observed rule applies):
    New Year's Day    Jan 1
    Independence Day  Jul 4
    Christmas Day     Dec 25
  Nth-weekday (never lands on a weekend, no shift):
    MLK Day           3rd Monday of January
    Memorial Day      last Monday of May
    Labor Day         1st Monday of September
    Thanksgiving      4th Thursday of November

OBSERVED RULE:
  A fixed-date holiday falling on Saturday is observed the following
  Monday (+2 days); on Sunday, the following Monday (+1 day). Note this
  shifts Saturday FORWARD, not back to Friday as the federal convention
  does. That is the company policy this engine models.

SEE ALSO:
  - workday.go: Consumes HolidaySet when classifying days
  - vacation.go: Skips holidays when expanding requests
*/
package pto

import "time"

// =============================================================================
// HOLIDAY SET
// =============================================================================

// HolidaySet maps an observed date to the holiday's name. Build one with
// HolidaysForYear or HolidaysForRange and treat it as read-only.
type HolidaySet map[Date]string

// Name returns the holiday name observed on d, if any.
func (hs HolidaySet) Name(d Date) (string, bool) {
	name, ok := hs[d]
	return name, ok
}

// Contains reports whether d is an observed holiday.
func (hs HolidaySet) Contains(d Date) bool {
	_, ok := hs[d]
	return ok
}

// =============================================================================
// CALENDAR CONSTRUCTION
// =============================================================================

// HolidaysForYear returns the seven observed holidays for one year.
func HolidaysForYear(year int) HolidaySet {
	hs := make(HolidaySet, 7)

	hs[observed(NewDate(year, time.January, 1))] = "New Year's Day"
	hs[nthWeekday(year, time.January, time.Monday, 3)] = "MLK Day"
	hs[lastWeekday(year, time.May, time.Monday)] = "Memorial Day"
	hs[observed(NewDate(year, time.July, 4))] = "Independence Day"
	hs[nthWeekday(year, time.September, time.Monday, 1)] = "Labor Day"
	hs[nthWeekday(year, time.November, time.Thursday, 4)] = "Thanksgiving"
	hs[observed(NewDate(year, time.December, 25))] = "Christmas Day"

	return hs
}

// HolidaysForRange unions the single-year sets for every year touched by
// the inclusive range [start, end].
func HolidaysForRange(start, end Date) HolidaySet {
	hs := make(HolidaySet)
	for _, year := range (DateRange{Start: start, End: end}).Years() {
		for d, name := range HolidaysForYear(year) {
			hs[d] = name
		}
	}
	return hs
}

// observed shifts a weekend holiday forward to the following Monday.
func observed(d Date) Date {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDays(2)
	case time.Sunday:
		return d.AddDays(1)
	default:
		return d
	}
}

// nthWeekday returns the nth occurrence of a weekday within a month.
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) Date {
	d := NewDate(year, month, 1)
	count := 0
	for {
		if d.Weekday() == weekday {
			count++
			if count == n {
				return d
			}
		}
		d = d.AddDays(1)
	}
}

// lastWeekday returns the final occurrence of a weekday within a month.
func lastWeekday(year int, month time.Month, weekday time.Weekday) Date {
	d := NewDate(year, month+1, 1).AddDays(-1)
	for d.Weekday() != weekday {
		d = d.AddDays(-1)
	}
	return d
}
