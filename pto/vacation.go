/*
vacation.go - Vacation requests and per-workday expansion

PURPOSE:
  A VacationRequest states TOTAL hours wanted from each pool across a date
  span. The expander turns that intent into per-workday deduction events,
  skipping weekends and observed holidays.

ALLOCATION RULE:
  Walk the span's workdays in order. Each day takes
  min(workdayHours, remainingStandard+remainingFlex), drawn from the
  standard pool first and then from flex. Once both pools are exhausted,
  expansion stops: trailing workdays get no event.

NO VALIDATION:
  Totals are accepted as given. Under-specified totals leave later days
  untouched; over-specified totals simply never apply the excess. Whether
  the resulting deductions drive a balance negative is the simulator's
  concern (surfaced as a shortage, not an error).
*/
package pto

// VacationRequest is a user-entered intent to take time off.
// StandardHours/FlexHours are totals across the whole span, not per day.
type VacationRequest struct {
	ID            string
	StartDate     Date
	EndDate       Date // zero value means a single-day request
	StandardHours Hours
	FlexHours     Hours
	Name          string
}

// Span returns the request's inclusive date range.
func (v VacationRequest) Span() DateRange {
	end := v.EndDate
	if end.IsZero() {
		end = v.StartDate
	}
	return DateRange{Start: v.StartDate, End: end}
}

// VacationDayEvent is one workday's share of a request's deduction.
type VacationDayEvent struct {
	Date     Date
	ParentID string
	Standard Hours
	Flex     Hours
}

// ExpandVacationDays distributes a request's hours across the span's
// workdays in ascending date order.
func ExpandVacationDays(v VacationRequest, cfg Config) []VacationDayEvent {
	span := v.Span()
	holidays := HolidaysForRange(span.Start, span.End)

	remStd := v.StandardHours
	remFlex := v.FlexHours

	var events []VacationDayEvent
	for _, d := range span.Days() {
		if d.IsWeekend() || holidays.Contains(d) {
			continue
		}

		dayTotal := cfg.WorkdayHours.Min(remStd.Add(remFlex))
		if !dayTotal.IsPositive() {
			break
		}

		stdUse := remStd.Min(dayTotal)
		remStd = remStd.Sub(stdUse)
		flexUse := remFlex.Min(dayTotal.Sub(stdUse))
		remFlex = remFlex.Sub(flexUse)

		events = append(events, VacationDayEvent{
			Date:     d,
			ParentID: v.ID,
			Standard: stdUse,
			Flex:     flexUse,
		})
	}
	return events
}
