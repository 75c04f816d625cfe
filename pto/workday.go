package pto

// =============================================================================
// WORKDAY COUNTER
// =============================================================================

// WorkdayReport classifies every day of an inclusive range. A weekend day
// is never checked against the holiday set, so a holiday observed on a
// Saturday counts as a weekend day here.
type WorkdayReport struct {
	Workdays      int
	WeekendDays   int
	HolidaysFound []string // names in date order
}

// CountWorkdays walks [start, end] inclusive and buckets each day as a
// workday, a weekend day, or an observed holiday.
func CountWorkdays(start, end Date, holidays HolidaySet) WorkdayReport {
	var report WorkdayReport
	for _, d := range (DateRange{Start: start, End: end}).Days() {
		if d.IsWeekend() {
			report.WeekendDays++
			continue
		}
		if name, ok := holidays.Name(d); ok {
			report.HolidaysFound = append(report.HolidaysFound, name)
			continue
		}
		report.Workdays++
	}
	return report
}

// HoursSuggestion proposes a default request size for a date range. It is
// purely advisory and is never validated against any balance.
type HoursSuggestion struct {
	Hours         Hours
	Workdays      int
	WeekendDays   int
	HolidaysFound []string
}

// SuggestHours counts the workdays in [start, end] and multiplies by the
// configured workday length.
func SuggestHours(start, end Date, cfg Config) HoursSuggestion {
	holidays := HolidaysForRange(start, end)
	report := CountWorkdays(start, end, holidays)
	return HoursSuggestion{
		Hours:         cfg.WorkdayHours.MulInt(report.Workdays),
		Workdays:      report.Workdays,
		WeekendDays:   report.WeekendDays,
		HolidaysFound: report.HolidaysFound,
	}
}
