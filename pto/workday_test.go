package pto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warp/pto-engine/pto"
)

// =============================================================================
// WORKDAY COUNTER TESTS
// =============================================================================

func TestCountWorkdays_ThanksgivingWeek(t *testing.T) {
	// GIVEN: Wed Nov 22 - Fri Nov 24 2023, Thanksgiving on the 23rd
	// WHEN: Classifying the range
	// THEN: Two workdays, no weekend days, one holiday found

	start := date(2023, time.November, 22)
	end := date(2023, time.November, 24)

	report := pto.CountWorkdays(start, end, pto.HolidaysForRange(start, end))

	assert.Equal(t, 2, report.Workdays)
	assert.Equal(t, 0, report.WeekendDays)
	assert.Equal(t, []string{"Thanksgiving"}, report.HolidaysFound)
}

func TestCountWorkdays_EveryDayCountedExactlyOnce(t *testing.T) {
	// GIVEN: A full week containing a weekend and a holiday
	// WHEN: Classifying Mon Nov 20 - Sun Nov 26 2023
	// THEN: workdays + weekends + holidays equals the day count

	start := date(2023, time.November, 20)
	end := date(2023, time.November, 26)

	report := pto.CountWorkdays(start, end, pto.HolidaysForRange(start, end))

	assert.Equal(t, 4, report.Workdays)
	assert.Equal(t, 2, report.WeekendDays)
	assert.Len(t, report.HolidaysFound, 1)
	assert.Equal(t, 7, report.Workdays+report.WeekendDays+len(report.HolidaysFound))
}

func TestCountWorkdays_WeekendNeverCheckedAgainstHolidays(t *testing.T) {
	// GIVEN: Jan 1 2023 is a Sunday; the holiday is observed Monday Jan 2
	// WHEN: Classifying Jan 1 - Jan 2
	// THEN: Sunday counts as weekend, Monday as the holiday

	start := date(2023, time.January, 1)
	end := date(2023, time.January, 2)

	report := pto.CountWorkdays(start, end, pto.HolidaysForRange(start, end))

	assert.Equal(t, 0, report.Workdays)
	assert.Equal(t, 1, report.WeekendDays)
	assert.Equal(t, []string{"New Year's Day"}, report.HolidaysFound)
}

func TestSuggestHours_EightHoursPerWorkday(t *testing.T) {
	// GIVEN: Two workdays around Thanksgiving, 8h workdays
	// WHEN: Suggesting an hour count
	// THEN: 16 hours

	s := pto.SuggestHours(date(2023, time.November, 22), date(2023, time.November, 24), pto.DefaultConfig())

	assert.True(t, s.Hours.Equal(hours(16)), "got %s", s.Hours)
	assert.Equal(t, 2, s.Workdays)
	assert.Equal(t, 0, s.WeekendDays)
	assert.Equal(t, []string{"Thanksgiving"}, s.HolidaysFound)
}
