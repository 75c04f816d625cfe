package pto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/pto-engine/pto"
)

// =============================================================================
// VACATION EXPANSION TESTS
// =============================================================================

func TestExpandVacationDays_SkipsWeekendsAndHolidays(t *testing.T) {
	// GIVEN: A 16h standard request over Wed-Fri with Thanksgiving between
	// WHEN: Expanding
	// THEN: Exactly two 8h standard day events, dated the 22nd and 24th

	v := pto.VacationRequest{
		ID:            "v-1",
		StartDate:     date(2023, time.November, 22),
		EndDate:       date(2023, time.November, 24),
		StandardHours: hours(16),
	}

	days := pto.ExpandVacationDays(v, pto.DefaultConfig())

	require.Len(t, days, 2)
	assert.Equal(t, date(2023, time.November, 22), days[0].Date)
	assert.Equal(t, date(2023, time.November, 24), days[1].Date)
	for _, d := range days {
		assert.True(t, d.Standard.Equal(hours(8)))
		assert.True(t, d.Flex.IsZero())
		assert.Equal(t, "v-1", d.ParentID)
	}
}

func TestExpandVacationDays_StandardDrawnBeforeFlex(t *testing.T) {
	// GIVEN: 12h standard + 4h flex over Mon-Wed Feb 3-5 2025
	// WHEN: Expanding
	// THEN: Day one is all standard; day two splits 4 standard + 4 flex

	v := pto.VacationRequest{
		ID:            "v-2",
		StartDate:     date(2025, time.February, 3),
		EndDate:       date(2025, time.February, 5),
		StandardHours: hours(12),
		FlexHours:     hours(4),
	}

	days := pto.ExpandVacationDays(v, pto.DefaultConfig())

	require.Len(t, days, 2)
	assert.True(t, days[0].Standard.Equal(hours(8)))
	assert.True(t, days[0].Flex.IsZero())
	assert.True(t, days[1].Standard.Equal(hours(4)))
	assert.True(t, days[1].Flex.Equal(hours(4)))
}

func TestExpandVacationDays_UnderAllocationLeavesTrailingDaysUntouched(t *testing.T) {
	// GIVEN: Only 8h requested across a full Mon-Fri week
	// WHEN: Expanding
	// THEN: One event; the remaining workdays get none, without error

	v := pto.VacationRequest{
		ID:            "v-3",
		StartDate:     date(2025, time.February, 3),
		EndDate:       date(2025, time.February, 7),
		StandardHours: hours(8),
	}

	days := pto.ExpandVacationDays(v, pto.DefaultConfig())

	require.Len(t, days, 1)
	assert.Equal(t, date(2025, time.February, 3), days[0].Date)
}

func TestExpandVacationDays_DayEventsNeverExceedRequestTotals(t *testing.T) {
	// GIVEN: Totals larger than the span can absorb
	// WHEN: Expanding 40h over three workdays
	// THEN: Each day is filled to the workday length; the excess is never applied

	v := pto.VacationRequest{
		ID:            "v-4",
		StartDate:     date(2025, time.February, 3),
		EndDate:       date(2025, time.February, 5),
		StandardHours: hours(40),
	}

	days := pto.ExpandVacationDays(v, pto.DefaultConfig())

	require.Len(t, days, 3)
	total := pto.ZeroHours()
	for _, d := range days {
		total = total.Add(d.Standard).Add(d.Flex)
	}
	assert.True(t, total.Equal(hours(24)), "got %s", total)
}

func TestExpandVacationDays_ZeroEndDateMeansSingleDay(t *testing.T) {
	v := pto.VacationRequest{
		ID:            "v-5",
		StartDate:     date(2025, time.February, 4), // Tuesday
		StandardHours: hours(8),
	}

	days := pto.ExpandVacationDays(v, pto.DefaultConfig())

	require.Len(t, days, 1)
	assert.Equal(t, date(2025, time.February, 4), days[0].Date)
}
