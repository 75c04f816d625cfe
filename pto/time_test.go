package pto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/pto-engine/pto"
)

// =============================================================================
// TEST HELPERS (shared by the package's test files)
// =============================================================================

func date(year int, month time.Month, day int) pto.Date {
	return pto.NewDate(year, month, day)
}

func hours(v float64) pto.Hours {
	return pto.NewHours(v)
}

// =============================================================================
// DATE TESTS
// =============================================================================

func TestDate_DisplayFormatsAsMDYYYY(t *testing.T) {
	d := date(2023, time.November, 5)
	assert.Equal(t, "11/5/2023", d.Display())
}

func TestDate_DisplayOfZeroDateIsEmpty(t *testing.T) {
	var d pto.Date
	assert.Equal(t, "", d.Display())
}

func TestDate_ParseRoundTrip(t *testing.T) {
	d, err := pto.ParseDate("2026-06-20")
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.June, 20), d)
	assert.Equal(t, "2026-06-20", d.String())
}

func TestDate_ParseRejectsGarbage(t *testing.T) {
	_, err := pto.ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestDateRange_DaysIsRestartable(t *testing.T) {
	// GIVEN: A three-day range
	// WHEN: Iterating twice
	// THEN: Both passes see the same days; no shared state is mutated

	r := pto.DateRange{Start: date(2025, time.March, 1), End: date(2025, time.March, 3)}

	first := r.Days()
	second := r.Days()

	require.Len(t, first, 3)
	assert.Equal(t, first, second)
	assert.Equal(t, date(2025, time.March, 1), first[0])
	assert.Equal(t, date(2025, time.March, 3), first[2])
}

func TestDateRange_InvertedRangeIsEmpty(t *testing.T) {
	r := pto.DateRange{Start: date(2025, time.March, 3), End: date(2025, time.March, 1)}
	assert.Empty(t, r.Days())
}
