package pto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/pto-engine/pto"
)

// =============================================================================
// LEDGER TEST HELPERS
// =============================================================================

func findEntry(entries []pto.LedgerEntry, match func(pto.LedgerEntry) bool) *pto.LedgerEntry {
	for i := range entries {
		if match(entries[i]) {
			return &entries[i]
		}
	}
	return nil
}

// =============================================================================
// LEDGER BUILDER TESTS
// =============================================================================

func TestBuildLedger_InitialEntryCarriesInputBalances(t *testing.T) {
	today := date(2025, time.June, 10)
	ledger := pto.BuildLedger(today, pto.Balance{Standard: hours(100), Flex: hours(20)}, nil, 0, pto.DefaultConfig())

	require.NotEmpty(t, ledger.Entries)
	first := ledger.Entries[0]
	assert.Equal(t, pto.EntryInitial, first.Type)
	assert.Equal(t, today, first.Date)
	assert.True(t, first.StandardChange.IsZero())
	assert.True(t, first.FlexChange.IsZero())
	assert.True(t, first.RunningStandard.Equal(hours(100)))
	assert.True(t, first.RunningFlex.Equal(hours(20)))
}

func TestBuildLedger_EntriesSortedByDate(t *testing.T) {
	ledger := pto.BuildLedger(date(2025, time.January, 15), pto.Balance{}, nil, 1, pto.DefaultConfig())

	for i := 1; i < len(ledger.Entries); i++ {
		assert.True(t, ledger.Entries[i-1].Date.BeforeOrEqual(ledger.Entries[i].Date),
			"entries out of order at %d", i)
	}
}

func TestBuildLedger_RolloverAttachedToJan1Accrual(t *testing.T) {
	// GIVEN: Balances above both caps on Dec 20
	// WHEN: Projecting across the year boundary
	// THEN: The Jan 1 accrual entry carries the lost amounts; no separate
	//       rollover entry exists

	ledger := pto.BuildLedger(
		date(2026, time.December, 20),
		pto.Balance{Standard: hours(200), Flex: hours(90)},
		nil, 1, pto.DefaultConfig(),
	)

	jan1 := findEntry(ledger.Entries, func(e pto.LedgerEntry) bool {
		return e.Type == pto.EntryAccrual && e.Date.Equal(date(2027, time.January, 1))
	})
	require.NotNil(t, jan1, "Jan 1 accrual entry not found")
	require.NotNil(t, jan1.YearEnd, "year-end info missing on Jan 1 accrual")

	assert.Equal(t, 2026, jan1.YearEnd.FromYear)
	assert.Equal(t, 2027, jan1.YearEnd.ToYear)
	assert.True(t, jan1.YearEnd.LostStandard.Equal(hours(40)), "got %s", jan1.YearEnd.LostStandard)
	assert.True(t, jan1.YearEnd.LostFlex.Equal(hours(42)), "got %s", jan1.YearEnd.LostFlex)

	for _, e := range ledger.Entries {
		if e.YearEnd != nil {
			assert.Equal(t, date(2027, time.January, 1), e.Date)
		}
	}
}

func TestBuildLedger_CappedAccrualShowsActualDelta(t *testing.T) {
	// GIVEN: Standard at 159 with the cap at 160
	// WHEN: The next monthly accrual posts
	// THEN: The entry records a 1h credit, not the nominal 13.34

	ledger := pto.BuildLedger(
		date(2025, time.November, 2),
		pto.Balance{Standard: hours(159)},
		nil, 0, pto.DefaultConfig(),
	)

	dec1 := findEntry(ledger.Entries, func(e pto.LedgerEntry) bool {
		return e.Type == pto.EntryAccrual && e.Date.Equal(date(2025, time.December, 1))
	})
	require.NotNil(t, dec1)
	assert.True(t, dec1.StandardChange.Equal(hours(1)), "got %s", dec1.StandardChange)
	assert.True(t, dec1.RunningStandard.Equal(hours(160)))
}

func TestBuildLedger_AggregatesVacationAndFlagsShortage(t *testing.T) {
	// GIVEN: Zero balances and a 40h request over three workdays
	// WHEN: Building the ledger
	// THEN: One aggregated vacation entry with the summed deduction, the
	//       running balances after its last day, and the shortage flag set

	vacations := []pto.VacationRequest{{
		ID:            "42",
		StartDate:     date(2025, time.February, 3), // Mon
		EndDate:       date(2025, time.February, 5), // Wed
		StandardHours: hours(40),                    // exceeds 3 workdays on purpose
		Name:          "Annie's Birthday Trip",
	}}

	ledger := pto.BuildLedger(date(2025, time.January, 15), pto.Balance{}, vacations, 0, pto.DefaultConfig())

	vac := findEntry(ledger.Entries, func(e pto.LedgerEntry) bool {
		return e.Type == pto.EntryVacation && e.VacationID == "42"
	})
	require.NotNil(t, vac, "aggregated vacation entry not found")

	assert.Equal(t, "Annie's Birthday Trip", vac.Name)
	assert.True(t, vac.StandardChange.Equal(hours(-24)), "got %s", vac.StandardChange)
	assert.True(t, vac.RunningStandard.Equal(hours(-10.66)), "got %s", vac.RunningStandard)
	assert.True(t, vac.CausesShortage)
	assert.True(t, ledger.HasAnyShortage)
}

func TestBuildLedger_AccrualPrecedesVacationOnSameDate(t *testing.T) {
	// GIVEN: A single-day vacation on the 1st of a month
	// WHEN: Building the ledger
	// THEN: The accrual entry for that date sorts before the vacation entry

	vacations := []pto.VacationRequest{{
		ID:            "7",
		StartDate:     date(2025, time.April, 1),
		StandardHours: hours(8),
	}}

	ledger := pto.BuildLedger(date(2025, time.March, 15), pto.Balance{}, vacations, 0, pto.DefaultConfig())

	apr1 := date(2025, time.April, 1)
	idxAccrual, idxVacation := -1, -1
	for i, e := range ledger.Entries {
		if !e.Date.Equal(apr1) {
			continue
		}
		switch e.Type {
		case pto.EntryAccrual:
			idxAccrual = i
		case pto.EntryVacation:
			idxVacation = i
		}
	}

	require.GreaterOrEqual(t, idxAccrual, 0)
	require.GreaterOrEqual(t, idxVacation, 0)
	assert.Less(t, idxAccrual, idxVacation)
}

func TestBuildLedger_VacationWithNoWorkdaysYieldsZeroEntry(t *testing.T) {
	// GIVEN: A request spanning only a weekend
	// WHEN: Building the ledger
	// THEN: The aggregated entry exists with zero deltas and no shortage

	vacations := []pto.VacationRequest{{
		ID:            "w",
		StartDate:     date(2025, time.February, 8), // Sat
		EndDate:       date(2025, time.February, 9), // Sun
		StandardHours: hours(8),
	}}

	ledger := pto.BuildLedger(date(2025, time.January, 15), pto.Balance{}, vacations, 0, pto.DefaultConfig())

	vac := findEntry(ledger.Entries, func(e pto.LedgerEntry) bool {
		return e.Type == pto.EntryVacation && e.VacationID == "w"
	})
	require.NotNil(t, vac)
	assert.True(t, vac.StandardChange.IsZero())
	assert.False(t, vac.CausesShortage)
	assert.False(t, ledger.HasAnyShortage)
}

func TestBuildLedger_ShortHorizonDiscardsRolloverMetadata(t *testing.T) {
	// GIVEN: Balances above the caps in December with a zero-year horizon,
	//        so no Jan 1 accrual is generated
	// WHEN: Building the ledger
	// THEN: No entry carries year-end info (documented limitation)

	ledger := pto.BuildLedger(
		date(2026, time.December, 20),
		pto.Balance{Standard: hours(200), Flex: hours(90)},
		nil, 0, pto.DefaultConfig(),
	)

	for _, e := range ledger.Entries {
		assert.Nil(t, e.YearEnd)
	}
}
