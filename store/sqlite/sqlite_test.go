package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/pto-engine/pto"
	"github.com/warp/pto-engine/store"
	"github.com/warp/pto-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.New(filepath.Join(t.TempDir(), "pto.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func date(y int, m time.Month, d int) pto.Date {
	return pto.NewDate(y, m, d)
}

func TestVacationRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	v := pto.VacationRequest{
		ID:            "42",
		StartDate:     date(2025, time.June, 2),
		EndDate:       date(2025, time.June, 6),
		StandardHours: pto.NewHours(13.34),
		FlexHours:     pto.NewHours(8),
		Name:          "Summer",
	}
	require.NoError(t, st.SaveVacation(ctx, v))

	got, err := st.GetVacation(ctx, "42")
	require.NoError(t, err)
	assert.True(t, got.StartDate.Equal(v.StartDate))
	assert.True(t, got.EndDate.Equal(v.EndDate))
	// Decimal text round-trip keeps the exact value.
	assert.True(t, got.StandardHours.Equal(pto.NewHours(13.34)))
	assert.Equal(t, "Summer", got.Name)
}

func TestSaveVacation_ReplacesByID(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	v := pto.VacationRequest{ID: "1", StartDate: date(2025, time.June, 2), StandardHours: pto.NewHours(8)}
	require.NoError(t, st.SaveVacation(ctx, v))

	v.StandardHours = pto.NewHours(16)
	require.NoError(t, st.SaveVacation(ctx, v))

	list, err := st.ListVacations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].StandardHours.Equal(pto.NewHours(16)))
}

func TestListVacations_OrderedByStartDate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveVacation(ctx, pto.VacationRequest{ID: "b", StartDate: date(2025, time.August, 1)}))
	require.NoError(t, st.SaveVacation(ctx, pto.VacationRequest{ID: "a", StartDate: date(2025, time.March, 1)}))

	list, err := st.ListVacations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
}

func TestDeleteVacation(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveVacation(ctx, pto.VacationRequest{ID: "1", StartDate: date(2025, time.June, 2)}))
	require.NoError(t, st.DeleteVacation(ctx, "1"))

	_, err := st.GetVacation(ctx, "1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, st.DeleteVacation(ctx, "1"), store.ErrNotFound)
}

func TestSnapshotRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	raw := []byte(`{"exportDate":"2026-06-15","currentStandardPto":120}`)
	require.NoError(t, st.SaveSnapshot(ctx, date(2026, time.June, 15), raw))

	got, exportDate, err := st.LatestSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
	assert.True(t, exportDate.Equal(date(2026, time.June, 15)))
}

func TestLatestSnapshot_Empty(t *testing.T) {
	st := newTestStore(t)

	_, _, err := st.LatestSnapshot(context.Background())
	assert.ErrorIs(t, err, store.ErrNotFound)
}
