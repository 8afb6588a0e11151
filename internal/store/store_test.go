package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/fittrack/internal/domain"
	"github.com/mmcdole/fittrack/internal/store"
)

func testPlan() *domain.DayPlan {
	return &domain.DayPlan{
		Day: "2026-10-19",
		Exercises: []domain.Exercise{
			{ID: "squat", Name: "Back Squat", Sets: 5, Reps: 5, WeightKg: 100},
			{ID: "row", Name: "Rowing", Duration: 20 * time.Minute, Completed: true},
		},
		Meals: []domain.Meal{
			{ID: "oats", Name: "Overnight Oats", Slot: domain.MealSlotBreakfast, Ingredients: []string{"oats", "milk"}},
		},
	}
}

func openStores(t *testing.T) map[string]*store.PlanStore {
	t.Helper()

	mem, err := store.NewPlanStore("")
	require.NoError(t, err)

	disk, err := store.NewPlanStore(filepath.Join(t.TempDir(), "data", "fittrack.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = mem.Close()
		_ = disk.Close()
	})

	return map[string]*store.PlanStore{"memory": mem, "bolt": disk}
}

func TestPlanStore_PlanRoundTrip(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok := st.GetPlan("2026-10-19")
			assert.False(t, ok)

			require.NoError(t, st.SavePlan(testPlan()))

			got, ok := st.GetPlan("2026-10-19")
			require.True(t, ok)
			assert.Equal(t, testPlan(), got)
		})
	}
}

func TestPlanStore_SavePlanRequiresDay(t *testing.T) {
	st, err := store.NewPlanStore("")
	require.NoError(t, err)

	err = st.SavePlan(&domain.DayPlan{})
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
	assert.ErrorIs(t, st.SavePlan(nil), domain.ErrPlanNotFound)
}

func TestPlanStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fittrack.db")

	st, err := store.NewPlanStore(path)
	require.NoError(t, err)
	require.NoError(t, st.SavePlan(testPlan()))
	require.NoError(t, st.SetCheckInStatus("2026-10-19", domain.CheckInSkipped))
	require.NoError(t, st.Close())

	reopened, err := store.NewPlanStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok := reopened.GetPlan("2026-10-19")
	require.True(t, ok)
	assert.True(t, got.Exercises[1].Completed)
	assert.Equal(t, domain.CheckInSkipped, reopened.GetCheckInStatus("2026-10-19"))
}

func TestPlanStore_Weights(t *testing.T) {
	base := time.Date(2026, 10, 18, 7, 0, 0, 0, time.UTC)

	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			entries := []domain.WeightEntry{
				{ID: "a", Day: "2026-10-18", Value: 80.4, Unit: domain.UnitKg, CreatedAt: base},
				{ID: "b", Day: "2026-10-19", Value: 80.1, Unit: domain.UnitKg, CreatedAt: base.Add(24 * time.Hour)},
				{ID: "c", Day: "2026-10-19", Value: 176.2, Unit: domain.UnitLbs, CreatedAt: base.Add(25 * time.Hour)},
			}
			for _, e := range entries {
				require.NoError(t, st.AddWeight(e))
			}

			latest, ok := st.LatestWeight("2026-10-19")
			require.True(t, ok)
			assert.Equal(t, "c", latest.ID)

			_, ok = st.LatestWeight("2026-10-20")
			assert.False(t, ok)

			all, err := st.ListWeights(0)
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].ID, all[1].ID, all[2].ID})

			two, err := st.ListWeights(2)
			require.NoError(t, err)
			assert.Len(t, two, 2)
		})
	}
}

func TestPlanStore_WeightsWithinOneSecond(t *testing.T) {
	base := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			entries := []domain.WeightEntry{
				{ID: "a", Day: "2026-10-19", Value: 70, Unit: domain.UnitKg, CreatedAt: base},
				{ID: "b", Day: "2026-10-19", Value: 70.5, Unit: domain.UnitKg, CreatedAt: base.Add(120 * time.Millisecond)},
				{ID: "c", Day: "2026-10-19", Value: 71, Unit: domain.UnitKg, CreatedAt: base.Add(500 * time.Millisecond)},
				{ID: "d", Day: "2026-10-19", Value: 71.5, Unit: domain.UnitKg, CreatedAt: base.Add(123 * time.Millisecond)},
			}
			for _, e := range entries {
				require.NoError(t, st.AddWeight(e))
			}

			latest, ok := st.LatestWeight("2026-10-19")
			require.True(t, ok)
			assert.Equal(t, 71.0, latest.Value)

			all, err := st.ListWeights(0)
			require.NoError(t, err)
			require.Len(t, all, 4)
			assert.Equal(t, []string{"c", "d", "b", "a"}, []string{all[0].ID, all[1].ID, all[2].ID, all[3].ID})
		})
	}
}

func TestPlanStore_AddWeightRejectsInvalid(t *testing.T) {
	st, err := store.NewPlanStore("")
	require.NoError(t, err)

	assert.ErrorIs(t, st.AddWeight(domain.WeightEntry{Value: 0, Unit: domain.UnitKg}), domain.ErrInvalidWeight)
	assert.ErrorIs(t, st.AddWeight(domain.WeightEntry{Value: -2, Unit: domain.UnitKg}), domain.ErrInvalidWeight)
	assert.ErrorIs(t, st.AddWeight(domain.WeightEntry{Value: 70, Unit: "stone"}), domain.ErrInvalidUnit)
}

func TestPlanStore_CheckInStatus(t *testing.T) {
	st, err := store.NewPlanStore("")
	require.NoError(t, err)

	assert.Equal(t, domain.CheckInPending, st.GetCheckInStatus("2026-10-19"))
	require.NoError(t, st.SetCheckInStatus("2026-10-19", domain.CheckInLogged))
	assert.Equal(t, domain.CheckInLogged, st.GetCheckInStatus("2026-10-19"))
}
