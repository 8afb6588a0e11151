package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/mmcdole/fittrack/internal/adapter"
	"github.com/mmcdole/fittrack/internal/domain"
	"github.com/mmcdole/fittrack/internal/service"
	"github.com/mmcdole/fittrack/internal/store"
)

const testDay = "2026-10-19"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testTemplate() domain.DayPlan {
	return domain.DayPlan{
		Exercises: []domain.Exercise{
			{ID: "squat", Name: "Back Squat", Sets: 5, Reps: 5},
			{ID: "plank", Name: "Plank", Duration: time.Minute, Completed: true},
		},
		Meals: []domain.Meal{
			{ID: "oats", Name: "Overnight Oats", Slot: domain.MealSlotBreakfast},
		},
	}
}

func newMockedTracker(t *testing.T) (*service.TrackerService, *MocktrackerStore) {
	ctrl := gomock.NewController(t)
	storeMock := NewMocktrackerStore(ctrl)

	tracker := service.NewTrackerService(storeMock, testTemplate(), adapter.NullLogger())
	tracker.Now = func() time.Time { return time.Date(2026, 10, 19, 7, 30, 0, 0, time.UTC) }
	tracker.NewID = func() string { return "entry-1" }
	return tracker, storeMock
}

func TestTrackerService_PlanSeedsFromTemplate(t *testing.T) {
	tracker, storeMock := newMockedTracker(t)

	var saved *domain.DayPlan
	storeMock.EXPECT().GetPlan(testDay).Return(nil, false)
	storeMock.EXPECT().SavePlan(gomock.Any()).DoAndReturn(func(p *domain.DayPlan) error {
		saved = p
		return nil
	})

	plan, err := tracker.Plan(context.Background(), testDay)
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, testDay, plan.Day)
	assert.Len(t, plan.Exercises, 2)
	assert.Len(t, plan.Meals, 1)
	assert.False(t, plan.Exercises[1].Completed, "seeded plans start with nothing done")
	assert.Equal(t, plan, saved)
}

func TestTrackerService_PlanReturnsStored(t *testing.T) {
	tracker, storeMock := newMockedTracker(t)

	stored := &domain.DayPlan{Day: testDay, Meals: []domain.Meal{{ID: "x", Completed: true}}}
	storeMock.EXPECT().GetPlan(testDay).Return(stored, true)

	plan, err := tracker.Plan(context.Background(), testDay)
	require.NoError(t, err)
	assert.Same(t, stored, plan)
}

func TestTrackerService_ToggleItem(t *testing.T) {
	tracker, storeMock := newMockedTracker(t)

	stored := &domain.DayPlan{
		Day:       testDay,
		Exercises: []domain.Exercise{{ID: "squat"}, {ID: "plank"}},
		Meals:     []domain.Meal{{ID: "oats"}},
	}
	storeMock.EXPECT().GetPlan(testDay).Return(stored, true)
	storeMock.EXPECT().SavePlan(gomock.Any()).DoAndReturn(func(p *domain.DayPlan) error {
		assert.True(t, p.Exercises[1].Completed)
		return nil
	})

	plan, err := tracker.ToggleItem(context.Background(), testDay, domain.KindExercise, "plank")
	require.NoError(t, err)

	assert.False(t, plan.Exercises[0].Completed)
	assert.True(t, plan.Exercises[1].Completed)
	assert.Equal(t, []string{"squat", "plank"}, []string{plan.Exercises[0].ID, plan.Exercises[1].ID})
}

func TestTrackerService_ToggleItemNotFound(t *testing.T) {
	tracker, storeMock := newMockedTracker(t)

	storeMock.EXPECT().GetPlan(testDay).Return(&domain.DayPlan{Day: testDay}, true).Times(2)

	_, err := tracker.ToggleItem(context.Background(), testDay, domain.KindMeal, "missing")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = tracker.ToggleItem(context.Background(), testDay, domain.KindExercise, "missing")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestTrackerService_ToggleItemSaveError(t *testing.T) {
	tracker, storeMock := newMockedTracker(t)

	boom := errors.New("disk full")
	storeMock.EXPECT().GetPlan(testDay).Return(&domain.DayPlan{Day: testDay, Meals: []domain.Meal{{ID: "oats"}}}, true)
	storeMock.EXPECT().SavePlan(gomock.Any()).Return(boom)

	_, err := tracker.ToggleItem(context.Background(), testDay, domain.KindMeal, "oats")
	assert.ErrorIs(t, err, boom)
}

func TestTrackerService_LogWeight(t *testing.T) {
	tracker, storeMock := newMockedTracker(t)

	want := domain.WeightEntry{
		ID:        "entry-1",
		Day:       testDay,
		Value:     72.5,
		Unit:      domain.UnitKg,
		CreatedAt: time.Date(2026, 10, 19, 7, 30, 0, 0, time.UTC),
	}
	gomock.InOrder(
		storeMock.EXPECT().AddWeight(want).Return(nil),
		storeMock.EXPECT().SetCheckInStatus(testDay, domain.CheckInLogged).Return(nil),
	)

	entry, err := tracker.LogWeightText(context.Background(), testDay, " 72.5 ", domain.UnitKg)
	require.NoError(t, err)
	assert.Equal(t, want, *entry)
}

func TestTrackerService_LogWeightRejectsInvalid(t *testing.T) {
	tracker, _ := newMockedTracker(t)
	ctx := context.Background()

	for _, text := range []string{"", "0", "-3", "abc", "NaN"} {
		_, err := tracker.LogWeightText(ctx, testDay, text, domain.UnitKg)
		assert.ErrorIs(t, err, domain.ErrInvalidWeight, "text %q", text)
	}

	_, err := tracker.LogWeight(ctx, testDay, 70, "stone")
	assert.ErrorIs(t, err, domain.ErrInvalidUnit)
}

func TestTrackerService_CheckInPrompt(t *testing.T) {
	tracker, storeMock := newMockedTracker(t)

	storeMock.EXPECT().GetCheckInStatus(testDay).Return(domain.CheckInPending)
	assert.True(t, tracker.NeedsCheckIn(testDay))

	storeMock.EXPECT().SetCheckInStatus(testDay, domain.CheckInSkipped).Return(nil)
	require.NoError(t, tracker.SkipCheckIn(context.Background(), testDay))

	storeMock.EXPECT().GetCheckInStatus(testDay).Return(domain.CheckInSkipped)
	assert.False(t, tracker.NeedsCheckIn(testDay))
}

func TestTrackerService_CancelledContext(t *testing.T) {
	tracker, _ := newMockedTracker(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tracker.Plan(ctx, testDay)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, tracker.SkipCheckIn(ctx, testDay), context.Canceled)
}

func TestTrackerService_WithMemoryStore(t *testing.T) {
	st, err := store.NewPlanStore("")
	require.NoError(t, err)
	defer st.Close()

	tracker := service.NewTrackerService(st, testTemplate(), adapter.NullLogger())
	ctx := context.Background()

	_, err = tracker.ToggleItem(ctx, testDay, domain.KindMeal, "oats")
	require.NoError(t, err)
	_, err = tracker.ToggleItem(ctx, testDay, domain.KindExercise, "squat")
	require.NoError(t, err)

	ex, meals, overall, err := tracker.Progress(ctx, testDay)
	require.NoError(t, err)
	assert.Equal(t, domain.CompletionAggregate{Completed: 1, Total: 2}, ex)
	assert.True(t, meals.IsComplete())
	assert.Equal(t, 2, overall.Completed)
	assert.Equal(t, 3, overall.Total)

	// Toggling twice restores the original state
	_, err = tracker.ToggleItem(ctx, testDay, domain.KindMeal, "oats")
	require.NoError(t, err)
	_, meals, _, err = tracker.Progress(ctx, testDay)
	require.NoError(t, err)
	assert.Equal(t, 0, meals.Completed)

	_, err = tracker.LogWeight(ctx, testDay, 80.2, domain.UnitKg)
	require.NoError(t, err)
	assert.False(t, tracker.NeedsCheckIn(testDay))

	latest, ok := tracker.LatestWeight(testDay)
	require.True(t, ok)
	assert.Equal(t, 80.2, latest.Value)

	history, err := tracker.WeightHistory(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestTrackerService_DeferExercise(t *testing.T) {
	tracker, storeMock := newMockedTracker(t)

	stored := &domain.DayPlan{
		Day:       testDay,
		Exercises: []domain.Exercise{{ID: "squat", Completed: true}, {ID: "row"}, {ID: "plank"}},
	}
	storeMock.EXPECT().GetPlan(testDay).Return(stored, true).Times(3)
	storeMock.EXPECT().SavePlan(gomock.Any()).Return(nil)

	plan, err := tracker.DeferExercise(context.Background(), testDay, "squat")
	require.NoError(t, err)

	ids := make([]string, len(plan.Exercises))
	for i, e := range plan.Exercises {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"row", "plank", "squat"}, ids)
	assert.True(t, plan.Exercises[2].Completed, "deferring keeps completion")

	// Already last: nothing to save
	_, err = tracker.DeferExercise(context.Background(), testDay, "squat")
	require.NoError(t, err)

	_, err = tracker.DeferExercise(context.Background(), testDay, "missing")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
