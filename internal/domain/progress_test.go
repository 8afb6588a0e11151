package domain_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/fittrack/internal/domain"
)

func randomExercises(n int) []domain.Exercise {
	items := make([]domain.Exercise, n)
	for i := range items {
		items[i] = domain.Exercise{
			ID:        gofakeit.UUID(),
			Name:      gofakeit.Name(),
			Sets:      gofakeit.Number(1, 6),
			Reps:      gofakeit.Number(1, 15),
			Completed: gofakeit.Bool(),
		}
	}
	return items
}

func TestAggregate_CountsCompletedItems(t *testing.T) {
	gofakeit.Seed(42)

	for round := 0; round < 200; round++ {
		items := randomExercises(gofakeit.Number(0, 40))

		want := 0
		for _, it := range items {
			if it.Completed {
				want++
			}
		}

		agg := domain.Aggregate(items)
		assert.Equal(t, want, agg.Completed)
		assert.Equal(t, len(items), agg.Total)
		assert.LessOrEqual(t, agg.Completed, agg.Total)
	}
}

func TestAggregate_EmptyCollection(t *testing.T) {
	agg := domain.Aggregate([]domain.Meal{})

	assert.Equal(t, 0, agg.Completed)
	assert.Equal(t, 0, agg.Total)
	assert.Equal(t, 0.0, agg.Percent())
	assert.False(t, agg.IsComplete(), "empty collection must not count as complete")
}

func TestCompletionAggregate_Percent(t *testing.T) {
	tests := []struct {
		name     string
		agg      domain.CompletionAggregate
		percent  float64
		complete bool
	}{
		{"none", domain.CompletionAggregate{Completed: 0, Total: 4}, 0, false},
		{"quarter", domain.CompletionAggregate{Completed: 1, Total: 4}, 25, false},
		{"third", domain.CompletionAggregate{Completed: 1, Total: 3}, 100.0 / 3, false},
		{"all", domain.CompletionAggregate{Completed: 4, Total: 4}, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.percent, tt.agg.Percent(), 1e-9)
			assert.Equal(t, tt.complete, tt.agg.IsComplete())
		})
	}
}

func TestAggregate_RecomputedAfterToggle(t *testing.T) {
	meals := []domain.Meal{
		{ID: "m1", Name: "Oats"},
		{ID: "m2", Name: "Salad"},
	}
	require.Equal(t, 0, domain.Aggregate(meals).Completed)

	meals[1].Completed = true
	agg := domain.Aggregate(meals)
	assert.Equal(t, 1, agg.Completed)
	assert.Equal(t, "m2", meals[1].ItemID(), "toggling must not change identity")

	meals[0].Completed = true
	assert.True(t, domain.Aggregate(meals).IsComplete())
}

func TestPlanProgress(t *testing.T) {
	plan := domain.DayPlan{
		Day: "2026-10-19",
		Exercises: []domain.Exercise{
			{ID: "e1", Completed: true},
			{ID: "e2"},
		},
		Meals: []domain.Meal{
			{ID: "m1", Completed: true},
			{ID: "m2", Completed: true},
			{ID: "m3"},
		},
	}

	ex, meals, overall := domain.PlanProgress(plan)
	assert.Equal(t, domain.CompletionAggregate{Completed: 1, Total: 2}, ex)
	assert.Equal(t, domain.CompletionAggregate{Completed: 2, Total: 3}, meals)
	assert.Equal(t, domain.CompletionAggregate{Completed: 3, Total: 5}, overall)
}

func TestDayPlan_CloneIsIndependent(t *testing.T) {
	plan := domain.DayPlan{
		Day:       "2026-10-19",
		Exercises: []domain.Exercise{{ID: "e1"}},
		Meals:     []domain.Meal{{ID: "m1", Ingredients: []string{"oats"}}},
	}

	clone := plan.Clone()
	clone.Exercises[0].Completed = true
	clone.Meals[0].Ingredients[0] = "rice"

	assert.False(t, plan.Exercises[0].Completed)
	assert.Equal(t, "oats", plan.Meals[0].Ingredients[0])
}
