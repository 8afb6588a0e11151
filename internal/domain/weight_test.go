package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/fittrack/internal/domain"
)

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"0", false},
		{"0.0", false},
		{"-3", false},
		{"abc", false},
		{"72.5kg", false},
		{"NaN", false},
		{"Inf", false},
		{"1e400", false},
		{"7e1", false},
		{"0x1p6", false},
		{"1_0", false},
		{"72.", false},
		{"72.5", true},
		{"+72.5", true},
		{" 80 ", true},
		{"0.1", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CanSubmit(tt.text))
		})
	}
}

func TestParseWeight(t *testing.T) {
	v, ok := domain.ParseWeight("72.5")
	assert.True(t, ok)
	assert.Equal(t, 72.5, v)

	_, ok = domain.ParseWeight("-1")
	assert.False(t, ok)
}

func TestWeightUnit(t *testing.T) {
	assert.Equal(t, domain.UnitLbs, domain.UnitKg.Toggle())
	assert.Equal(t, domain.UnitKg, domain.UnitLbs.Toggle())
	assert.True(t, domain.UnitKg.Valid())
	assert.False(t, domain.WeightUnit("stone").Valid())

	u, ok := domain.ParseWeightUnit(" Pounds ")
	assert.True(t, ok)
	assert.Equal(t, domain.UnitLbs, u)

	_, ok = domain.ParseWeightUnit("g")
	assert.False(t, ok)
}

func TestExerciseSummary(t *testing.T) {
	assert.Equal(t, "4 × 8 · 60 kg", domain.Exercise{Sets: 4, Reps: 8, WeightKg: 60}.Summary())
	assert.Equal(t, "30m", domain.Exercise{Duration: 30 * time.Minute}.Summary())
	assert.Equal(t, "45s", domain.Exercise{Duration: 45 * time.Second}.Summary())
	assert.Equal(t, "", domain.Exercise{}.Summary())
}

func TestMealSummary(t *testing.T) {
	m := domain.Meal{Slot: domain.MealSlotLunch, Time: "12:30", Calories: 640}
	assert.Equal(t, "Lunch · 12:30 · 640 kcal", m.Summary())
	assert.Equal(t, "Meal", domain.Meal{}.Summary())
}
