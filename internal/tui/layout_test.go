package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateLayout(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		sidebar   int
		card      int
		exercises int
		meals     int
	}{
		{"wide", 130, 30, 44, 32, 80},
		{"exact fit", 126, 30, 44, 32, 80},
		{"no sidebar", 100, 0, 44, 0, 48},
		{"shrunk cards", 70, 0, 32, 0, 36},
		{"minimum cards", 20, 0, MinCardWidth, 0, 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := calculateLayout(tt.width, 44)
			assert.Equal(t, tt.sidebar, l.sidebarWidth)
			assert.Equal(t, tt.card, l.cardWidth)
			assert.Equal(t, tt.card+SectionPad, l.sectionWidth)
			assert.Equal(t, tt.exercises, l.exercisesX)
			assert.Equal(t, tt.meals, l.mealsX)
		})
	}
}

func TestScreenLayout_SectionAt(t *testing.T) {
	l := calculateLayout(130, 44)

	area, x, ok := l.sectionAt(40)
	assert.True(t, ok)
	assert.Equal(t, focusExercises, area)
	assert.Equal(t, 8, x)

	area, x, ok = l.sectionAt(80)
	assert.True(t, ok)
	assert.Equal(t, focusMeals, area)
	assert.Zero(t, x)

	// Sidebar and gutters are not sections
	_, _, ok = l.sectionAt(10)
	assert.False(t, ok)
	_, _, ok = l.sectionAt(78)
	assert.False(t, ok)
}
