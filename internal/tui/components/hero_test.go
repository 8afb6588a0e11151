package components_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/fittrack/internal/tui/components"
)

func TestHero_TickAdvances(t *testing.T) {
	h := components.NewHero(time.Millisecond)
	assert.Zero(t, h.Angle())

	h, cmd := h.Update(components.HeroTickMsg{Time: time.Now()})
	assert.InDelta(t, 0.12, h.Angle(), 1e-9)
	assert.NotNil(t, cmd, "next frame is scheduled")
}

func TestHero_IgnoresOtherMessages(t *testing.T) {
	h := components.NewHero(time.Millisecond)

	h, cmd := h.Update(components.WeightSkippedMsg{})
	assert.Zero(t, h.Angle())
	assert.Nil(t, cmd)
}

func TestHero_Frame(t *testing.T) {
	h := components.NewHero(0)

	for i := 0; i < 3; i++ {
		rows := h.Frame()
		require.Len(t, rows, h.Height)
		for _, row := range rows {
			assert.Equal(t, h.Width, utf8.RuneCountInString(row))
		}
		assert.True(t, strings.ContainsRune(strings.Join(rows, ""), '●'))

		h, _ = h.Update(components.HeroTickMsg{})
	}
}

func TestHero_EmptyWhenSizeless(t *testing.T) {
	h := components.NewHero(0)
	h.Width = 0
	assert.Nil(t, h.Frame())
}
