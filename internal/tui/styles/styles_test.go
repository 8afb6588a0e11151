package styles_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/fittrack/internal/tui/styles"
)

// withColor renders styles as ANSI for the rest of the test
func withColor(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "Back Squat", 20, "Back Squat"},
		{"exact", "Back Squat", 10, "Back Squat"},
		{"ellipsis", "Bench Press", 8, "Bench..."},
		{"narrow", "abcdef", 2, "ab"},
		{"zero", "abc", 0, ""},
		{"wide runes", "ベンチプレス", 7, "ベン..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := styles.Truncate(tt.in, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, lipgloss.Width(got), tt.width)
		})
	}
}

func TestHighlightMatches(t *testing.T) {
	withColor(t)

	out := styles.HighlightMatches("Back Squat", []int{5, 6}, lipgloss.NewStyle())
	assert.Equal(t, "Back Squat", ansi.Strip(out))
	assert.Contains(t, out, styles.MatchHighlightStyle.Render("S"))
	assert.Contains(t, out, styles.MatchHighlightStyle.Render("q"))
	assert.Contains(t, out, "Back ")
	assert.NotEqual(t, "Back Squat", out)
}

func TestHighlightMatches_NoMatches(t *testing.T) {
	base := lipgloss.NewStyle().Bold(true)
	assert.Equal(t, base.Render("Plank"), styles.HighlightMatches("Plank", nil, base))
}

func TestHighlightMatches_MultiByte(t *testing.T) {
	// Offsets are byte offsets; "ê" takes two bytes
	out := styles.HighlightMatches("Crêpe", []int{0, 4}, lipgloss.NewStyle())
	assert.Equal(t, "Crêpe", ansi.Strip(out))
}
