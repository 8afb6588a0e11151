package components_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/fittrack/internal/tui/components"
)

func pages(controls []components.PageControl) []int {
	var out []int
	for _, c := range controls {
		if c.Kind == components.ControlPage {
			out = append(out, c.Page)
		}
	}
	return out
}

func countKind(controls []components.PageControl, kind components.ControlKind) int {
	n := 0
	for _, c := range controls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPageControls_FivePages(t *testing.T) {
	controls := components.PageControls(1, 5)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, pages(controls))
	assert.Zero(t, countKind(controls, components.ControlEllipsis))
	assert.Equal(t, components.ControlPrev, controls[0].Kind)
	assert.Equal(t, components.ControlNext, controls[len(controls)-1].Kind)
	assert.Equal(t, 5, controls[len(controls)-2].Page)
}

func TestPageControls_TwelvePages(t *testing.T) {
	controls := components.PageControls(1, 12)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 12}, pages(controls))
	require.Equal(t, 1, countKind(controls, components.ControlEllipsis))

	// Ellipsis sits between page 5 and page 12
	assert.Equal(t, components.ControlEllipsis, controls[6].Kind)
	assert.Equal(t, 12, controls[7].Page)

	assert.True(t, controls[0].Disabled, "prev")
	assert.False(t, controls[len(controls)-1].Disabled, "next")
}

func TestPageControls_Boundaries(t *testing.T) {
	tests := []struct {
		name         string
		current      int
		total        int
		prevDisabled bool
		nextDisabled bool
	}{
		{"first page", 1, 5, true, false},
		{"middle page", 3, 5, false, false},
		{"last page", 5, 5, false, true},
		{"last of many", 12, 12, false, true},
		{"single page", 1, 1, true, true},
		{"below range", 0, 5, true, false},
		{"above range", 9, 5, false, true},
		{"zero total", 1, 0, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controls := components.PageControls(tt.current, tt.total)
			assert.Equal(t, tt.prevDisabled, controls[0].Disabled)
			assert.Equal(t, tt.nextDisabled, controls[len(controls)-1].Disabled)
		})
	}
}

func TestPageControls_NegativeTotal(t *testing.T) {
	controls := components.PageControls(1, -3)
	assert.Empty(t, pages(controls))
	assert.Len(t, controls, 2)
}

func TestPageControls_ActivePage(t *testing.T) {
	for _, c := range components.PageControls(3, 12) {
		assert.Equal(t, c.Kind == components.ControlPage && c.Page == 3, c.Active)
	}

	// The last page is flagged active even past the first five
	controls := components.PageControls(12, 12)
	assert.True(t, controls[7].Active)
}

func TestPagination_Defaults(t *testing.T) {
	p := components.NewPagination()
	assert.Equal(t, 1, p.Current)
	assert.Equal(t, 5, p.Total)
}

func TestPagination_SelectIsUnconditional(t *testing.T) {
	p := components.NewPagination()

	for _, page := range []int{1, 5, 99, 0, -2} {
		msg := p.Select(page)()
		assert.Equal(t, components.PageSelectedMsg{Page: page}, msg)
	}
}

func TestPagination_KeyboardFocus(t *testing.T) {
	p := components.NewPagination()
	p.SetState(1, 12)
	p.Focus()

	c, ok := p.FocusedControl()
	require.True(t, ok)
	assert.Equal(t, 1, c.Page, "focus starts on the active page")

	// Prev is disabled, so moving left stays on page 1
	p, _ = p.Update(runes("h"))
	c, _ = p.FocusedControl()
	assert.Equal(t, 1, c.Page)

	p, _ = p.Update(runes("l"))
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, components.PageSelectedMsg{Page: 2}, cmd())

	// Walk past the ellipsis to the last page, then to next
	for i := 0; i < 4; i++ {
		p, _ = p.Update(runes("l"))
	}
	c, _ = p.FocusedControl()
	assert.Equal(t, 12, c.Page)

	p, _ = p.Update(runes("l"))
	c, _ = p.FocusedControl()
	assert.Equal(t, components.ControlNext, c.Kind)

	_, cmd = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, components.PageSelectedMsg{Page: 2}, cmd(), "next selects current+1")
}

func TestPagination_IgnoresKeysWhenBlurred(t *testing.T) {
	p := components.NewPagination()
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestPagination_ActivateDisabled(t *testing.T) {
	p := components.NewPagination()
	controls := p.Controls()

	assert.Nil(t, p.Activate(controls[0]), "prev on page 1")
	assert.NotNil(t, p.Activate(controls[len(controls)-1]))
}

func TestPagination_ControlAt(t *testing.T) {
	p := components.NewPagination()

	c, ok := p.ControlAt(0)
	require.True(t, ok)
	assert.Equal(t, components.ControlPrev, c.Kind)

	// " ‹ Prev " is 8 wide, then a space, then " 1 "
	c, ok = p.ControlAt(10)
	require.True(t, ok)
	assert.Equal(t, 1, c.Page)

	_, ok = p.ControlAt(500)
	assert.False(t, ok)
}

func TestPagination_View(t *testing.T) {
	p := components.NewPagination()
	p.SetState(1, 12)

	view := p.View()
	assert.Contains(t, view, "Prev")
	assert.Contains(t, view, "…")
	assert.Contains(t, view, " 12 ")
	assert.NotContains(t, view, " 6 ")

	// Controls are joined by single spaces, matching ControlAt's layout
	width := lipgloss.Width(view)
	c, ok := p.ControlAt(width - 1)
	require.True(t, ok)
	assert.Equal(t, components.ControlNext, c.Kind)
	_, ok = p.ControlAt(width)
	assert.False(t, ok)
}
