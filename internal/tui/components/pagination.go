package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/fittrack/internal/tui/styles"
)

// MaxPageControls is how many leading page numbers are shown individually
const MaxPageControls = 5

// ControlKind identifies one element of the page control row
type ControlKind int

const (
	ControlPrev ControlKind = iota
	ControlPage
	ControlEllipsis
	ControlNext
)

// PageControl is one rendered element of the pagination row
type PageControl struct {
	Kind     ControlKind
	Page     int // set for ControlPage
	Active   bool
	Disabled bool
}

// Selectable reports whether the control can be focused and activated
func (c PageControl) Selectable() bool {
	return c.Kind != ControlEllipsis && !c.Disabled
}

// PageSelectedMsg is emitted when a page control is activated.
// Page is not clamped; the receiver owns boundary checks.
type PageSelectedMsg struct {
	Page int
}

// PageControls lays out the control row for (current, total).
// Pages 1..min(total, 5) are listed; when total > 5 an ellipsis and the
// last page follow. Prev is disabled iff current <= 1 and next iff
// current >= total. Inputs are not validated.
func PageControls(current, total int) []PageControl {
	controls := []PageControl{{Kind: ControlPrev, Disabled: current <= 1}}

	shown := total
	if shown > MaxPageControls {
		shown = MaxPageControls
	}
	for p := 1; p <= shown; p++ {
		controls = append(controls, PageControl{Kind: ControlPage, Page: p, Active: p == current})
	}
	if total > MaxPageControls {
		controls = append(controls,
			PageControl{Kind: ControlEllipsis},
			PageControl{Kind: ControlPage, Page: total, Active: total == current},
		)
	}

	return append(controls, PageControl{Kind: ControlNext, Disabled: current >= total})
}

// Pagination renders page controls and emits PageSelectedMsg.
// Current and Total are owned by the caller and set before each render.
type Pagination struct {
	Current int
	Total   int

	focused bool
	focus   int // index into Controls()
}

// NewPagination returns a pagination on page 1 of 5
func NewPagination() Pagination {
	return Pagination{Current: 1, Total: 5}
}

// SetState updates the page state from the caller
func (p *Pagination) SetState(current, total int) {
	p.Current = current
	p.Total = total
	p.clampFocus()
}

// Controls returns the current control row
func (p Pagination) Controls() []PageControl {
	return PageControls(p.Current, p.Total)
}

// Select emits a selection of page. No clamping.
func (p Pagination) Select(page int) tea.Cmd {
	return func() tea.Msg {
		return PageSelectedMsg{Page: page}
	}
}

// Focus gives the control row keyboard focus, starting on the active page
func (p *Pagination) Focus() {
	p.focused = true
	p.focus = -1
	for i, c := range p.Controls() {
		if c.Active {
			p.focus = i
			break
		}
	}
	p.clampFocus()
}

// Blur removes keyboard focus
func (p *Pagination) Blur() {
	p.focused = false
}

// Focused reports whether the control row has keyboard focus
func (p Pagination) Focused() bool {
	return p.focused
}

// FocusedControl returns the control under the keyboard cursor
func (p Pagination) FocusedControl() (PageControl, bool) {
	controls := p.Controls()
	if !p.focused || p.focus < 0 || p.focus >= len(controls) {
		return PageControl{}, false
	}
	return controls[p.focus], true
}

// clampFocus moves focus onto the nearest selectable control
func (p *Pagination) clampFocus() {
	controls := p.Controls()
	if p.focus >= 0 && p.focus < len(controls) && controls[p.focus].Selectable() {
		return
	}
	for i, c := range controls {
		if c.Selectable() {
			p.focus = i
			return
		}
	}
	p.focus = -1
}

func (p *Pagination) moveFocus(delta int) {
	controls := p.Controls()
	for i := p.focus + delta; i >= 0 && i < len(controls); i += delta {
		if controls[i].Selectable() {
			p.focus = i
			return
		}
	}
}

// Activate emits the selection for control c, or nil when c is inert
func (p Pagination) Activate(c PageControl) tea.Cmd {
	if !c.Selectable() {
		return nil
	}
	switch c.Kind {
	case ControlPrev:
		return p.Select(p.Current - 1)
	case ControlNext:
		return p.Select(p.Current + 1)
	default:
		return p.Select(c.Page)
	}
}

// Update handles focus movement and activation while focused
func (p Pagination) Update(msg tea.Msg) (Pagination, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, PaginationKeys.Left):
		p.moveFocus(-1)
	case key.Matches(keyMsg, PaginationKeys.Right):
		p.moveFocus(1)
	case key.Matches(keyMsg, PaginationKeys.Activate):
		if c, ok := p.FocusedControl(); ok {
			return p, p.Activate(c)
		}
	}
	return p, nil
}

// ControlAt returns the control rendered at column x of View()
func (p Pagination) ControlAt(x int) (PageControl, bool) {
	pos := 0
	for i, c := range p.Controls() {
		w := lipgloss.Width(p.renderControl(i, c))
		if x >= pos && x < pos+w {
			return c, true
		}
		pos += w + 1
	}
	return PageControl{}, false
}

func controlLabel(c PageControl) string {
	switch c.Kind {
	case ControlPrev:
		return "‹ Prev"
	case ControlNext:
		return "Next ›"
	case ControlEllipsis:
		return "…"
	default:
		return strconv.Itoa(c.Page)
	}
}

func (p Pagination) renderControl(i int, c PageControl) string {
	label := " " + controlLabel(c) + " "
	style := styles.SubtitleStyle

	switch {
	case c.Kind == ControlEllipsis:
		style = styles.DimStyle
	case c.Disabled:
		style = lipgloss.NewStyle().Foreground(styles.SlateLight)
	case p.focused && i == p.focus:
		style = lipgloss.NewStyle().Foreground(styles.SlateDark).Background(styles.White).Bold(true)
	case c.Active:
		style = lipgloss.NewStyle().Foreground(styles.White).Background(styles.Orange).Bold(true)
	}
	return style.Render(label)
}

// View renders the control row on one line
func (p Pagination) View() string {
	controls := p.Controls()
	parts := make([]string, len(controls))
	for i, c := range controls {
		parts[i] = p.renderControl(i, c)
	}
	return strings.Join(parts, " ")
}
