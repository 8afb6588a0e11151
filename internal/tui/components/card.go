package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/fittrack/internal/domain"
	"github.com/mmcdole/fittrack/internal/tui/styles"
)

// Region is an interactive area of a card
type Region int

const (
	RegionNone Region = iota
	RegionToggle
	RegionAction
	RegionBody
)

// EventScope says what a region does with a gesture that lands on it
type EventScope int

const (
	// ScopeNone ignores the gesture
	ScopeNone EventScope = iota
	// ScopeIntercept handles the gesture itself; the card's outer click never sees it
	ScopeIntercept
	// ScopeForward passes the gesture to the card's outer click
	ScopeForward
)

// Scope returns the event scope declared by the region
func (r Region) Scope() EventScope {
	switch r {
	case RegionToggle, RegionAction:
		return ScopeIntercept
	case RegionBody:
		return ScopeForward
	default:
		return ScopeNone
	}
}

// CardEventKind is what a card gesture asks the caller to do
type CardEventKind int

const (
	EventToggle CardEventKind = iota // flip completion
	EventAction                      // auxiliary action
	EventOpen                        // outer click, open detail
)

// CardEventMsg is the single event emitted for one card gesture
type CardEventMsg struct {
	Kind     CardEventKind
	ItemKind domain.ItemKind
	ID       string
}

// Dispatch resolves a gesture on region r into exactly one event.
// Intercepting regions emit their own event; forwarding regions emit the
// outer click. ok is false when the gesture hits nothing.
func Dispatch(kind domain.ItemKind, id string, r Region) (msg CardEventMsg, ok bool) {
	switch r.Scope() {
	case ScopeIntercept:
		if r == RegionAction {
			return CardEventMsg{Kind: EventAction, ItemKind: kind, ID: id}, true
		}
		return CardEventMsg{Kind: EventToggle, ItemKind: kind, ID: id}, true
	case ScopeForward:
		return CardEventMsg{Kind: EventOpen, ItemKind: kind, ID: id}, true
	default:
		return CardEventMsg{}, false
	}
}

// KeyRegion maps a key press onto the card region it stands for
func KeyRegion(msg tea.KeyMsg) Region {
	switch {
	case key.Matches(msg, CardKeys.Toggle):
		return RegionToggle
	case key.Matches(msg, CardKeys.Action):
		return RegionAction
	case key.Matches(msg, CardKeys.Open):
		return RegionBody
	default:
		return RegionNone
	}
}

// Card renders one trackable item and turns gestures into CardEventMsg
type Card interface {
	domain.TrackableItem

	// Kind returns which collection the item belongs to
	Kind() domain.ItemKind

	// FilterValue is the text matched by the list filter
	FilterValue() string

	// Render draws the card; selected highlights the border
	Render(selected bool) string

	// HitTest maps a point relative to the card's top-left corner to a region
	HitTest(x, y int) Region

	// Dispatch returns the command emitting the region's event, or nil
	Dispatch(r Region) tea.Cmd
}

// cardFrame is the shared layout of exercise and meal cards:
//
//	╭──────────────────────────╮
//	│ ☐ Name           [later] │  <- toggle at left, action at right
//	│ detail lines ...         │  <- body
//	╰──────────────────────────╯
type cardFrame struct {
	width  int // outer width including border
	title  string
	done   bool
	action string
	lines  []string

	// Byte offsets of filter matches in title
	matches []int
}

const (
	cardBorder    = 1
	cardPadding   = 1
	cardInset     = cardBorder + cardPadding
	toggleWidth   = 2 // checkbox plus its trailing space
	minCardWidth  = 16
	titleRowIndex = cardBorder
)

func (f cardFrame) contentWidth() int {
	w := f.width
	if w < minCardWidth {
		w = minCardWidth
	}
	return w - 2*cardInset
}

func (f cardFrame) actionLabel() string {
	if f.action == "" {
		return ""
	}
	return "[" + f.action + "]"
}

func (f cardFrame) render(selected bool) string {
	inner := f.contentWidth()

	action := f.actionLabel()
	titleWidth := inner - toggleWidth
	if action != "" {
		titleWidth -= lipgloss.Width(action) + 1
	}

	title := styles.HighlightMatches(f.visibleTitle(titleWidth))

	row := styles.RenderCheckbox(f.done) + " " + title
	if action != "" {
		gap := inner - lipgloss.Width(row) - lipgloss.Width(action)
		if gap < 1 {
			gap = 1
		}
		row += strings.Repeat(" ", gap) + styles.AccentStyle.Render(action)
	}

	rows := []string{row}
	for _, line := range f.lines {
		rows = append(rows, styles.SubtitleStyle.Render(styles.Truncate(line, inner)))
	}

	style := styles.CardStyle
	switch {
	case selected:
		style = styles.CardSelectedStyle
	case f.done:
		style = styles.CardDoneStyle
	}

	return style.Width(inner + 2*cardPadding).Render(strings.Join(rows, "\n"))
}

// visibleTitle truncates the title to width and keeps the matches that
// still fall inside the shown text
func (f cardFrame) visibleTitle(width int) (string, []int, lipgloss.Style) {
	style := styles.TitleStyle
	if f.done {
		style = styles.DimStyle.Strikethrough(true)
	}

	text := styles.Truncate(f.title, width)
	kept := len(text)
	if text != f.title {
		kept = len(strings.TrimSuffix(text, "..."))
	}

	var matches []int
	for _, idx := range f.matches {
		if idx < kept {
			matches = append(matches, idx)
		}
	}
	return text, matches, style
}

func (f cardFrame) height() int {
	return len(f.lines) + 1 + 2*cardBorder
}

func (f cardFrame) hitTest(x, y int) Region {
	outer := f.contentWidth() + 2*cardInset
	if x < 0 || y < 0 || x >= outer || y >= f.height() {
		return RegionNone
	}

	if y == titleRowIndex {
		if x >= cardInset && x < cardInset+toggleWidth {
			return RegionToggle
		}
		if action := f.actionLabel(); action != "" {
			end := cardInset + f.contentWidth()
			if x >= end-lipgloss.Width(action) && x < end {
				return RegionAction
			}
		}
	}
	return RegionBody
}

// dispatchCmd wraps Dispatch in a command
func dispatchCmd(kind domain.ItemKind, id string, r Region) tea.Cmd {
	msg, ok := Dispatch(kind, id, r)
	if !ok {
		return nil
	}
	return func() tea.Msg { return msg }
}
