package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/fittrack/internal/domain"
	"github.com/mmcdole/fittrack/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// cardSource implements sahilm/fuzzy.Source over the cards' filter values.
// Matching folds case, so match offsets index FilterValue directly.
type cardSource []Card

func (s cardSource) String(i int) string { return s[i].FilterValue() }
func (s cardSource) Len() int            { return len(s) }

// CardList shows one collection of cards a page at a time, with a cursor
// and an optional fuzzy filter. It owns no completion state: cards are
// rebuilt from the caller's plan on every SetExercises/SetMeals.
type CardList struct {
	kind      domain.ItemKind
	cards     []Card
	cursor    int // index into the visible (filtered) cards
	width     int
	focused   bool
	paginator paginator.Model

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filteredIdx  []int   // indices into cards; nil = unfiltered
	matchedIdx   [][]int // match offsets per filtered card
}

// NewCardList creates an empty list paging perPage cards at a time
func NewCardList(kind domain.ItemKind, perPage int) *CardList {
	if perPage < 1 {
		perPage = 1
	}

	p := paginator.New()
	p.PerPage = perPage

	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.AccentStyle

	return &CardList{
		kind:        kind,
		width:       44,
		paginator:   p,
		filterInput: ti,
	}
}

// Kind returns which collection the list shows
func (l *CardList) Kind() domain.ItemKind { return l.kind }

// SetWidth sets the card width
func (l *CardList) SetWidth(w int) {
	l.width = w
	for i, c := range l.cards {
		l.cards[i] = withWidth(c, w)
	}
}

func withMatches(c Card, matches []int) Card {
	switch v := c.(type) {
	case ExerciseCard:
		v.Matches = matches
		return v
	case MealCard:
		v.Matches = matches
		return v
	default:
		return c
	}
}

func withWidth(c Card, w int) Card {
	switch v := c.(type) {
	case ExerciseCard:
		v.Width = w
		return v
	case MealCard:
		v.Width = w
		return v
	default:
		return c
	}
}

// SetExercises rebuilds the cards from exercises
func (l *CardList) SetExercises(items []domain.Exercise) {
	cards := make([]Card, len(items))
	for i, e := range items {
		cards[i] = NewExerciseCard(e, l.width)
	}
	l.setCards(cards)
}

// SetMeals rebuilds the cards from meals
func (l *CardList) SetMeals(items []domain.Meal) {
	cards := make([]Card, len(items))
	for i, m := range items {
		cards[i] = NewMealCard(m, l.width)
	}
	l.setCards(cards)
}

// setCards replaces the cards and keeps the cursor on the same item ID
func (l *CardList) setCards(cards []Card) {
	selectedID := ""
	if c, ok := l.Selected(); ok {
		selectedID = c.ItemID()
	}

	l.cards = cards
	if l.filterActive {
		l.applyFilter()
	}

	l.cursor = 0
	for i := 0; i < l.Count(); i++ {
		if l.cardAt(i).ItemID() == selectedID {
			l.cursor = i
			break
		}
	}
	l.syncPage()
}

// Count returns the number of visible (filtered) cards
func (l *CardList) Count() int {
	if l.filteredIdx != nil {
		return len(l.filteredIdx)
	}
	return len(l.cards)
}

func (l *CardList) cardAt(i int) Card {
	if l.filteredIdx != nil {
		return withMatches(l.cards[l.filteredIdx[i]], l.matchedIdx[i])
	}
	return l.cards[i]
}

// Selected returns the card under the cursor
func (l *CardList) Selected() (Card, bool) {
	if l.cursor < 0 || l.cursor >= l.Count() {
		return nil, false
	}
	return l.cardAt(l.cursor), true
}

// Cursor returns the cursor index among visible cards
func (l *CardList) Cursor() int { return l.cursor }

// Focus marks the list as receiving keys
func (l *CardList) Focus() { l.focused = true }

// Blur stops the list receiving keys
func (l *CardList) Blur() { l.focused = false }

// IsFocused reports whether the list receives keys
func (l *CardList) IsFocused() bool { return l.focused }

// PageState returns the 1-indexed current page and the page count
func (l *CardList) PageState() (current, total int) {
	return l.paginator.Page + 1, l.paginator.TotalPages
}

// SetPage moves to a 1-indexed page and puts the cursor on its first card.
// Out-of-range pages are pulled back into range.
func (l *CardList) SetPage(page int) {
	_, total := l.PageState()
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	l.paginator.Page = page - 1
	l.cursor = l.paginator.Page * l.paginator.PerPage
	if l.cursor >= l.Count() {
		l.cursor = l.Count() - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// syncPage recomputes the page count and shows the cursor's page
func (l *CardList) syncPage() {
	if l.Count() == 0 {
		l.paginator.TotalPages = 1
		l.paginator.Page = 0
		return
	}
	l.paginator.SetTotalPages(l.Count())
	l.paginator.Page = l.cursor / l.paginator.PerPage
}

// IsFiltering returns true if filter mode is active
func (l *CardList) IsFiltering() bool { return l.filterActive }

// IsFilterTyping returns true if filter is active AND input is focused
func (l *CardList) IsFilterTyping() bool {
	return l.filterActive && l.filterInput.Focused()
}

// StartFilter activates the filter input
func (l *CardList) StartFilter() tea.Cmd {
	l.filterActive = true
	return l.filterInput.Focus()
}

// ClearFilter deactivates the filter and shows all cards
func (l *CardList) ClearFilter() {
	l.filterActive = false
	l.filteredIdx = nil
	l.matchedIdx = nil
	l.filterInput.SetValue("")
	l.filterInput.Blur()
	l.cursor = 0
	l.syncPage()
}

// FilterQuery returns the current filter text
func (l *CardList) FilterQuery() string { return l.filterInput.Value() }

func (l *CardList) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(l.filterInput.Value()))
	if query == "" {
		l.filteredIdx = nil
		l.matchedIdx = nil
		return
	}

	matches := fuzzy.FindFrom(query, cardSource(l.cards))
	l.filteredIdx = make([]int, len(matches))
	l.matchedIdx = make([][]int, len(matches))
	for i, match := range matches {
		l.filteredIdx[i] = match.Index
		l.matchedIdx[i] = match.MatchedIndexes
	}
}

// Update handles list navigation, filtering and card gestures.
// Card gestures come back as CardEventMsg commands.
func (l *CardList) Update(msg tea.Msg) tea.Cmd {
	if !l.focused {
		return nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)

	// Filter typing mode owns every key
	if l.IsFilterTyping() {
		if isKey {
			switch {
			case key.Matches(keyMsg, CardListKeys.Escape):
				l.ClearFilter()
				return nil
			case key.Matches(keyMsg, CardListKeys.Accept):
				// Accept filter, blur input to allow navigation
				l.filterInput.Blur()
				if l.filterInput.Value() == "" {
					l.ClearFilter()
				}
				return nil
			case keyMsg.Type == tea.KeyBackspace && l.filterInput.Value() == "":
				l.ClearFilter()
				return nil
			}
		}

		var cmd tea.Cmd
		l.filterInput, cmd = l.filterInput.Update(msg)
		if isKey {
			l.applyFilter()
			l.cursor = 0
			l.syncPage()
		}
		return cmd
	}

	if !isKey {
		return nil
	}

	switch {
	case l.filterActive && key.Matches(keyMsg, CardListKeys.Escape):
		l.ClearFilter()
		return nil
	case key.Matches(keyMsg, CardListKeys.Filter):
		return l.StartFilter()
	}

	count := l.Count()
	if count == 0 {
		return nil
	}

	switch {
	case key.Matches(keyMsg, CardListKeys.Down):
		if l.cursor < count-1 {
			l.cursor++
		}
	case key.Matches(keyMsg, CardListKeys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
	case key.Matches(keyMsg, CardListKeys.Home):
		l.cursor = 0
	case key.Matches(keyMsg, CardListKeys.End):
		l.cursor = count - 1
	default:
		if r := KeyRegion(keyMsg); r != RegionNone {
			if c, ok := l.Selected(); ok {
				return c.Dispatch(r)
			}
		}
		return nil
	}

	l.syncPage()
	return nil
}

// filterLines is how many rows the filter bar takes when shown
func (l *CardList) filterLines() int {
	if l.filterActive {
		return 1
	}
	return 0
}

// HandleClick hit-tests a left click at (x, y) relative to the list's
// top-left corner. The clicked card becomes selected and its region
// emits one CardEventMsg.
func (l *CardList) HandleClick(x, y int) tea.Cmd {
	y -= l.filterLines()
	if y < 0 {
		return nil
	}

	start, end := l.paginator.GetSliceBounds(l.Count())
	top := 0
	for i := start; i < end; i++ {
		c := l.cardAt(i)
		h := lipgloss.Height(c.Render(false))
		if y < top+h {
			l.cursor = i
			return c.Dispatch(c.HitTest(x, y-top))
		}
		top += h
	}
	return nil
}

// View renders the filter bar and the current page of cards
func (l *CardList) View() string {
	var rows []string
	if l.filterActive {
		rows = append(rows, l.filterInput.View())
	}

	if l.Count() == 0 {
		empty := "Nothing planned"
		if l.filterActive {
			empty = fmt.Sprintf("No matches for %q", l.filterInput.Value())
		}
		rows = append(rows, styles.DimStyle.Render(empty))
		return strings.Join(rows, "\n")
	}

	start, end := l.paginator.GetSliceBounds(l.Count())
	for i := start; i < end; i++ {
		rows = append(rows, l.cardAt(i).Render(l.focused && i == l.cursor))
	}
	return strings.Join(rows, "\n")
}
