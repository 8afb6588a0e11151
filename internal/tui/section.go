package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/fittrack/internal/domain"
	"github.com/mmcdole/fittrack/internal/tui/components"
)

// focusArea identifies which section receives keys
type focusArea int

const (
	focusExercises focusArea = iota
	focusMeals
)

// Section is one column of the dashboard: header, card list and pager.
// The pager mirrors the list's page state; the host applies selections.
type Section struct {
	Kind  domain.ItemKind
	Title string
	List  *components.CardList
	Pager components.Pagination

	aggregate domain.CompletionAggregate
}

// NewSection creates an empty section
func NewSection(kind domain.ItemKind, title string, perPage int) *Section {
	return &Section{
		Kind:  kind,
		Title: title,
		List:  components.NewCardList(kind, perPage),
		Pager: components.NewPagination(),
	}
}

// SetPlan hands the section its slice of the plan
func (s *Section) SetPlan(plan *domain.DayPlan) {
	switch s.Kind {
	case domain.KindExercise:
		s.List.SetExercises(plan.Exercises)
		s.aggregate = domain.Aggregate(plan.Exercises)
	case domain.KindMeal:
		s.List.SetMeals(plan.Meals)
		s.aggregate = domain.Aggregate(plan.Meals)
	}
	s.syncPager()
}

// Aggregate returns the section's completion counts
func (s *Section) Aggregate() domain.CompletionAggregate {
	return s.aggregate
}

// GoToPage clamps page into range and moves the list there
func (s *Section) GoToPage(page int) {
	_, total := s.List.PageState()
	page = max(1, min(page, total))
	s.List.SetPage(page)
	s.syncPager()
}

func (s *Section) syncPager() {
	s.Pager.SetState(s.List.PageState())
}

func (s *Section) focus() {
	s.List.Focus()
}

func (s *Section) blur() {
	s.List.Blur()
	s.Pager.Blur()
}

// pagerRow is the row of the pager relative to the section top
func (s *Section) pagerRow() int {
	return SectionListAt + lipgloss.Height(s.List.View()) + 1
}

// View renders the section at width
func (s *Section) View(width int) string {
	header := components.SectionHeader{Title: s.Title, Aggregate: s.aggregate, Width: width - SectionPad}
	return lipgloss.JoinVertical(lipgloss.Left,
		header.View(),
		"",
		s.List.View(),
		"",
		s.Pager.View(),
	)
}
