package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/fittrack/internal/domain"
)

// MealCard renders one meal. Clicking the body opens the meal detail.
type MealCard struct {
	domain.Meal
	Width int

	// Matches are filter match offsets into FilterValue
	Matches []int
}

// NewMealCard creates a meal card
func NewMealCard(m domain.Meal, width int) MealCard {
	return MealCard{Meal: m, Width: width}
}

func (c MealCard) Kind() domain.ItemKind { return domain.KindMeal }

func (c MealCard) FilterValue() string {
	return c.Name + " " + string(c.Slot)
}

func (c MealCard) frame() cardFrame {
	lines := []string{c.Summary()}
	if n := len(c.Ingredients); n > 0 {
		lines = append(lines, fmt.Sprintf("%d ingredients", n))
	}
	return cardFrame{
		width: c.Width,
		title: c.Name,
		done:    c.Completed,
		lines:   lines,
		matches: c.Matches,
	}
}

func (c MealCard) Render(selected bool) string {
	return c.frame().render(selected)
}

func (c MealCard) HitTest(x, y int) Region {
	return c.frame().hitTest(x, y)
}

func (c MealCard) Dispatch(r Region) tea.Cmd {
	// Meal cards have no auxiliary action
	if r == RegionAction {
		return nil
	}
	return dispatchCmd(domain.KindMeal, c.ID, r)
}
