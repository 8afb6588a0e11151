package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/fittrack/internal/domain"
	"github.com/mmcdole/fittrack/internal/tui/styles"
)

const mealModalWidth = 40

// MealDetailModal is a read-only view of one meal.
// With no meal it renders nothing and consumes no keys.
type MealDetailModal struct {
	visible bool
	meal    *domain.Meal
}

// NewMealDetailModal creates a hidden modal
func NewMealDetailModal() MealDetailModal {
	return MealDetailModal{}
}

// Show opens the modal on meal. A nil meal leaves it closed.
func (m *MealDetailModal) Show(meal *domain.Meal) {
	if meal == nil {
		m.Hide()
		return
	}
	copied := *meal
	m.meal = &copied
	m.visible = true
}

// SetMeal refreshes the shown meal without changing visibility
func (m *MealDetailModal) SetMeal(meal *domain.Meal) {
	if meal == nil {
		m.meal = nil
		return
	}
	copied := *meal
	m.meal = &copied
}

// Hide dismisses the modal
func (m *MealDetailModal) Hide() {
	m.visible = false
	m.meal = nil
}

// IsVisible returns whether the modal is shown
func (m MealDetailModal) IsVisible() bool {
	return m.visible && m.meal != nil
}

// Meal returns the shown meal, or nil
func (m MealDetailModal) Meal() *domain.Meal {
	return m.meal
}

// HandleKeyMsg processes keys while open, returns (cmd, handled)
func (m MealDetailModal) HandleKeyMsg(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !m.IsVisible() {
		return nil, false
	}

	switch {
	case key.Matches(msg, MealDetailKeys.Toggle):
		return dispatchCmd(domain.KindMeal, m.meal.ID, RegionToggle), true
	case key.Matches(msg, MealDetailKeys.Close):
		return requestClose(DialogMealDetail), true
	}
	// Modal swallows everything else
	return nil, true
}

// View renders the meal detail
func (m MealDetailModal) View() string {
	if !m.IsVisible() {
		return ""
	}
	meal := m.meal

	var body []string
	body = append(body, styles.SubtitleStyle.Render(meal.Summary()))
	body = append(body, styles.AccentStyle.Render(meal.Macros()))

	if len(meal.Ingredients) > 0 {
		body = append(body, "", styles.TitleStyle.Render("Ingredients"))
		for _, ing := range meal.Ingredients {
			body = append(body, "  • "+styles.Truncate(ing, mealModalWidth-4))
		}
	}

	if notes := strings.TrimSpace(meal.Notes); notes != "" {
		body = append(body, "", styles.DimStyle.Render(styles.Truncate(notes, mealModalWidth)))
	}

	status := "not eaten yet"
	if meal.Completed {
		status = "eaten"
	}
	body = append(body, "",
		fmt.Sprintf("%s %s", styles.RenderCheckbox(meal.Completed), status),
		"",
		styles.RenderHelp([2]string{"space", "toggle"}, [2]string{"esc", "close"}),
	)

	return renderModal(mealModalWidth, meal.Name, body...)
}
