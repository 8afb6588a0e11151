package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/fittrack/internal/domain"
)

// ExerciseCard renders one exercise. It never mutates the exercise;
// completion changes come back through CardEventMsg.
type ExerciseCard struct {
	domain.Exercise
	Width int

	// ActionLabel names the auxiliary action; empty hides it
	ActionLabel string

	// Matches are filter match offsets into FilterValue
	Matches []int
}

// NewExerciseCard creates a card with the "later" action
func NewExerciseCard(e domain.Exercise, width int) ExerciseCard {
	return ExerciseCard{Exercise: e, Width: width, ActionLabel: "later"}
}

func (c ExerciseCard) Kind() domain.ItemKind { return domain.KindExercise }

func (c ExerciseCard) FilterValue() string {
	return c.Name + " " + c.MuscleGroup
}

func (c ExerciseCard) frame() cardFrame {
	var lines []string
	if s := c.Summary(); s != "" {
		lines = append(lines, s)
	}
	if c.MuscleGroup != "" {
		lines = append(lines, c.MuscleGroup)
	}
	return cardFrame{
		width:  c.Width,
		title:  c.Name,
		done:   c.Completed,
		action:  c.ActionLabel,
		lines:   lines,
		matches: c.Matches,
	}
}

func (c ExerciseCard) Render(selected bool) string {
	return c.frame().render(selected)
}

func (c ExerciseCard) HitTest(x, y int) Region {
	return c.frame().hitTest(x, y)
}

func (c ExerciseCard) Dispatch(r Region) tea.Cmd {
	if r == RegionAction && c.ActionLabel == "" {
		return nil
	}
	return dispatchCmd(domain.KindExercise, c.ID, r)
}
