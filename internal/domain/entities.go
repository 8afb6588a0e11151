package domain

import (
	"fmt"
	"time"
)

// MealSlot identifies when in the day a meal is eaten
type MealSlot string

const (
	MealSlotBreakfast MealSlot = "breakfast"
	MealSlotLunch     MealSlot = "lunch"
	MealSlotDinner    MealSlot = "dinner"
	MealSlotSnack     MealSlot = "snack"
)

// Label returns the display name for the slot
func (s MealSlot) Label() string {
	switch s {
	case MealSlotBreakfast:
		return "Breakfast"
	case MealSlotLunch:
		return "Lunch"
	case MealSlotDinner:
		return "Dinner"
	case MealSlotSnack:
		return "Snack"
	default:
		return "Meal"
	}
}

// Exercise is a single planned exercise for the day
type Exercise struct {
	ID          string        `json:"id" mapstructure:"id"`
	Name        string        `json:"name" mapstructure:"name"`
	MuscleGroup string        `json:"muscleGroup" mapstructure:"muscle_group"`
	Sets        int           `json:"sets" mapstructure:"sets"`
	Reps        int           `json:"reps" mapstructure:"reps"`
	WeightKg    float64       `json:"weightKg" mapstructure:"weight_kg"`
	Duration    time.Duration `json:"duration" mapstructure:"duration"`
	Notes       string        `json:"notes" mapstructure:"notes"`
	Completed   bool          `json:"completed" mapstructure:"completed"`
}

func (e Exercise) ItemID() string    { return e.ID }
func (e Exercise) ItemName() string  { return e.Name }
func (e Exercise) IsCompleted() bool { return e.Completed }

// Summary returns the quantitative descriptor line, e.g. "4 × 8 · 60 kg"
func (e Exercise) Summary() string {
	var s string
	switch {
	case e.Sets > 0 && e.Reps > 0:
		s = fmt.Sprintf("%d × %d", e.Sets, e.Reps)
	case e.Duration > 0:
		s = formatDuration(e.Duration)
	}
	if e.WeightKg > 0 {
		if s != "" {
			s += " · "
		}
		s += fmt.Sprintf("%g kg", e.WeightKg)
	}
	return s
}

// Meal is a single planned meal for the day.
// Nutrition values are supplied by the caller; nothing here sums them.
type Meal struct {
	ID          string   `json:"id" mapstructure:"id"`
	Name        string   `json:"name" mapstructure:"name"`
	Slot        MealSlot `json:"slot" mapstructure:"slot"`
	Time        string   `json:"time" mapstructure:"time"` // "07:30"
	Calories    int      `json:"calories" mapstructure:"calories"`
	ProteinG    float64  `json:"proteinG" mapstructure:"protein_g"`
	CarbsG      float64  `json:"carbsG" mapstructure:"carbs_g"`
	FatG        float64  `json:"fatG" mapstructure:"fat_g"`
	Ingredients []string `json:"ingredients" mapstructure:"ingredients"`
	Notes       string   `json:"notes" mapstructure:"notes"`
	Completed   bool     `json:"completed" mapstructure:"completed"`
}

func (m Meal) ItemID() string    { return m.ID }
func (m Meal) ItemName() string  { return m.Name }
func (m Meal) IsCompleted() bool { return m.Completed }

// Summary returns the quantitative descriptor line, e.g. "Lunch · 12:30 · 640 kcal"
func (m Meal) Summary() string {
	s := m.Slot.Label()
	if m.Time != "" {
		s += " · " + m.Time
	}
	if m.Calories > 0 {
		s += fmt.Sprintf(" · %d kcal", m.Calories)
	}
	return s
}

// Macros returns the macro line, e.g. "P 42g · C 60g · F 18g"
func (m Meal) Macros() string {
	return fmt.Sprintf("P %gg · C %gg · F %gg", m.ProteinG, m.CarbsG, m.FatG)
}

// DayPlan is the caller-owned collection of trackable items for one day
type DayPlan struct {
	Day       string     `json:"day"` // YYYY-MM-DD
	Exercises []Exercise `json:"exercises"`
	Meals     []Meal     `json:"meals"`
}

// Clone returns a deep copy so callers can hand the plan to renderers safely
func (p DayPlan) Clone() DayPlan {
	out := DayPlan{Day: p.Day}
	out.Exercises = append([]Exercise(nil), p.Exercises...)
	out.Meals = make([]Meal, len(p.Meals))
	for i, m := range p.Meals {
		m.Ingredients = append([]string(nil), m.Ingredients...)
		out.Meals[i] = m
	}
	return out
}

// FindMeal returns the meal with the given ID, or nil
func (p *DayPlan) FindMeal(id string) *Meal {
	for i := range p.Meals {
		if p.Meals[i].ID == id {
			return &p.Meals[i]
		}
	}
	return nil
}

// FindExercise returns the exercise with the given ID, or nil
func (p *DayPlan) FindExercise(id string) *Exercise {
	for i := range p.Exercises {
		if p.Exercises[i].ID == id {
			return &p.Exercises[i]
		}
	}
	return nil
}

// DayKey formats t as the plan key for its local day
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	mins := int(d.Minutes()) % 60
	secs := int(d.Seconds()) % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, mins)
	case secs > 0 && mins == 0:
		return fmt.Sprintf("%ds", secs)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
