package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mmcdole/fittrack/internal/domain"
)

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=service_test

type trackerStore interface {
	GetPlan(day string) (*domain.DayPlan, bool)
	SavePlan(plan *domain.DayPlan) error
	AddWeight(entry domain.WeightEntry) error
	LatestWeight(day string) (*domain.WeightEntry, bool)
	ListWeights(limit int) ([]domain.WeightEntry, error)
	GetCheckInStatus(day string) domain.CheckInStatus
	SetCheckInStatus(day string, status domain.CheckInStatus) error
}

// TrackerService applies completion toggles and weight check-ins to the
// stored day plans. It is the only writer of plan state.
type TrackerService struct {
	store    trackerStore
	template domain.DayPlan
	logger   *slog.Logger

	// Overridable for tests
	Now   func() time.Time
	NewID func() string
}

// NewTrackerService creates a new tracker service.
// template seeds any day that has no stored plan yet.
func NewTrackerService(store trackerStore, template domain.DayPlan, logger *slog.Logger) *TrackerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrackerService{
		store:    store,
		template: template.Clone(),
		logger:   logger,
		Now:      time.Now,
		NewID:    uuid.NewString,
	}
}

// Today returns the plan key for the current day
func (s *TrackerService) Today() string {
	return domain.DayKey(s.Now())
}

// Plan returns the stored plan for day, seeding it from the template
// the first time the day is requested.
func (s *TrackerService) Plan(ctx context.Context, day string) (*domain.DayPlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if plan, ok := s.store.GetPlan(day); ok {
		return plan, nil
	}

	plan := s.template.Clone()
	plan.Day = day
	for i := range plan.Exercises {
		plan.Exercises[i].Completed = false
	}
	for i := range plan.Meals {
		plan.Meals[i].Completed = false
	}

	if err := s.store.SavePlan(&plan); err != nil {
		return nil, fmt.Errorf("failed to seed plan for %s: %w", day, err)
	}

	s.logger.Info("seeded day plan", "day", day,
		"exercises", len(plan.Exercises), "meals", len(plan.Meals))
	return &plan, nil
}

// ToggleItem flips the completion flag of one exercise or meal and returns
// the updated plan. Identity and order of the collection are unchanged.
func (s *TrackerService) ToggleItem(ctx context.Context, day string, kind domain.ItemKind, id string) (*domain.DayPlan, error) {
	plan, err := s.Plan(ctx, day)
	if err != nil {
		return nil, err
	}

	var completed bool
	switch kind {
	case domain.KindExercise:
		e := plan.FindExercise(id)
		if e == nil {
			return nil, fmt.Errorf("exercise %q: %w", id, domain.ErrItemNotFound)
		}
		e.Completed = !e.Completed
		completed = e.Completed
	case domain.KindMeal:
		m := plan.FindMeal(id)
		if m == nil {
			return nil, fmt.Errorf("meal %q: %w", id, domain.ErrItemNotFound)
		}
		m.Completed = !m.Completed
		completed = m.Completed
	default:
		return nil, fmt.Errorf("kind %d: %w", kind, domain.ErrItemNotFound)
	}

	if err := s.store.SavePlan(plan); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	s.logger.Debug("toggled item", "day", day, "kind", kind.String(), "id", id, "completed", completed)
	return plan, nil
}

// DeferExercise moves an exercise to the end of the day's list so it is
// done later. Completion is untouched.
func (s *TrackerService) DeferExercise(ctx context.Context, day, id string) (*domain.DayPlan, error) {
	plan, err := s.Plan(ctx, day)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range plan.Exercises {
		if plan.Exercises[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("exercise %q: %w", id, domain.ErrItemNotFound)
	}
	if idx == len(plan.Exercises)-1 {
		return plan, nil
	}

	e := plan.Exercises[idx]
	plan.Exercises = append(plan.Exercises[:idx], plan.Exercises[idx+1:]...)
	plan.Exercises = append(plan.Exercises, e)

	if err := s.store.SavePlan(plan); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	s.logger.Debug("deferred exercise", "day", day, "id", id)
	return plan, nil
}

// SetPlan replaces the stored plan for its day
func (s *TrackerService) SetPlan(ctx context.Context, plan *domain.DayPlan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.SavePlan(plan)
}

// Progress returns the per-collection and overall aggregates for day
func (s *TrackerService) Progress(ctx context.Context, day string) (exercises, meals, overall domain.CompletionAggregate, err error) {
	plan, err := s.Plan(ctx, day)
	if err != nil {
		return exercises, meals, overall, err
	}
	exercises, meals, overall = domain.PlanProgress(*plan)
	return exercises, meals, overall, nil
}

// LogWeight records a check-in and marks the day's prompt as answered
func (s *TrackerService) LogWeight(ctx context.Context, day string, value float64, unit domain.WeightUnit) (*domain.WeightEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !domain.ValidWeight(value) {
		return nil, fmt.Errorf("weight %g: %w", value, domain.ErrInvalidWeight)
	}
	if !unit.Valid() {
		return nil, fmt.Errorf("unit %q: %w", unit, domain.ErrInvalidUnit)
	}

	entry := domain.WeightEntry{
		ID:        s.NewID(),
		Day:       day,
		Value:     value,
		Unit:      unit,
		CreatedAt: s.Now(),
	}
	if err := s.store.AddWeight(entry); err != nil {
		return nil, fmt.Errorf("failed to store weight: %w", err)
	}
	if err := s.store.SetCheckInStatus(day, domain.CheckInLogged); err != nil {
		return nil, fmt.Errorf("failed to update check-in: %w", err)
	}

	s.logger.Info("logged weight", "day", day, "value", value, "unit", string(unit))
	return &entry, nil
}

// LogWeightText parses raw input with the same rule as the check-in dialog
func (s *TrackerService) LogWeightText(ctx context.Context, day, text string, unit domain.WeightUnit) (*domain.WeightEntry, error) {
	value, ok := domain.ParseWeight(text)
	if !ok {
		return nil, fmt.Errorf("weight %q: %w", text, domain.ErrInvalidWeight)
	}
	return s.LogWeight(ctx, day, value, unit)
}

// SkipCheckIn dismisses the day's check-in prompt without a value
func (s *TrackerService) SkipCheckIn(ctx context.Context, day string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.store.SetCheckInStatus(day, domain.CheckInSkipped); err != nil {
		return fmt.Errorf("failed to skip check-in: %w", err)
	}
	s.logger.Info("skipped check-in", "day", day)
	return nil
}

// NeedsCheckIn reports whether the prompt should still be shown for day
func (s *TrackerService) NeedsCheckIn(day string) bool {
	return s.store.GetCheckInStatus(day) == domain.CheckInPending
}

// LatestWeight returns the most recent entry logged on day
func (s *TrackerService) LatestWeight(day string) (*domain.WeightEntry, bool) {
	return s.store.LatestWeight(day)
}

// WeightHistory returns up to limit entries, newest first
func (s *TrackerService) WeightHistory(ctx context.Context, limit int) ([]domain.WeightEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListWeights(limit)
}
