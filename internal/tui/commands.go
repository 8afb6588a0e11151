package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/fittrack/internal/domain"
	"github.com/mmcdole/fittrack/internal/service"
)

// Command factories for async operations

const storeTimeout = 5 * time.Second

// LoadPlanCmd loads (or seeds) the plan for day
func LoadPlanCmd(svc *service.TrackerService, day string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		plan, err := svc.Plan(ctx, day)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading plan"}
		}
		latest, _ := svc.LatestWeight(day)
		return PlanLoadedMsg{
			Plan:         plan,
			Latest:       latest,
			NeedsCheckIn: svc.NeedsCheckIn(day),
		}
	}
}

// ToggleItemCmd flips one item's completion
func ToggleItemCmd(svc *service.TrackerService, day string, kind domain.ItemKind, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		plan, err := svc.ToggleItem(ctx, day, kind, id)
		if err != nil {
			return ErrMsg{Err: err, Context: "updating " + kind.String()}
		}
		return PlanUpdatedMsg{Plan: plan}
	}
}

// DeferExerciseCmd moves an exercise to the end of the workout
func DeferExerciseCmd(svc *service.TrackerService, day, id, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		plan, err := svc.DeferExercise(ctx, day, id)
		if err != nil {
			return ErrMsg{Err: err, Context: "moving exercise"}
		}
		return PlanUpdatedMsg{Plan: plan, Status: fmt.Sprintf("Moved %s to the end", name)}
	}
}

// LogWeightCmd stores a submitted check-in
func LogWeightCmd(svc *service.TrackerService, day string, value float64, unit domain.WeightUnit) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		entry, err := svc.LogWeight(ctx, day, value, unit)
		if err != nil {
			return ErrMsg{Err: err, Context: "logging weight"}
		}
		return WeightLoggedMsg{Entry: *entry}
	}
}

// SkipCheckInCmd dismisses today's check-in
func SkipCheckInCmd(svc *service.TrackerService, day string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		if err := svc.SkipCheckIn(ctx, day); err != nil {
			return ErrMsg{Err: err, Context: "skipping check-in"}
		}
		return CheckInSkippedMsg{}
	}
}

// CheckInReminderCmd asks for the check-in again after delay
func CheckInReminderCmd(day string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return CheckInReminderMsg{Day: day}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
