package tui

import (
	"github.com/mmcdole/fittrack/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// PlanLoadedMsg signals that the day's plan and check-in state are ready
type PlanLoadedMsg struct {
	Plan         *domain.DayPlan
	Latest       *domain.WeightEntry
	NeedsCheckIn bool
}

// PlanUpdatedMsg carries the plan after a toggle or reorder was stored
type PlanUpdatedMsg struct {
	Plan   *domain.DayPlan
	Status string
}

// WeightLoggedMsg signals that a check-in was stored
type WeightLoggedMsg struct {
	Entry domain.WeightEntry
}

// CheckInSkippedMsg signals that today's check-in was dismissed
type CheckInSkippedMsg struct{}

// CheckInReminderMsg re-opens the check-in after the user chose "later"
type CheckInReminderMsg struct {
	Day string
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
