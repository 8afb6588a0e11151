package domain

// Store handles local persistence (BoltDB + memory).
// Only the host application talks to it; components never do.
type Store interface {
	// === Plans ===
	GetPlan(day string) (*DayPlan, bool)
	SavePlan(plan *DayPlan) error

	// === Weights ===
	AddWeight(entry WeightEntry) error
	LatestWeight(day string) (*WeightEntry, bool)
	ListWeights(limit int) ([]WeightEntry, error)

	// === Check-in prompt ===
	GetCheckInStatus(day string) CheckInStatus
	SetCheckInStatus(day string, status CheckInStatus) error

	Close() error
}
