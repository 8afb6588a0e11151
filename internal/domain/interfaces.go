package domain

// TrackableItem is anything in a plan that carries a completion flag.
// Exercise and Meal implement it directly.
type TrackableItem interface {
	// ItemID returns the identifier, unique within its collection
	ItemID() string

	// ItemName returns the display name
	ItemName() string

	// IsCompleted reports the completion flag
	IsCompleted() bool
}

// ItemKind distinguishes the two trackable collections in a plan
type ItemKind int

const (
	KindExercise ItemKind = iota
	KindMeal
)

// String returns the kind name used in logs and CLI output
func (k ItemKind) String() string {
	switch k {
	case KindExercise:
		return "exercise"
	case KindMeal:
		return "meal"
	default:
		return "unknown"
	}
}
