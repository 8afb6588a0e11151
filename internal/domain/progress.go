package domain

// CompletionAggregate is the derived (completed, total) pair over a collection.
// It is always recomputed from the live collection and never stored.
type CompletionAggregate struct {
	Completed int
	Total     int
}

// Aggregate counts completed items in the collection
func Aggregate[T TrackableItem](items []T) CompletionAggregate {
	agg := CompletionAggregate{Total: len(items)}
	for _, item := range items {
		if item.IsCompleted() {
			agg.Completed++
		}
	}
	return agg
}

// Percent returns completed/total × 100.
// An empty collection reports 0.
func (a CompletionAggregate) Percent() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Completed) / float64(a.Total) * 100
}

// IsComplete reports whether every item is done.
// An empty collection is never complete.
func (a CompletionAggregate) IsComplete() bool {
	return a.Total > 0 && a.Completed == a.Total
}

// Add combines two aggregates, e.g. exercises + meals for the day ring
func (a CompletionAggregate) Add(b CompletionAggregate) CompletionAggregate {
	return CompletionAggregate{
		Completed: a.Completed + b.Completed,
		Total:     a.Total + b.Total,
	}
}

// PlanProgress aggregates both collections of a plan
func PlanProgress(p DayPlan) (exercises, meals, overall CompletionAggregate) {
	exercises = Aggregate(p.Exercises)
	meals = Aggregate(p.Meals)
	return exercises, meals, exercises.Add(meals)
}
