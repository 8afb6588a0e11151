package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrItemNotFound indicates no exercise or meal has the requested ID
	ErrItemNotFound = errors.New("plan item not found")

	// ErrPlanNotFound indicates no plan is stored for the requested day
	ErrPlanNotFound = errors.New("day plan not found")

	// ErrInvalidWeight indicates a weight that is not a finite value > 0
	ErrInvalidWeight = errors.New("weight must be a number greater than 0")

	// ErrInvalidUnit indicates a unit other than kg or lbs
	ErrInvalidUnit = errors.New("unit must be kg or lbs")
)
