package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// WeightUnit tags a weight value
type WeightUnit string

const (
	UnitKg  WeightUnit = "kg"
	UnitLbs WeightUnit = "lbs"
)

// Toggle flips between kg and lbs
func (u WeightUnit) Toggle() WeightUnit {
	if u == UnitLbs {
		return UnitKg
	}
	return UnitLbs
}

// Valid reports whether u is a known unit
func (u WeightUnit) Valid() bool {
	return u == UnitKg || u == UnitLbs
}

// ParseWeightUnit maps user input to a unit
func ParseWeightUnit(s string) (WeightUnit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kg", "kgs", "kilo", "kilos":
		return UnitKg, true
	case "lb", "lbs", "pound", "pounds":
		return UnitLbs, true
	default:
		return "", false
	}
}

// WeightEntry is a single check-in, built at submission time
type WeightEntry struct {
	ID        string     `json:"id"`
	Day       string     `json:"day"`
	Value     float64    `json:"value"`
	Unit      WeightUnit `json:"unit"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Plain decimals only; ParseFloat alone also takes hex, exponents and underscores
var decimalPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// ParseWeight parses check-in text. ok is true only for a finite value > 0.
func ParseWeight(text string) (value float64, ok bool) {
	text = strings.TrimSpace(text)
	if !decimalPattern.MatchString(text) {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || !ValidWeight(v) {
		return 0, false
	}
	return v, true
}

// ValidWeight reports whether v is a finite value > 0
func ValidWeight(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// CanSubmit is the enable predicate for the check-in submit control
func CanSubmit(text string) bool {
	_, ok := ParseWeight(text)
	return ok
}

// CheckInStatus records what happened to the day's check-in prompt
type CheckInStatus string

const (
	CheckInPending CheckInStatus = ""
	CheckInLogged  CheckInStatus = "logged"
	CheckInSkipped CheckInStatus = "skipped"
)
