package entries

import (
	"errors"
	"fmt"
	"math"
)

const (
	MaxSetsReps = 99
	MaxRPE      = 10

	DefaultBarWeight = 45
	MaxBarWeight     = 999

	MinBodyWeight = 50
	MaxBodyWeight = 500
)

var (
	ErrNoExercise           = errors.New("no exercise selected")
	ErrFutureDate           = errors.New("cannot log entries for future dates")
	ErrInvalidWeight        = errors.New("weight must be a non-negative number")
	ErrBodyWeightOutOfRange = fmt.Errorf("body weight must be between %d and %d lbs", MinBodyWeight, MaxBodyWeight)
	ErrEmptyActivity        = errors.New("enter an activity note or a body weight")
	ErrNotEditable          = errors.New("only activity entries can be edited")
)

// ClampSetsReps keeps sets/reps within 0..99.
func ClampSetsReps(v int) int {
	return max(0, min(MaxSetsReps, v))
}

// ClampRPE keeps RPE within 0..10 with two decimals. NaN becomes 0.
func ClampRPE(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	clamped := math.Max(0, math.Min(MaxRPE, v))
	return round2(clamped)
}

// LogarithmicRPE maps a 0..10 slider position onto RPE = 10 * (pos/10)^2,
// giving finer control at the low end. Invalid positions map to 0.
func LogarithmicRPE(position float64) float64 {
	if math.IsNaN(position) || position < 0 || position > 10 {
		return 0
	}
	if position == 0 {
		return 0
	}
	rpe := round2(10 * math.Pow(position/10, 2))
	if math.IsNaN(rpe) || math.IsInf(rpe, 0) {
		return 0
	}
	return rpe
}

// ClampBarWeight keeps the bar weight within 0..999; NaN falls back to the standard bar.
func ClampBarWeight(v float64) float64 {
	if math.IsNaN(v) {
		return DefaultBarWeight
	}
	return math.Max(0, math.Min(MaxBarWeight, v))
}

// ValidateBodyWeight accepts nil (not recorded) or a value in [50, 500] lbs.
func ValidateBodyWeight(bw *float64) error {
	if bw == nil {
		return nil
	}
	if math.IsNaN(*bw) || *bw < MinBodyWeight || *bw > MaxBodyWeight {
		return fmt.Errorf("%w: got %v", ErrBodyWeightOutOfRange, *bw)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
