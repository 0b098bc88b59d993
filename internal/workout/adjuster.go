package workout

import "math"

// DurationStep is the slider increment for the duration adjuster, in seconds
const DurationStep = 30

// Adjuster holds the slider range for rescaling a workout
type Adjuster struct {
	Min          int
	Max          int
	Step         int
	Value        int // current duration clamped into [Min, Max]
	ScalePercent int // current duration relative to base, not clamped
}

// AdjusterBounds computes the duration slider range around the base duration.
// current is the currently selected duration, stepCount the number of steps.
// ok is false when base is not a positive duration.
func AdjusterBounds(base, current, stepCount int) (Adjuster, bool) {
	if base <= 0 {
		return Adjuster{}, false
	}
	if current <= 0 {
		current = base
	}

	lower := max(stepCount, 10)
	minValue := max(lower, min(roundHalfUp(float64(base)*0.5), int(math.Floor(float64(current)*0.8))))
	maxValue := max(roundHalfUp(float64(base)*1.5), int(math.Ceil(float64(current)*1.2)), minValue+60)

	return Adjuster{
		Min:          minValue,
		Max:          maxValue,
		Step:         DurationStep,
		Value:        min(max(current, minValue), maxValue),
		ScalePercent: roundHalfUp(float64(current) / float64(base) * 100),
	}, true
}

// MinutesToTarget converts a minutes entry into a target duration no shorter than the slider minimum.
// ok is false for non-finite input.
func (a Adjuster) MinutesToTarget(minutes float64) (float64, bool) {
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		return 0, false
	}
	return math.Max(float64(a.Min), minutes*60), true
}
