package workout

import (
	"math"
	"sort"

	"github.com/ytget/workout-viewer/internal/model"
)

// MaxTargetSeconds caps rescale targets so they always convert to int
const MaxTargetSeconds = math.MaxInt32

// Rescale returns a copy of w whose step durations sum exactly to the target
// duration (seconds) while keeping the relative shape of the profile.
//
// Steps are scaled proportionally, floored with a minimum of one second, and
// the leftover seconds go to the steps with the largest fractional remainder
// (largest-remainder apportionment; ties go to the earlier step). Scaling is
// always relative to BaseTotalDuration and BaseSteps, which are recorded on
// first use and carried through unchanged, so repeated calls never compound.
//
// A non-finite target means "no change". Targets above MaxTargetSeconds are
// capped. The target is rounded and raised to at least one second per step.
// Rescale returns nil only for a nil workout.
func Rescale(w *model.Workout, targetSeconds float64) *model.Workout {
	if w == nil {
		return nil
	}

	baseTotal := w.BaseDuration()
	if baseTotal == 0 {
		out := *w
		out.BaseTotalDuration = model.IntPtr(0)
		out.DurationScale = 1
		out.Steps = w.CopySteps()
		return &out
	}

	safeTarget := targetSeconds
	if math.IsNaN(safeTarget) || math.IsInf(safeTarget, 0) {
		safeTarget = float64(baseTotal)
	}
	safeTarget = min(max(safeTarget, 0), MaxTargetSeconds)

	original := w.OriginalSteps()

	minPossible := len(original)
	if minPossible == 0 {
		minPossible = 1
	}
	target := max(roundHalfUp(safeTarget), minPossible)
	scale := float64(target) / float64(baseTotal)

	raw := make([]float64, len(original))
	durations := make([]int, len(original))
	sum := 0
	for i, step := range original {
		raw[i] = float64(step.Duration) * scale
		durations[i] = max(1, int(math.Floor(raw[i])))
		sum += durations[i]
	}

	remaining := max(target-sum, 0)
	if remaining > 0 {
		order := make([]int, len(raw))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return remainder(raw[order[a]]) > remainder(raw[order[b]])
		})

		for i := 0; i < len(order) && remaining > 0; i++ {
			durations[order[i]]++
			remaining--
		}
	}

	steps := make([]model.Step, len(original))
	scaledTotal := 0
	for i, step := range original {
		step.Duration = durations[i]
		steps[i] = step
		scaledTotal += step.Duration
	}

	out := *w
	out.Steps = steps
	out.BaseSteps = append([]model.Step(nil), original...)
	out.TotalDuration = model.IntPtr(scaledTotal)
	out.TargetDuration = model.IntPtr(target)
	out.BaseTotalDuration = model.IntPtr(baseTotal)
	out.DurationScale = float64(scaledTotal) / float64(baseTotal)
	return &out
}

func remainder(v float64) float64 {
	return v - math.Floor(v)
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
