package workout

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ytget/workout-viewer/internal/model"
)

func stepsOf(durations ...int) []model.Step {
	steps := make([]model.Step, len(durations))
	for i, d := range durations {
		steps[i] = model.Step{Duration: d, StartPower: 50 + i*10, EndPower: 60 + i*10}
	}
	return steps
}

func durationsOf(w *model.Workout) []int {
	out := make([]int, len(w.Steps))
	for i, s := range w.Steps {
		out[i] = s.Duration
	}
	return out
}

func TestRescale_NilWorkout(t *testing.T) {
	if got := Rescale(nil, 600); got != nil {
		t.Errorf("Rescale(nil) = %+v, expected nil", got)
	}
}

func TestRescale_LargestRemainderTieGoesToFirstStep(t *testing.T) {
	w := &model.Workout{Name: "Tie", Steps: stepsOf(60, 30, 30)}

	got := Rescale(w, 90)

	if diff := cmp.Diff([]int{45, 23, 22}, durationsOf(got)); diff != "" {
		t.Errorf("durations mismatch (-want +got):\n%s", diff)
	}
	if *got.TotalDuration != 90 {
		t.Errorf("TotalDuration = %d, expected 90", *got.TotalDuration)
	}
	if *got.TargetDuration != 90 {
		t.Errorf("TargetDuration = %d, expected 90", *got.TargetDuration)
	}
	if *got.BaseTotalDuration != 120 {
		t.Errorf("BaseTotalDuration = %d, expected 120", *got.BaseTotalDuration)
	}
	if got.DurationScale != 0.75 {
		t.Errorf("DurationScale = %v, expected 0.75", got.DurationScale)
	}
}

func TestRescale_SingleStep(t *testing.T) {
	w := &model.Workout{Name: "Single", Steps: stepsOf(10)}

	got := Rescale(w, 5)

	if diff := cmp.Diff([]int{5}, durationsOf(got)); diff != "" {
		t.Errorf("durations mismatch (-want +got):\n%s", diff)
	}
	if *got.TargetDuration != 5 {
		t.Errorf("TargetDuration = %d, expected 5", *got.TargetDuration)
	}
	if *got.TotalDuration != 5 {
		t.Errorf("TotalDuration = %d, expected 5", *got.TotalDuration)
	}
	if got.DurationScale != 0.5 {
		t.Errorf("DurationScale = %v, expected 0.5", got.DurationScale)
	}
}

func TestRescale_HugeTargetIsCapped(t *testing.T) {
	w := &model.Workout{Name: "Huge", Steps: stepsOf(60, 60)}

	for _, target := range []float64{1e19, 1e300, math.MaxFloat64} {
		got := Rescale(w, target)

		if *got.TargetDuration != MaxTargetSeconds {
			t.Errorf("Rescale(%v).TargetDuration = %d, expected %d", target, *got.TargetDuration, MaxTargetSeconds)
		}
		if got.StepsDuration() != MaxTargetSeconds {
			t.Errorf("Rescale(%v) sum = %d, expected %d", target, got.StepsDuration(), MaxTargetSeconds)
		}
		for i, d := range durationsOf(got) {
			if d < 1 {
				t.Errorf("Rescale(%v) step %d duration = %d, expected >= 1", target, i, d)
			}
		}
	}

	got := Rescale(w, 1e9)
	if *got.TargetDuration != 1e9 {
		t.Errorf("Rescale(1e9).TargetDuration = %d, expected 1e9", *got.TargetDuration)
	}
}

func TestRescale_TargetRaisedToOneSecondPerStep(t *testing.T) {
	w := &model.Workout{Steps: stepsOf(600, 5, 600)}

	got := Rescale(w, 2)

	if diff := cmp.Diff([]int{1, 1, 1}, durationsOf(got)); diff != "" {
		t.Errorf("durations mismatch (-want +got):\n%s", diff)
	}
	if *got.TargetDuration != 3 {
		t.Errorf("TargetDuration = %d, expected 3", *got.TargetDuration)
	}
}

func TestRescale_TinyStepsKeepOneSecond(t *testing.T) {
	w := &model.Workout{Steps: stepsOf(1000, 1, 1000)}

	got := Rescale(w, 500)

	for i, d := range durationsOf(got) {
		if d < 1 {
			t.Errorf("step %d duration = %d, expected >= 1", i, d)
		}
	}
	if *got.TotalDuration != 500 {
		t.Errorf("TotalDuration = %d, expected 500", *got.TotalDuration)
	}
}

func TestRescale_ClampedStepsMayOvershootTarget(t *testing.T) {
	w := &model.Workout{Steps: stepsOf(1, 1, 1000)}

	got := Rescale(w, 10)

	if diff := cmp.Diff([]int{1, 1, 9}, durationsOf(got)); diff != "" {
		t.Errorf("durations mismatch (-want +got):\n%s", diff)
	}
	if *got.TotalDuration != 11 || *got.TargetDuration != 10 {
		t.Errorf("TotalDuration = %d, TargetDuration = %d, expected 11 and 10", *got.TotalDuration, *got.TargetDuration)
	}
}

func TestRescale_RoundsFractionalTarget(t *testing.T) {
	w := &model.Workout{Steps: stepsOf(100, 100)}

	tests := []struct {
		target   float64
		expected int
	}{
		{150.4, 150},
		{150.5, 151},
		{-20, 2},
	}

	for _, test := range tests {
		got := Rescale(w, test.target)
		if *got.TargetDuration != test.expected {
			t.Errorf("Rescale(%v).TargetDuration = %d, expected %d", test.target, *got.TargetDuration, test.expected)
		}
	}
}

func TestRescale_NonFiniteTargetKeepsBase(t *testing.T) {
	w := &model.Workout{Name: "Base", Steps: stepsOf(60, 30, 30)}
	want := Rescale(w, 120)

	for _, target := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		got := Rescale(w, target)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Rescale(%v) mismatch (-want +got):\n%s", target, diff)
		}
	}
	if want.DurationScale != 1 {
		t.Errorf("DurationScale = %v, expected 1", want.DurationScale)
	}
}

func TestRescale_BasePinningMakesRepeatedCallsIndependent(t *testing.T) {
	w := &model.Workout{ID: "abc", Name: "Pinned", Steps: stepsOf(61, 37, 29, 300)}

	direct := Rescale(w, 200)
	viaLonger := Rescale(Rescale(w, 1000), 200)
	viaShorter := Rescale(Rescale(Rescale(w, 17), 555), 200)

	if diff := cmp.Diff(direct, viaLonger); diff != "" {
		t.Errorf("rescale via longer target mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(direct, viaShorter); diff != "" {
		t.Errorf("rescale via shorter target mismatch (-want +got):\n%s", diff)
	}
	if *viaShorter.BaseTotalDuration != 427 {
		t.Errorf("BaseTotalDuration = %d, expected 427", *viaShorter.BaseTotalDuration)
	}
}

func TestRescale_RecordedBaseIsNotRecomputed(t *testing.T) {
	w := &model.Workout{Steps: stepsOf(50, 50), BaseTotalDuration: model.IntPtr(200)}

	got := Rescale(w, 100)

	if *got.BaseTotalDuration != 200 {
		t.Errorf("BaseTotalDuration = %d, expected recorded 200", *got.BaseTotalDuration)
	}
	if *got.TargetDuration != 100 {
		t.Errorf("TargetDuration = %d, expected 100", *got.TargetDuration)
	}
	if want := float64(*got.TotalDuration) / 200; got.DurationScale != want {
		t.Errorf("DurationScale = %v, expected %v", got.DurationScale, want)
	}
}

func TestRescale_SameTargetTwiceIsStable(t *testing.T) {
	w := &model.Workout{Name: "Stable", Steps: stepsOf(95, 33, 71)}

	first := Rescale(w, 150)
	second := Rescale(first, 150)

	if diff := cmp.Diff(durationsOf(first), durationsOf(second)); diff != "" {
		t.Errorf("durations changed on repeat (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(w.Steps, second.BaseSteps); diff != "" {
		t.Errorf("BaseSteps mismatch (-want +got):\n%s", diff)
	}
}

func TestRescale_DegenerateWorkouts(t *testing.T) {
	tests := []struct {
		name  string
		steps []model.Step
	}{
		{"no steps", nil},
		{"empty steps", []model.Step{}},
		{"zero length steps", stepsOf(0, 0)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := &model.Workout{Name: "Degenerate", Steps: test.steps}

			got := Rescale(w, 3600)

			if got == nil {
				t.Fatal("Rescale returned nil")
			}
			if got.BaseTotalDuration == nil || *got.BaseTotalDuration != 0 {
				t.Errorf("BaseTotalDuration = %v, expected 0", got.BaseTotalDuration)
			}
			if got.DurationScale != 1 {
				t.Errorf("DurationScale = %v, expected 1", got.DurationScale)
			}
			if len(got.Steps) != len(test.steps) {
				t.Fatalf("len(Steps) = %d, expected %d", len(got.Steps), len(test.steps))
			}
			if len(test.steps) > 0 {
				w.Steps[0].Duration = 99
				if got.Steps[0].Duration != 0 {
					t.Error("result shares its steps with the input")
				}
			}
		})
	}
}

func TestRescale_DoesNotMutateInput(t *testing.T) {
	w := &model.Workout{Name: "Input", Steps: stepsOf(60, 30, 30)}
	before := durationsOf(w)

	got := Rescale(w, 45)
	got.Steps[0].Duration = 1000

	if diff := cmp.Diff(before, durationsOf(w)); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
	if w.TotalDuration != nil || w.BaseTotalDuration != nil {
		t.Error("input derived fields were set")
	}
}

func TestRescale_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 300; iter++ {
		n := 1 + rng.Intn(12)
		durations := make([]int, n)
		for i := range durations {
			durations[i] = 60 + rng.Intn(840)
		}
		w := &model.Workout{Name: "Random", Steps: stepsOf(durations...)}
		// every scaled step stays >= 1s before flooring
		target := w.StepsDuration()/60 + n + rng.Intn(3*w.StepsDuration())

		got := Rescale(w, float64(target))

		if got.StepsDuration() != target {
			t.Fatalf("iter %d: sum = %d, expected %d (durations %v)", iter, got.StepsDuration(), target, durations)
		}
		for i, step := range got.Steps {
			if step.Duration < 1 {
				t.Fatalf("iter %d: step %d duration = %d", iter, i, step.Duration)
			}
			orig := w.Steps[i]
			if step.StartPower != orig.StartPower || step.EndPower != orig.EndPower || step.Type != orig.Type {
				t.Fatalf("iter %d: step %d non-duration fields changed: %+v -> %+v", iter, i, orig, step)
			}
		}
	}
}
