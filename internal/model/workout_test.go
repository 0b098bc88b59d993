package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestWorkout_Durations(t *testing.T) {
	w := &Workout{
		Name: "Sweet Spot",
		Steps: []Step{
			{Duration: 600, StartPower: 50, EndPower: 75},
			{Duration: 1200, StartPower: 90, EndPower: 90},
			{Duration: 300, StartPower: 50, EndPower: 50},
		},
	}

	if got := w.StepsDuration(); got != 2100 {
		t.Errorf("StepsDuration() = %d, expected 2100", got)
	}
	if got := w.Duration(); got != 2100 {
		t.Errorf("Duration() without recorded total = %d, expected 2100", got)
	}
	if got := w.BaseDuration(); got != 2100 {
		t.Errorf("BaseDuration() without recorded base = %d, expected 2100", got)
	}

	w.TotalDuration = IntPtr(1800)
	w.BaseTotalDuration = IntPtr(2400)
	if got := w.Duration(); got != 1800 {
		t.Errorf("Duration() = %d, expected recorded 1800", got)
	}
	if got := w.BaseDuration(); got != 2400 {
		t.Errorf("BaseDuration() = %d, expected recorded 2400", got)
	}
}

func TestWorkout_CopySteps(t *testing.T) {
	w := &Workout{Steps: []Step{{Duration: 60, StartPower: 100, EndPower: 100}}}

	steps := w.CopySteps()
	steps[0].Duration = 1

	if w.Steps[0].Duration != 60 {
		t.Errorf("Mutating the copy changed the original: %d", w.Steps[0].Duration)
	}
}

func TestStep_IsRamp(t *testing.T) {
	tests := []struct {
		step     Step
		expected bool
	}{
		{Step{StartPower: 50, EndPower: 50}, false},
		{Step{StartPower: 50, EndPower: 80}, true},
		{Step{StartPower: 50, EndPower: 50, Type: StepTypeRamp}, true},
		{Step{StartPower: 50, EndPower: 80, Type: StepTypeSteady}, false},
	}

	for _, test := range tests {
		if result := test.step.IsRamp(); result != test.expected {
			t.Errorf("%+v.IsRamp() = %v, expected %v", test.step, result, test.expected)
		}
	}
}

func TestWorkout_GetDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Over-Unders", "Over-Unders"},
		{"  Padded  ", "Padded"},
		{"", "Untitled workout"},
		{"   ", "Untitled workout"},
	}

	for _, test := range tests {
		w := &Workout{Name: test.name}
		if result := w.GetDisplayName(); result != test.expected {
			t.Errorf("GetDisplayName() with name='%s' = '%s', expected '%s'", test.name, result, test.expected)
		}
	}
}

func TestSortOrder_IsValid(t *testing.T) {
	for _, order := range SortOrders() {
		if !order.IsValid() {
			t.Errorf("SortOrder(%s) should be valid", order)
		}
	}
	if SortOrder("random").IsValid() {
		t.Error("SortOrder(random) should not be valid")
	}
}

func TestWorkout_JSONDerivedFieldsAreSnakeCase(t *testing.T) {
	w := Workout{
		Name:              "Tagged",
		Steps:             []Step{{Duration: 30, StartPower: 50, EndPower: 60}},
		BaseSteps:         []Step{{Duration: 60, StartPower: 50, EndPower: 60}},
		TotalDuration:     IntPtr(30),
		BaseTotalDuration: IntPtr(60),
		TargetDuration:    IntPtr(30),
		DurationScale:     0.5,
	}

	data, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got := string(data)

	for _, key := range []string{"base_steps", "total_duration", "base_total_duration", "target_duration", "duration_scale", "start_power"} {
		if !strings.Contains(got, `"`+key+`"`) {
			t.Errorf("JSON %s missing key %q", got, key)
		}
	}
	for _, key := range []string{"baseSteps", "totalDuration", "baseTotalDuration", "targetDuration", "durationScale"} {
		if strings.Contains(got, `"`+key+`"`) {
			t.Errorf("JSON %s has camelCase key %q", got, key)
		}
	}
}
