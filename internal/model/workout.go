package model

import "strings"

// StepType distinguishes constant-power steps from ramps
type StepType string

const (
	StepTypeSteady StepType = "steady"
	StepTypeRamp   StepType = "ramp"
)

// Step is one timed segment of a workout. Power is expressed in percent of FTP.
type Step struct {
	Duration   int      `json:"duration" yaml:"duration"`
	StartPower int      `json:"start_power" yaml:"start_power"`
	EndPower   int      `json:"end_power" yaml:"end_power"`
	Type       StepType `json:"type,omitempty" yaml:"type,omitempty"`
}

// IsRamp reports whether the step changes power over its duration
func (s Step) IsRamp() bool {
	if s.Type != "" {
		return s.Type == StepTypeRamp
	}
	return s.StartPower != s.EndPower
}

// Workout is a named, ordered list of steps. The pointer fields are derived
// values that are absent until computed.
type Workout struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Name  string `json:"name" yaml:"name"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Steps []Step `json:"steps" yaml:"steps"`

	// BaseSteps are the unscaled steps, recorded together with BaseTotalDuration
	BaseSteps []Step `json:"base_steps,omitempty" yaml:"base_steps,omitempty"`

	TotalDuration     *int    `json:"total_duration,omitempty" yaml:"total_duration,omitempty"`
	BaseTotalDuration *int    `json:"base_total_duration,omitempty" yaml:"base_total_duration,omitempty"`
	TargetDuration    *int    `json:"target_duration,omitempty" yaml:"target_duration,omitempty"`
	DurationScale     float64 `json:"duration_scale,omitempty" yaml:"duration_scale,omitempty"`
}

// StepsDuration returns the sum of all step durations in seconds
func (w *Workout) StepsDuration() int {
	total := 0
	for _, step := range w.Steps {
		total += step.Duration
	}
	return total
}

// Duration returns the recorded total duration, or the steps sum if none was recorded
func (w *Workout) Duration() int {
	if w.TotalDuration != nil {
		return *w.TotalDuration
	}
	return w.StepsDuration()
}

// BaseDuration returns the original, unscaled duration of the workout
func (w *Workout) BaseDuration() int {
	if w.BaseTotalDuration != nil {
		return *w.BaseTotalDuration
	}
	return w.StepsDuration()
}

// CopySteps returns an independently owned copy of the steps
func (w *Workout) CopySteps() []Step {
	steps := make([]Step, len(w.Steps))
	copy(steps, w.Steps)
	return steps
}

// OriginalSteps returns the unscaled steps: BaseSteps when recorded, Steps otherwise
func (w *Workout) OriginalSteps() []Step {
	if len(w.BaseSteps) > 0 && len(w.BaseSteps) == len(w.Steps) {
		return w.BaseSteps
	}
	return w.Steps
}

// GetDisplayName returns the workout name, or a placeholder for unnamed workouts
func (w *Workout) GetDisplayName() string {
	name := strings.TrimSpace(w.Name)
	if name == "" {
		return "Untitled workout"
	}
	return name
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}

// SortOrder selects how the workout list is ordered
type SortOrder string

const (
	SortDefault      SortOrder = "default"
	SortNameAsc      SortOrder = "asc"
	SortNameDesc     SortOrder = "desc"
	SortDurationAsc  SortOrder = "duration_asc"
	SortDurationDesc SortOrder = "duration_desc"
)

// SortOrders returns all sort orders in menu order
func SortOrders() []SortOrder {
	return []SortOrder{SortDefault, SortNameAsc, SortNameDesc, SortDurationAsc, SortDurationDesc}
}

// IsValid reports whether the sort order is known
func (so SortOrder) IsValid() bool {
	for _, order := range SortOrders() {
		if so == order {
			return true
		}
	}
	return false
}
