package workout

import (
	"math"
	"testing"
)

func TestAdjusterBounds(t *testing.T) {
	tests := []struct {
		name                 string
		base, current, steps int
		expected             Adjuster
	}{
		{
			name: "unscaled", base: 3600, current: 3600, steps: 5,
			expected: Adjuster{Min: 1800, Max: 5400, Step: 30, Value: 3600, ScalePercent: 100},
		},
		{
			name: "shortened below half", base: 3600, current: 1000, steps: 5,
			expected: Adjuster{Min: 800, Max: 5400, Step: 30, Value: 1000, ScalePercent: 28},
		},
		{
			name: "many steps raise the minimum", base: 20, current: 20, steps: 30,
			expected: Adjuster{Min: 30, Max: 90, Step: 30, Value: 30, ScalePercent: 100},
		},
		{
			name: "missing current uses base", base: 600, current: 0, steps: 1,
			expected: Adjuster{Min: 300, Max: 900, Step: 30, Value: 600, ScalePercent: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AdjusterBounds(tt.base, tt.current, tt.steps)
			if !ok {
				t.Fatalf("AdjusterBounds() ok = false")
			}
			if got != tt.expected {
				t.Errorf("AdjusterBounds() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestAdjusterBounds_InvalidBase(t *testing.T) {
	if _, ok := AdjusterBounds(0, 600, 3); ok {
		t.Errorf("expected ok = false for zero base")
	}
	if _, ok := AdjusterBounds(-10, 600, 3); ok {
		t.Errorf("expected ok = false for negative base")
	}
}

func TestAdjuster_MinutesToTarget(t *testing.T) {
	a, _ := AdjusterBounds(3600, 3600, 5)

	if got, ok := a.MinutesToTarget(45); !ok || got != 2700 {
		t.Errorf("MinutesToTarget(45) = (%v, %v), expected (2700, true)", got, ok)
	}
	if got, _ := a.MinutesToTarget(10); got != 1800 {
		t.Errorf("MinutesToTarget(10) = %v, expected slider minimum 1800", got)
	}
	if _, ok := a.MinutesToTarget(math.NaN()); ok {
		t.Errorf("expected ok = false for NaN")
	}
}
