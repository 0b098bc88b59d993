package workout

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ytget/workout-viewer/internal/model"
)

func TestEncodeOverlay(t *testing.T) {
	w := &model.Workout{
		Name: "Sweet;Spot",
		Steps: []model.Step{
			{Duration: 600, StartPower: 55, EndPower: 55},
			{Duration: 300, StartPower: 60, EndPower: 90},
		},
	}

	got, err := EncodeOverlay(w, 250)
	if err != nil {
		t.Fatalf("EncodeOverlay() error = %v", err)
	}
	expected := "Sweet,Spot;250;138-138-600;150-225-300"
	if got != expected {
		t.Errorf("EncodeOverlay() = %q, expected %q", got, expected)
	}

	args, err := OverlayArgs(w, 250)
	if err != nil {
		t.Fatalf("OverlayArgs() error = %v", err)
	}
	if diff := cmp.Diff([]string{"-workout", expected}, args); diff != "" {
		t.Errorf("OverlayArgs mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeOverlay_Errors(t *testing.T) {
	if _, err := EncodeOverlay(nil, 250); !errors.Is(err, ErrMalformedOverlay) {
		t.Errorf("nil workout: expected ErrMalformedOverlay, got %v", err)
	}
	if _, err := EncodeOverlay(&model.Workout{Name: "empty"}, 250); !errors.Is(err, ErrMalformedOverlay) {
		t.Errorf("empty workout: expected ErrMalformedOverlay, got %v", err)
	}
	if _, err := EncodeOverlay(&model.Workout{Name: "x", Steps: stepsOf(60)}, 0); !errors.Is(err, ErrMalformedOverlay) {
		t.Errorf("zero ftp: expected ErrMalformedOverlay, got %v", err)
	}
}

func TestDecodeOverlay_RoundTripsScaledWorkout(t *testing.T) {
	w := Rescale(&model.Workout{Name: "Threshold", Steps: stepsOf(600, 1200, 300)}, 1500)

	encoded, err := EncodeOverlay(w, 200)
	if err != nil {
		t.Fatalf("EncodeOverlay() error = %v", err)
	}
	decoded, err := DecodeOverlay(encoded)
	if err != nil {
		t.Fatalf("DecodeOverlay() error = %v", err)
	}

	if decoded.Name != "Threshold" || decoded.FTP != 200 {
		t.Errorf("header = (%q, %d), expected (Threshold, 200)", decoded.Name, decoded.FTP)
	}
	if len(decoded.Segments) != len(w.Steps) {
		t.Fatalf("expected %d segments, got %d", len(w.Steps), len(decoded.Segments))
	}
	for i, seg := range decoded.Segments {
		step := w.Steps[i]
		if seg.Duration != time.Duration(step.Duration)*time.Second {
			t.Errorf("segment %d duration = %v, expected %ds", i, seg.Duration, step.Duration)
		}
		if seg.StartWatts != Watts(step.StartPower, 200) || seg.EndWatts != Watts(step.EndPower, 200) {
			t.Errorf("segment %d watts = %d-%d", i, seg.StartWatts, seg.EndWatts)
		}
	}
	if decoded.Duration() != 1500*time.Second {
		t.Errorf("Duration() = %v, expected 25m", decoded.Duration())
	}
}

func TestDecodeOverlay_Errors(t *testing.T) {
	tests := []string{
		"",
		"name;250",
		"name;abc;100-100-60",
		"name;0;100-100-60",
		"name;250;100-100",
		"name;250;100-x-60",
		"name;250;100--60",
		"name;250;",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := DecodeOverlay(input); !errors.Is(err, ErrMalformedOverlay) {
				t.Errorf("DecodeOverlay(%q) error = %v, expected ErrMalformedOverlay", input, err)
			}
		})
	}
}
