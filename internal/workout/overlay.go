package workout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ytget/workout-viewer/internal/model"
)

// OverlayFlag is the command line flag the overlay reads the workout from
const OverlayFlag = "-workout"

const (
	fieldSeparator   = ";"
	segmentSeparator = "-"
)

// ErrMalformedOverlay is returned when an overlay string cannot be decoded
var ErrMalformedOverlay = errors.New("malformed overlay workout")

// OverlaySegment is one step of an encoded workout, in absolute watts
type OverlaySegment struct {
	StartWatts int
	EndWatts   int
	Duration   time.Duration
}

// OverlayWorkout is the decoded form of an overlay workout string
type OverlayWorkout struct {
	Name     string
	FTP      int
	Segments []OverlaySegment
}

// Duration returns the total duration of all segments
func (o *OverlayWorkout) Duration() time.Duration {
	var total time.Duration
	for _, seg := range o.Segments {
		total += seg.Duration
	}
	return total
}

// EncodeOverlay serializes a workout as "name;ftp;start-end-duration;..." with powers in watts
func EncodeOverlay(w *model.Workout, ftp int) (string, error) {
	if w == nil || len(w.Steps) == 0 {
		return "", fmt.Errorf("%w: workout has no steps", ErrMalformedOverlay)
	}
	if ftp <= 0 {
		return "", fmt.Errorf("%w: ftp must be positive, got %d", ErrMalformedOverlay, ftp)
	}

	var b strings.Builder
	b.WriteString(overlayName(w.Name))
	b.WriteString(fieldSeparator)
	b.WriteString(strconv.Itoa(ftp))
	for _, step := range w.Steps {
		fmt.Fprintf(&b, "%s%d%s%d%s%d", fieldSeparator,
			Watts(step.StartPower, ftp), segmentSeparator,
			Watts(step.EndPower, ftp), segmentSeparator,
			step.Duration)
	}
	return b.String(), nil
}

// OverlayArgs returns the overlay command line arguments for a workout
func OverlayArgs(w *model.Workout, ftp int) ([]string, error) {
	encoded, err := EncodeOverlay(w, ftp)
	if err != nil {
		return nil, err
	}
	return []string{OverlayFlag, encoded}, nil
}

// overlayName keeps separators out of the name field
func overlayName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), fieldSeparator, ",")
}

// DecodeOverlay parses an overlay workout string
func DecodeOverlay(s string) (*OverlayWorkout, error) {
	parts := strings.Split(strings.TrimSpace(s), fieldSeparator)
	if len(parts) < 3 {
		return nil, fmt.Errorf("%w: expected name, ftp and at least one segment", ErrMalformedOverlay)
	}

	ftp, err := strconv.Atoi(parts[1])
	if err != nil || ftp <= 0 {
		return nil, fmt.Errorf("%w: invalid ftp %q", ErrMalformedOverlay, parts[1])
	}

	out := &OverlayWorkout{Name: parts[0], FTP: ftp}
	for i, part := range parts[2:] {
		if part == "" {
			continue
		}
		seg, err := decodeSegment(part)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i+1, err)
		}
		out.Segments = append(out.Segments, seg)
	}
	if len(out.Segments) == 0 {
		return nil, fmt.Errorf("%w: no segments", ErrMalformedOverlay)
	}
	return out, nil
}

func decodeSegment(s string) (OverlaySegment, error) {
	fields := strings.Split(s, segmentSeparator)
	if len(fields) != 3 {
		return OverlaySegment{}, fmt.Errorf("%w: %q is not start-end-duration", ErrMalformedOverlay, s)
	}
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return OverlaySegment{}, fmt.Errorf("%w: invalid number %q", ErrMalformedOverlay, f)
		}
		values[i] = v
	}
	return OverlaySegment{
		StartWatts: values[0],
		EndWatts:   values[1],
		Duration:   time.Duration(values[2]) * time.Second,
	}, nil
}
