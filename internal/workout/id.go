package workout

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/ytget/workout-viewer/internal/model"
)

// WorkoutID derives a stable identifier from the workout name and its steps,
// so the same library entry keeps its ID across reloads.
func WorkoutID(w *model.Workout) string {
	d := xxhash.New()
	_, _ = d.WriteString(w.Name)
	for _, step := range w.OriginalSteps() {
		_, _ = d.WriteString(";")
		_, _ = d.WriteString(strconv.Itoa(step.Duration))
		_, _ = d.WriteString("-")
		_, _ = d.WriteString(strconv.Itoa(step.StartPower))
		_, _ = d.WriteString("-")
		_, _ = d.WriteString(strconv.Itoa(step.EndPower))
	}
	return fmt.Sprintf("%016x", d.Sum64())
}
