package workout

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ytget/workout-viewer/internal/model"
	"github.com/ytget/workout-viewer/internal/platform"
)

var (
	// ErrInvalidWorkout is returned for workouts without a name or steps
	ErrInvalidWorkout = errors.New("invalid workout")

	// ErrDuplicateWorkout is returned when a workout with the same ID is already in the catalog
	ErrDuplicateWorkout = errors.New("workout already exists")
)

// Catalog file extensions
const (
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// Filter selects and orders catalog entries. A non-positive Max means no upper bound.
type Filter struct {
	Min   int
	Max   int
	Order model.SortOrder
}

// Catalog is the in-memory workout library
type Catalog struct {
	mu       sync.RWMutex
	workouts []model.Workout
}

// NewCatalog creates a catalog from already decoded workouts
func NewCatalog(workouts []model.Workout) *Catalog {
	c := &Catalog{workouts: make([]model.Workout, 0, len(workouts))}
	for _, w := range workouts {
		c.workouts = append(c.workouts, normalize(w))
	}
	return c
}

// LoadCatalog reads a JSON or YAML workout library from disk
func LoadCatalog(path string) (*Catalog, error) {
	workouts, err := LoadWorkouts(path)
	if err != nil {
		return nil, err
	}
	return NewCatalog(workouts), nil
}

// LoadWorkouts reads a workout list from disk without normalizing it
func LoadWorkouts(path string) ([]model.Workout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workouts file: %w", err)
	}

	workouts, err := DecodeWorkouts(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parsing workouts file %s: %w", path, err)
	}
	return workouts, nil
}

// SaveWorkouts writes a workout list in the format selected by the file extension.
// Only the fields needed to reload the workouts are written.
func SaveWorkouts(path string, workouts []model.Workout) error {
	out := make([]model.Workout, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, model.Workout{
			ID:    w.ID,
			Name:  w.Name,
			URL:   w.URL,
			Steps: w.OriginalSteps(),
		})
	}

	data, err := EncodeWorkouts(out, filepath.Ext(path))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), platform.DefaultDirPermissions); err != nil {
		return fmt.Errorf("creating workouts directory: %w", err)
	}
	if err := os.WriteFile(path, data, platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("writing workouts file: %w", err)
	}
	return nil
}

// EncodeWorkouts encodes a workout list; ext selects the format
func EncodeWorkouts(workouts []model.Workout, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ExtJSON:
		return json.MarshalIndent(workouts, "", "  ")
	case ExtYAML, ExtYML:
		return yaml.Marshal(workouts)
	default:
		return nil, fmt.Errorf("unsupported workouts format %q", ext)
	}
}

// DecodeWorkouts decodes a workout list; ext selects the format (".json", ".yaml", ".yml")
func DecodeWorkouts(data []byte, ext string) ([]model.Workout, error) {
	var workouts []model.Workout
	switch strings.ToLower(ext) {
	case ExtJSON:
		if err := json.Unmarshal(data, &workouts); err != nil {
			return nil, err
		}
	case ExtYAML, ExtYML:
		if err := yaml.Unmarshal(data, &workouts); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported workouts format %q", ext)
	}
	return workouts, nil
}

// normalize fills the derived fields of a freshly loaded workout
func normalize(w model.Workout) model.Workout {
	w.Steps = w.CopySteps()
	if w.TotalDuration == nil {
		w.TotalDuration = model.IntPtr(w.StepsDuration())
	}
	if w.ID == "" {
		w.ID = WorkoutID(&w)
	}
	return w
}

// Len returns the number of workouts
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.workouts)
}

// All returns a copy of the workouts in catalog order
func (c *Catalog) All() []model.Workout {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Workout, len(c.workouts))
	copy(out, c.workouts)
	return out
}

// Get returns a workout by ID
func (c *Catalog) Get(id string) (model.Workout, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, w := range c.workouts {
		if w.ID == id {
			return w, true
		}
	}
	return model.Workout{}, false
}

// Add validates a user-created workout and appends it to the catalog
func (c *Catalog) Add(w model.Workout) (model.Workout, error) {
	if err := Validate(&w); err != nil {
		return model.Workout{}, err
	}
	w.Name = strings.TrimSpace(w.Name)
	w.TotalDuration = nil
	w.ID = ""
	w = normalize(w)

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.workouts {
		if existing.ID == w.ID {
			return model.Workout{}, fmt.Errorf("%w: %s", ErrDuplicateWorkout, w.Name)
		}
	}
	c.workouts = append(c.workouts, w)
	return w, nil
}

// Validate checks that a workout has a name and at least one step with a positive duration
func Validate(w *model.Workout) error {
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidWorkout)
	}
	if len(w.Steps) == 0 {
		return fmt.Errorf("%w: at least one step is required", ErrInvalidWorkout)
	}
	for i, step := range w.Steps {
		if step.Duration <= 0 {
			return fmt.Errorf("%w: step %d has no duration", ErrInvalidWorkout, i+1)
		}
		if step.StartPower < 0 || step.EndPower < 0 {
			return fmt.Errorf("%w: step %d has negative power", ErrInvalidWorkout, i+1)
		}
	}
	return nil
}

// DurationBounds returns the shortest and longest workout durations, or 0, 0 for an empty catalog
func (c *Catalog) DurationBounds() (int, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.workouts) == 0 {
		return 0, 0
	}
	lo, hi := c.workouts[0].Duration(), c.workouts[0].Duration()
	for _, w := range c.workouts[1:] {
		d := w.Duration()
		lo = min(lo, d)
		hi = max(hi, d)
	}
	return lo, hi
}

// Filter returns the workouts whose duration lies within [lo, hi]
func (c *Catalog) Filter(lo, hi int) []model.Workout {
	return FilterByDuration(c.All(), lo, hi)
}

// Sort returns all workouts in the given order
func (c *Catalog) Sort(order model.SortOrder) []model.Workout {
	return SortWorkouts(c.All(), order)
}

// Query filters by duration and sorts in one pass
func (c *Catalog) Query(f Filter) []model.Workout {
	return SortWorkouts(FilterByDuration(c.All(), f.Min, f.Max), f.Order)
}

// FilterByDuration keeps workouts whose duration lies within [lo, hi]. hi <= 0 means unbounded.
func FilterByDuration(workouts []model.Workout, lo, hi int) []model.Workout {
	out := make([]model.Workout, 0, len(workouts))
	for _, w := range workouts {
		d := w.Duration()
		if d < lo {
			continue
		}
		if hi > 0 && d > hi {
			continue
		}
		out = append(out, w)
	}
	return out
}

// SortWorkouts returns a sorted copy. The default order keeps the input order.
func SortWorkouts(workouts []model.Workout, order model.SortOrder) []model.Workout {
	out := make([]model.Workout, len(workouts))
	copy(out, workouts)

	switch order {
	case model.SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool { return compareNames(out[i].Name, out[j].Name) < 0 })
	case model.SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool { return compareNames(out[i].Name, out[j].Name) > 0 })
	case model.SortDurationAsc:
		sort.SliceStable(out, func(i, j int) bool { return recordedDuration(out[i]) < recordedDuration(out[j]) })
	case model.SortDurationDesc:
		sort.SliceStable(out, func(i, j int) bool { return recordedDuration(out[i]) > recordedDuration(out[j]) })
	}
	return out
}

func compareNames(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// recordedDuration treats a missing total as zero, like the list view does
func recordedDuration(w model.Workout) int {
	if w.TotalDuration == nil {
		return 0
	}
	return *w.TotalDuration
}

// ClampRange keeps a range slider pair ordered: the moved end may not cross the other one
func ClampRange(lower, upper int, movedLower bool) (int, int) {
	if movedLower {
		return min(lower, upper), upper
	}
	return lower, max(upper, lower)
}
