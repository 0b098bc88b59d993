package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/workout-viewer/internal/model"
	"github.com/ytget/workout-viewer/internal/workout"
)

// sortOrderKeys maps list orders to their localization keys
var sortOrderKeys = map[model.SortOrder]string{
	model.SortDefault:      KeySortDefault,
	model.SortNameAsc:      KeySortNameAsc,
	model.SortNameDesc:     KeySortNameDesc,
	model.SortDurationAsc:  KeySortDurationAsc,
	model.SortDurationDesc: KeySortDurationDesc,
}

// WorkoutListView is the library page: sort and duration filters over a list of workouts
type WorkoutListView struct {
	ui *RootUI

	workouts []model.Workout
	order    model.SortOrder
	lower    int
	upper    int
	syncing  bool

	sortSelect *widget.Select
	minSlider  *widget.Slider
	maxSlider  *widget.Slider
	minLabel   *widget.Label
	maxLabel   *widget.Label
	list       *widget.List
	emptyLabel *widget.Label
	container  fyne.CanvasObject
}

// NewWorkoutListView builds the library page from the current catalog
func NewWorkoutListView(ui *RootUI) *WorkoutListView {
	v := &WorkoutListView{
		ui:    ui,
		order: ui.settings.GetSortOrder(),
	}
	v.createUI()
	v.apply()
	return v
}

// Container returns the page content
func (v *WorkoutListView) Container() fyne.CanvasObject {
	return v.container
}

func (v *WorkoutListView) createUI() {
	l := v.ui.localization

	labels := make([]string, 0, len(model.SortOrders()))
	for _, order := range model.SortOrders() {
		labels = append(labels, l.GetText(sortOrderKeys[order]))
	}
	v.sortSelect = widget.NewSelect(labels, func(label string) {
		for _, order := range model.SortOrders() {
			if l.GetText(sortOrderKeys[order]) == label {
				v.order = order
				v.ui.settings.SetSortOrder(order)
				v.apply()
				return
			}
		}
	})
	v.sortSelect.SetSelected(l.GetText(sortOrderKeys[v.order]))

	lo, hi := v.ui.catalog.DurationBounds()
	sliderMin, sliderMax := sliderRange(lo, hi)
	v.lower, v.upper = sliderMin, sliderMax

	v.minLabel = widget.NewLabel("")
	v.maxLabel = widget.NewLabel("")
	v.minSlider = widget.NewSlider(float64(sliderMin), float64(sliderMax))
	v.minSlider.Step = FilterSliderStep
	v.minSlider.SetValue(float64(sliderMin))
	v.maxSlider = widget.NewSlider(float64(sliderMin), float64(sliderMax))
	v.maxSlider.Step = FilterSliderStep
	v.maxSlider.SetValue(float64(sliderMax))
	v.minSlider.OnChanged = func(value float64) { v.onRangeChanged(int(value), v.upper, true) }
	v.maxSlider.OnChanged = func(value float64) { v.onRangeChanged(v.lower, int(value), false) }
	v.updateRangeLabels()

	filters := container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel(l.GetText(KeySortBy)), nil, v.sortSelect),
		container.NewBorder(nil, nil, widget.NewLabel(l.GetText(KeyMinDuration)), v.minLabel, v.minSlider),
		container.NewBorder(nil, nil, widget.NewLabel(l.GetText(KeyMaxDuration)), v.maxLabel, v.maxSlider),
	)
	if hi == 0 {
		// Nothing to filter
		v.minSlider.Hide()
		v.maxSlider.Hide()
		v.minLabel.Hide()
		v.maxLabel.Hide()
	}

	v.list = widget.NewList(
		func() int { return len(v.workouts) },
		func() fyne.CanvasObject { return NewWorkoutRow(l) },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(v.workouts) {
				return
			}
			obj.(*WorkoutRow).SetWorkout(&v.workouts[id], v.ui.settings.GetFTP())
		},
	)
	v.list.OnSelected = func(id widget.ListItemID) {
		v.list.UnselectAll()
		if id < 0 || id >= len(v.workouts) {
			return
		}
		v.ui.showDetail(v.workouts[id])
	}

	v.emptyLabel = widget.NewLabel(l.GetText(KeyNoWorkouts))
	v.emptyLabel.Alignment = fyne.TextAlignCenter
	v.emptyLabel.Hide()

	v.container = container.NewBorder(
		container.NewVBox(filters, widget.NewSeparator()),
		nil, nil, nil,
		container.NewStack(v.list, v.emptyLabel),
	)
}

// onRangeChanged keeps lower <= upper by holding the moved slider at the other one
func (v *WorkoutListView) onRangeChanged(lower, upper int, movedLower bool) {
	if v.syncing {
		return
	}
	v.lower, v.upper = workout.ClampRange(lower, upper, movedLower)

	v.syncing = true
	if movedLower {
		v.minSlider.SetValue(float64(v.lower))
	} else {
		v.maxSlider.SetValue(float64(v.upper))
	}
	v.syncing = false

	v.updateRangeLabels()
	v.apply()
}

func (v *WorkoutListView) updateRangeLabels() {
	v.minLabel.SetText(model.FormatDuration(v.lower))
	v.maxLabel.SetText(model.FormatDuration(v.upper))
}

// apply re-runs the query and refreshes the list
func (v *WorkoutListView) apply() {
	filter := workout.Filter{Min: v.lower, Max: v.upper, Order: v.order}
	if v.upper == 0 {
		filter.Min, filter.Max = 0, 0
	}
	v.workouts = v.ui.catalog.Query(filter)
	if v.list != nil {
		v.list.Refresh()
	}
	if v.emptyLabel != nil {
		if len(v.workouts) == 0 {
			v.emptyLabel.Show()
		} else {
			v.emptyLabel.Hide()
		}
	}
}

// sliderRange widens catalog bounds to whole minutes so the slider steps land on both ends
func sliderRange(lo, hi int) (int, int) {
	if hi <= 0 {
		return 0, 0
	}
	lower := lo / FilterSliderStep * FilterSliderStep
	upper := (hi + FilterSliderStep - 1) / FilterSliderStep * FilterSliderStep
	if upper == lower {
		upper += FilterSliderStep
	}
	return lower, upper
}
