package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/workout-viewer/internal/model"
)

// WorkoutRow is a compact library entry: name, duration and a small power profile
type WorkoutRow struct {
	widget.BaseWidget

	localization *Localization

	nameLabel     *widget.Label
	durationLabel *widget.Label
	profile       *PowerProfile
}

// NewWorkoutRow creates an empty row; the list fills it through SetWorkout
func NewWorkoutRow(localization *Localization) *WorkoutRow {
	row := &WorkoutRow{localization: localization}
	row.ExtendBaseWidget(row)
	row.createUI()
	return row
}

func (r *WorkoutRow) createUI() {
	r.nameLabel = widget.NewLabel("")
	r.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	r.nameLabel.Truncation = fyne.TextTruncateEllipsis

	r.durationLabel = widget.NewLabel("")
	r.durationLabel.Alignment = fyne.TextAlignTrailing
	r.durationLabel.TextStyle = fyne.TextStyle{Monospace: true}

	r.profile = NewPowerProfile(RowProfileMinHeight)
}

// SetWorkout shows a workout in the row
func (r *WorkoutRow) SetWorkout(w *model.Workout, ftp int) {
	if w == nil {
		r.nameLabel.SetText(model.DashPlaceholder)
		r.durationLabel.SetText("")
		r.profile.SetWorkout(nil, ftp)
		return
	}
	r.nameLabel.SetText(w.GetDisplayName())
	r.durationLabel.SetText(workoutSummary(w, r.localization))
	r.profile.SetWorkout(w.Steps, ftp)
}

// workoutSummary formats "hh:mm:ss · N steps"
func workoutSummary(w *model.Workout, localization *Localization) string {
	return fmt.Sprintf("%s%s%d %s",
		model.FormatDuration(w.Duration()),
		MiddleDotSeparator,
		len(w.Steps),
		strings.ToLower(localization.GetText(KeySteps)),
	)
}

// CreateRenderer creates the widget renderer
func (r *WorkoutRow) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, nil, r.durationLabel, r.nameLabel)
	return widget.NewSimpleRenderer(container.NewVBox(header, r.profile))
}

// MinSize keeps rows readable in narrow windows
func (r *WorkoutRow) MinSize() fyne.Size {
	size := r.BaseWidget.MinSize()
	return fyne.NewSize(max(size.Width, RowMinWidth), size.Height)
}
