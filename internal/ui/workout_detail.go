package ui

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/workout-viewer/internal/launcher"
	"github.com/ytget/workout-viewer/internal/model"
	"github.com/ytget/workout-viewer/internal/workout"
)

// WorkoutDetailView shows one workout, rescales it and drives the overlay
type WorkoutDetailView struct {
	ui *RootUI

	base     model.Workout
	scaled   *model.Workout
	adjuster workout.Adjuster
	canScale bool
	syncing  bool

	profile       *PowerProfile
	stepList      *widget.List
	originalLabel *widget.Label
	currentLabel  *widget.Label
	scaleLabel    *widget.Label
	slider        *widget.Slider
	minutesEntry  *widget.Entry
	startBtn      *widget.Button
	stopBtn       *widget.Button
	status        *StatusBox
	container     fyne.CanvasObject
}

// NewWorkoutDetailView opens a workout at its original duration
func NewWorkoutDetailView(ui *RootUI, w model.Workout) *WorkoutDetailView {
	v := &WorkoutDetailView{ui: ui, base: w}
	v.scaled = workout.Rescale(&v.base, float64(v.base.BaseDuration()))
	v.adjuster, v.canScale = workout.AdjusterBounds(v.base.BaseDuration(), v.base.BaseDuration(), len(v.base.Steps))
	v.createUI()
	v.refreshScaled()

	if run, ok := ui.launcher.Current(); ok {
		v.updateButtons(run.Status)
	} else {
		v.updateButtons(model.ProcessStatusIdle)
	}
	return v
}

// Container returns the page content
func (v *WorkoutDetailView) Container() fyne.CanvasObject {
	return v.container
}

// Scaled returns the workout at the selected duration
func (v *WorkoutDetailView) Scaled() *model.Workout {
	return v.scaled
}

func (v *WorkoutDetailView) createUI() {
	l := v.ui.localization

	backBtn := widget.NewButton(IconBack+" "+l.GetText(KeyBack), v.ui.showList)
	backBtn.Importance = widget.LowImportance

	title := widget.NewLabel(v.base.GetDisplayName())
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Truncation = fyne.TextTruncateEllipsis

	v.profile = NewPowerProfile(ProfileMinHeight)

	v.originalLabel = widget.NewLabel(l.GetText(KeyOriginalDuration) + ": " + model.FormatDuration(v.base.BaseDuration()))
	v.currentLabel = widget.NewLabel("")
	v.scaleLabel = widget.NewLabel("")
	v.scaleLabel.Importance = widget.LowImportance

	v.slider = widget.NewSlider(0, 1)
	v.slider.OnChanged = func(value float64) {
		if v.syncing {
			return
		}
		v.setTarget(value, false)
	}
	v.minutesEntry = widget.NewEntry()
	v.minutesEntry.OnSubmitted = v.onMinutesSubmitted
	resetBtn := widget.NewButton(IconReset+" "+l.GetText(KeyReset), func() {
		v.setTarget(float64(v.base.BaseDuration()), true)
	})
	v.syncSlider()

	hint := widget.NewLabel(l.GetText(KeyScaleHint))
	hint.Wrapping = fyne.TextWrapWord
	hint.Importance = widget.LowImportance

	adjuster := container.NewVBox(
		widget.NewLabelWithStyle(l.GetText(KeyAdjustDuration), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		v.slider,
		container.NewBorder(nil, nil, widget.NewLabel(l.GetText(KeyMinutes)), resetBtn, v.minutesEntry),
		hint,
	)
	if !v.canScale {
		adjuster.Hide()
	}

	v.stepList = widget.NewList(
		func() int { return len(v.scaled.Steps) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.TextStyle = fyne.TextStyle{Monospace: true}
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(v.scaled.Steps) {
				return
			}
			obj.(*widget.Label).SetText(formatStep(id, v.scaled.Steps[id], v.ui.settings.GetFTP()))
		},
	)

	v.startBtn = widget.NewButton(IconPlay+" "+l.GetText(KeyStartOverlay), v.startOverlay)
	v.startBtn.Importance = widget.HighImportance
	v.stopBtn = widget.NewButton(IconStop+" "+l.GetText(KeyStopOverlay), v.stopOverlay)

	v.status = NewStatusBox()

	header := container.NewVBox(
		container.NewBorder(nil, nil, backBtn, nil, title),
		v.profile,
		container.NewHBox(v.originalLabel, v.currentLabel, v.scaleLabel),
		adjuster,
		container.NewHBox(v.startBtn, v.stopBtn),
		widget.NewSeparator(),
	)
	statusPanel := container.NewBorder(
		widget.NewLabelWithStyle(l.GetText(KeyStatus), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		v.status.Container(),
	)

	v.container = container.NewBorder(header, nil, nil, nil,
		container.NewVSplit(v.stepList, statusPanel),
	)
}

// setTarget rescales to the given duration. Typed values move the slider range with them.
func (v *WorkoutDetailView) setTarget(seconds float64, rebound bool) {
	v.scaled = workout.Rescale(&v.base, seconds)
	if rebound {
		if adj, ok := workout.AdjusterBounds(v.base.BaseDuration(), v.scaled.Duration(), len(v.base.Steps)); ok {
			v.adjuster = adj
		}
		v.syncSlider()
	}
	v.refreshScaled()
}

// syncSlider pushes the adjuster range to the slider without rescaling again
func (v *WorkoutDetailView) syncSlider() {
	v.syncing = true
	defer func() { v.syncing = false }()

	v.slider.Min = float64(v.adjuster.Min)
	v.slider.Max = float64(v.adjuster.Max)
	v.slider.Step = float64(v.adjuster.Step)
	v.slider.SetValue(float64(v.adjuster.Value))
	v.slider.Refresh()
}

func (v *WorkoutDetailView) onMinutesSubmitted(text string) {
	minutes, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(text, ",", ".")), 64)
	if err != nil {
		v.status.Append(v.ui.localization.GetText(KeyInvalidNumber))
		v.minutesEntry.SetText(formatMinutes(v.scaled.Duration()))
		return
	}
	target, ok := v.adjuster.MinutesToTarget(minutes)
	if !ok {
		v.status.Append(v.ui.localization.GetText(KeyInvalidNumber))
		return
	}
	v.setTarget(target, true)
}

// refreshScaled updates every widget that shows the scaled workout
func (v *WorkoutDetailView) refreshScaled() {
	l := v.ui.localization
	current := v.scaled.Duration()

	v.currentLabel.SetText(l.GetText(KeyCurrentDuration) + ": " + model.FormatDuration(current))
	if adj, ok := workout.AdjusterBounds(v.base.BaseDuration(), current, len(v.base.Steps)); ok {
		v.scaleLabel.SetText(fmt.Sprintf(l.GetText(KeyOfOriginal), adj.ScalePercent))
	} else {
		v.scaleLabel.SetText("")
	}
	v.minutesEntry.SetText(formatMinutes(current))
	v.profile.SetWorkout(v.scaled.Steps, v.ui.settings.GetFTP())
	v.stepList.Refresh()
}

// startOverlay launches the overlay with the scaled workout
func (v *WorkoutDetailView) startOverlay() {
	args, err := workout.OverlayArgs(v.scaled, v.ui.settings.GetFTP())
	if err != nil {
		v.status.Append(err.Error())
		return
	}
	if _, err := v.ui.launcher.Start(launcher.AppOverlay, args...); err != nil {
		log.Printf("overlay start failed: %v", err)
		if errors.Is(err, launcher.ErrAlreadyRunning) {
			v.status.Append(err.Error())
		}
	}
}

func (v *WorkoutDetailView) stopOverlay() {
	if err := v.ui.launcher.Stop(launcher.AppOverlay); err != nil {
		log.Printf("overlay stop: %v", err)
	}
}

// HandleEvent shows launcher output and tracks the overlay state
func (v *WorkoutDetailView) HandleEvent(event launcher.Event) {
	switch event.Kind {
	case launcher.EventStatus, launcher.EventStdout, launcher.EventStderr:
		v.status.Append(event.Message)
	}
	if event.Run != nil {
		v.updateButtons(event.Run.Status)
	}
}

func (v *WorkoutDetailView) updateButtons(status model.ProcessStatus) {
	if status.IsActive() {
		v.startBtn.Disable()
		v.stopBtn.Enable()
		return
	}
	v.startBtn.Enable()
	v.stopBtn.Disable()
}

// formatStep renders one step line: "1. 00:10:00 · 55% → 75% · 138-188 W"
func formatStep(index int, step model.Step, ftp int) string {
	power := fmt.Sprintf(PercentFormat, step.StartPower)
	watts := fmt.Sprintf(WattsFormat, workout.Watts(step.StartPower, ftp))
	if step.IsRamp() {
		power += " → " + fmt.Sprintf(PercentFormat, step.EndPower)
		watts = fmt.Sprintf("%d-"+WattsFormat, workout.Watts(step.StartPower, ftp), workout.Watts(step.EndPower, ftp))
	}
	return fmt.Sprintf("%d. %s%s%s%s%s",
		index+1,
		model.FormatDuration(step.Duration),
		MiddleDotSeparator, power,
		MiddleDotSeparator, watts,
	)
}

// formatMinutes shows a duration in minutes with at most two decimals
func formatMinutes(seconds int) string {
	return strconv.FormatFloat(math.Round(float64(seconds)/60*100)/100, 'f', -1, 64)
}
