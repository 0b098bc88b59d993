package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/workout-viewer/internal/model"
)

// New steps start as five minutes at 60% FTP
var defaultStep = model.Step{Duration: 300, StartPower: 60, EndPower: 60}

// CreatorView lets the user compose a workout from steps
type CreatorView struct {
	ui *RootUI

	steps []model.Step

	nameEntry  *widget.Entry
	ftpEntry   *widget.Entry
	stepsBox   *fyne.Container
	profile    *PowerProfile
	totalLabel *widget.Label
	errorLabel *widget.Label
	container  fyne.CanvasObject
}

// NewCreatorView creates the creator page with a single default step
func NewCreatorView(ui *RootUI) *CreatorView {
	v := &CreatorView{
		ui:    ui,
		steps: []model.Step{defaultStep},
	}
	v.createUI()
	v.rebuildSteps()
	return v
}

// Container returns the page content
func (v *CreatorView) Container() fyne.CanvasObject {
	return v.container
}

func (v *CreatorView) createUI() {
	l := v.ui.localization

	v.nameEntry = widget.NewEntry()
	v.nameEntry.SetPlaceHolder(l.GetText(KeyWorkoutName))

	v.ftpEntry = widget.NewEntry()
	v.ftpEntry.SetText(strconv.Itoa(v.ui.settings.GetFTP()))
	v.ftpEntry.OnChanged = func(string) { v.updatePreview() }

	v.stepsBox = container.NewVBox()
	v.profile = NewPowerProfile(ProfileMinHeight)
	v.totalLabel = widget.NewLabel("")

	v.errorLabel = widget.NewLabel("")
	v.errorLabel.Importance = widget.DangerImportance
	v.errorLabel.Wrapping = fyne.TextWrapWord
	v.errorLabel.Hide()

	addBtn := widget.NewButton(IconAdd+" "+l.GetText(KeyAddStep), func() {
		v.steps = append(v.steps, defaultStep)
		v.rebuildSteps()
	})
	saveBtn := widget.NewButton(l.GetText(KeySaveWorkout), v.save)
	saveBtn.Importance = widget.HighImportance

	columns := container.NewGridWithColumns(4,
		widget.NewLabel(""),
		widget.NewLabel(l.GetText(KeyDurationSeconds)),
		widget.NewLabel(l.GetText(KeyStartPower)),
		widget.NewLabel(l.GetText(KeyEndPower)),
	)

	form := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem(l.GetText(KeyWorkoutName), v.nameEntry),
			widget.NewFormItem(l.GetText(KeyFTP), v.ftpEntry),
		),
		v.profile,
		v.totalLabel,
		widget.NewSeparator(),
		columns,
		v.stepsBox,
		container.NewHBox(addBtn, saveBtn),
		v.errorLabel,
	)
	v.container = container.NewVScroll(form)
}

// rebuildSteps recreates the step rows after steps were added, moved or removed
func (v *CreatorView) rebuildSteps() {
	rows := make([]fyne.CanvasObject, 0, len(v.steps))
	for i := range v.steps {
		rows = append(rows, v.stepRow(i))
	}
	v.stepsBox.Objects = rows
	v.stepsBox.Refresh()
	v.updatePreview()
}

func (v *CreatorView) stepRow(index int) fyne.CanvasObject {
	step := v.steps[index]

	durationEntry := v.intEntry(step.Duration, func(value int) { v.steps[index].Duration = value })
	startEntry := v.intEntry(step.StartPower, func(value int) { v.steps[index].StartPower = value })
	endEntry := v.intEntry(step.EndPower, func(value int) { v.steps[index].EndPower = value })

	upBtn := widget.NewButton(IconUp, func() {
		v.steps = moveStep(v.steps, index, index-1)
		v.rebuildSteps()
	})
	downBtn := widget.NewButton(IconDown, func() {
		v.steps = moveStep(v.steps, index, index+1)
		v.rebuildSteps()
	})
	removeBtn := widget.NewButton(IconDelete, func() {
		v.steps = removeStep(v.steps, index)
		v.rebuildSteps()
	})
	if index == 0 {
		upBtn.Disable()
	}
	if index == len(v.steps)-1 {
		downBtn.Disable()
	}
	if len(v.steps) == 1 {
		removeBtn.Disable()
	}

	return container.NewBorder(nil, nil, nil,
		container.NewHBox(upBtn, downBtn, removeBtn),
		container.NewGridWithColumns(4,
			widget.NewLabel(fmt.Sprintf("%d.", index+1)),
			durationEntry, startEntry, endEntry,
		),
	)
}

// intEntry binds an entry to an integer field. Unparsable text leaves the field unchanged.
func (v *CreatorView) intEntry(value int, set func(int)) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(strconv.Itoa(value))
	entry.OnChanged = func(text string) {
		parsed, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return
		}
		set(parsed)
		v.updatePreview()
	}
	return entry
}

// currentFTP returns the typed FTP, or the stored one while the entry is not a number
func (v *CreatorView) currentFTP() int {
	if ftp, err := strconv.Atoi(strings.TrimSpace(v.ftpEntry.Text)); err == nil && ftp > 0 {
		return ftp
	}
	return v.ui.settings.GetFTP()
}

func (v *CreatorView) updatePreview() {
	steps := classifySteps(v.steps)
	v.profile.SetWorkout(steps, v.currentFTP())
	total := 0
	for _, step := range steps {
		total += max(step.Duration, 0)
	}
	v.totalLabel.SetText(v.ui.localization.GetText(KeyCurrentDuration) + ": " + model.FormatDuration(total))
}

// save adds the workout to the library and opens it
func (v *CreatorView) save() {
	l := v.ui.localization

	ftp, err := strconv.Atoi(strings.TrimSpace(v.ftpEntry.Text))
	if err != nil || ftp <= 0 {
		v.showError(l.GetText(KeyFTP) + ": " + l.GetText(KeyInvalidNumber))
		return
	}

	w := model.Workout{
		Name:  v.nameEntry.Text,
		Steps: classifySteps(v.steps),
	}
	added, err := v.ui.addCustomWorkout(w)
	if err != nil {
		v.showError(err.Error())
		return
	}

	v.ui.settings.SetFTP(ftp)
	v.errorLabel.Hide()
	v.ui.showNotification(l.GetText(KeyWorkoutSaved) + ": " + added.Name)
	v.ui.showDetail(added)
}

func (v *CreatorView) showError(message string) {
	v.errorLabel.SetText(message)
	v.errorLabel.Show()
}

// moveStep returns steps with the step at from moved to to. Out of range moves are ignored.
func moveStep(steps []model.Step, from, to int) []model.Step {
	if from < 0 || from >= len(steps) || to < 0 || to >= len(steps) || from == to {
		return steps
	}
	out := append([]model.Step(nil), steps...)
	step := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]model.Step{step}, out[to:]...)...)
	return out
}

// removeStep returns steps without the step at index. The last step is never removed.
func removeStep(steps []model.Step, index int) []model.Step {
	if index < 0 || index >= len(steps) || len(steps) == 1 {
		return steps
	}
	out := make([]model.Step, 0, len(steps)-1)
	out = append(out, steps[:index]...)
	return append(out, steps[index+1:]...)
}

// classifySteps copies steps and marks each as steady or ramp
func classifySteps(steps []model.Step) []model.Step {
	out := make([]model.Step, len(steps))
	for i, step := range steps {
		step.Type = model.StepTypeSteady
		if step.StartPower != step.EndPower {
			step.Type = model.StepTypeRamp
		}
		out[i] = step
	}
	return out
}
