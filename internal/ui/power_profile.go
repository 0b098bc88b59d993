package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/workout-viewer/internal/model"
	"github.com/ytget/workout-viewer/internal/workout"
)

// profileBar is one filled rectangle of a power profile chart
type profileBar struct {
	Pos   fyne.Position
	Size  fyne.Size
	Color color.NRGBA
}

// profileBars lays out a workout as bars: width proportional to duration, height to power.
// Ramps are approximated by RampSlices bars of interpolated height and colour.
func profileBars(steps []model.Step, ftp int, size fyne.Size) []profileBar {
	total := 0
	highest := MinProfileScale
	for _, step := range steps {
		total += step.Duration
		highest = max(highest, step.StartPower, step.EndPower)
	}
	if total <= 0 || size.Width <= 0 || size.Height <= 0 {
		return nil
	}

	pxPerSecond := size.Width / float32(total)
	pxPerPercent := size.Height / float32(highest)

	bars := make([]profileBar, 0, len(steps))
	x := float32(0)
	for _, step := range steps {
		width := float32(step.Duration) * pxPerSecond
		slices := 1
		if step.IsRamp() {
			slices = RampSlices
		}
		sliceWidth := width / float32(slices)

		for i := 0; i < slices; i++ {
			percent := float32(step.StartPower)
			if slices > 1 {
				t := (float32(i) + 0.5) / float32(slices)
				percent = float32(step.StartPower) + (float32(step.EndPower)-float32(step.StartPower))*t
			}
			height := percent * pxPerPercent
			barWidth := sliceWidth
			if i == slices-1 && barWidth > ProfileBarGap*2 {
				barWidth -= ProfileBarGap
			}
			bars = append(bars, profileBar{
				Pos:   fyne.NewPos(x+float32(i)*sliceWidth, size.Height-height),
				Size:  fyne.NewSize(barWidth, height),
				Color: workout.PowerColor(workout.Watts(int(percent+0.5), ftp), ftp),
			})
		}
		x += width
	}
	return bars
}

// PowerProfile draws a workout's power over time
type PowerProfile struct {
	widget.BaseWidget

	steps     []model.Step
	ftp       int
	minHeight float32
}

// NewPowerProfile creates a power profile chart
func NewPowerProfile(minHeight float32) *PowerProfile {
	p := &PowerProfile{minHeight: minHeight}
	p.ExtendBaseWidget(p)
	return p
}

// SetWorkout replaces the displayed steps
func (p *PowerProfile) SetWorkout(steps []model.Step, ftp int) {
	p.steps = append([]model.Step(nil), steps...)
	p.ftp = ftp
	p.Refresh()
}

// CreateRenderer creates the widget renderer
func (p *PowerProfile) CreateRenderer() fyne.WidgetRenderer {
	return &powerProfileRenderer{profile: p}
}

// powerProfileRenderer rebuilds its rectangles on every layout
type powerProfileRenderer struct {
	profile *PowerProfile
	objects []fyne.CanvasObject
	size    fyne.Size
}

// Layout arranges the bars
func (r *powerProfileRenderer) Layout(size fyne.Size) {
	r.size = size
	r.rebuild()
}

// MinSize returns the minimum size
func (r *powerProfileRenderer) MinSize() fyne.Size {
	return fyne.NewSize(RowProfileMinHeight, r.profile.minHeight)
}

// Refresh redraws the bars for the current steps
func (r *powerProfileRenderer) Refresh() {
	r.rebuild()
	for _, obj := range r.objects {
		obj.Refresh()
	}
}

// Objects returns the bars
func (r *powerProfileRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up the renderer
func (r *powerProfileRenderer) Destroy() {}

func (r *powerProfileRenderer) rebuild() {
	bars := profileBars(r.profile.steps, r.profile.ftp, r.size)
	objects := make([]fyne.CanvasObject, 0, len(bars))
	for _, bar := range bars {
		rect := canvas.NewRectangle(bar.Color)
		rect.Move(bar.Pos)
		rect.Resize(bar.Size)
		objects = append(objects, rect)
	}
	r.objects = objects
}
