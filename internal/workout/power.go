package workout

import (
	"image/color"
	"math"

	"github.com/ytget/workout-viewer/internal/model"
)

// Watts converts a percent-of-FTP power into watts, rounding up
func Watts(percent, ftp int) int {
	if percent <= 0 || ftp <= 0 {
		return 0
	}
	return (percent*ftp + 99) / 100
}

// MaxPower returns the highest start or end power across all steps
func MaxPower(w *model.Workout) int {
	highest := 0
	for _, step := range w.Steps {
		highest = max(highest, step.StartPower, step.EndPower)
	}
	return highest
}

// PowerColor maps a wattage to a colour from green (easy) to red (at or above FTP)
func PowerColor(watts, ftp int) color.NRGBA {
	ratio := 1.0
	if ftp > 0 {
		ratio = math.Min(float64(max(watts, 0))/float64(ftp), 1)
	}
	return hslToNRGBA((1-ratio)*120, 1, 0.5)
}

// hslToNRGBA converts hue in degrees and saturation/lightness in [0,1]
func hslToNRGBA(h, s, l float64) color.NRGBA {
	c := (1 - math.Abs(2*l-1)) * s
	hp := math.Mod(h, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return color.NRGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 0xff,
	}
}
