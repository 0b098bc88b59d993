package model

import (
	"fmt"
	"math"
)

// DashPlaceholder is shown where a value is unknown
const DashPlaceholder = "—"

// FormatDuration formats seconds as hh:mm:ss. Negative or non-finite values render as zero.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		return "00:00:00"
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// FormatSeconds is FormatDuration for fractional seconds
func FormatSeconds(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "00:00:00"
	}
	return FormatDuration(int(math.Floor(seconds)))
}
