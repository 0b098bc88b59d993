package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconStop     = "■"
	IconBack     = "←"
	IconFolder   = "📁"
	IconRefresh  = "⟳"
	IconAdd      = "+"
	IconUp       = "↑"
	IconDown     = "↓"
	IconClose    = "×"
	IconDelete   = "🗑️"
	IconReset    = "↺"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	StatusTimeFormat   = "15:04:05"
	CreatedAtFormat    = "2006-01-02 15:04"
	WattsFormat        = "%d W"
	PercentFormat      = "%d%%"
)

// Layout sizing
const (
	ProfileMinHeight     float32 = 140
	RowProfileMinHeight  float32 = 28
	RowMinWidth          float32 = 320
	SettingsDialogWidth  float32 = 560
	SettingsDialogHeight float32 = 480
	ToastWidth           float32 = 300
	ToastHeight          float32 = 90
	ToastMargin          float32 = 20
)

// Power profile rendering
const (
	// RampSlices is how many bars approximate one ramp step
	RampSlices = 12
	// MinProfileScale keeps easy workouts from filling the whole chart
	MinProfileScale = 120
	// ProfileBarGap separates neighbouring steps, in pixels
	ProfileBarGap float32 = 1
)

// Duration filter
const (
	FilterSliderStep = 60
)

// Status box
const (
	MaxStatusLines = 200
)

// Delays
const (
	ToastAutoHide = 4 * time.Second
)
