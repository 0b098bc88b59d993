package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// StatusBox shows timestamped launcher messages, newest last
type StatusBox struct {
	lines []string
	list  *widget.List
	now   func() time.Time
}

// NewStatusBox creates an empty status box
func NewStatusBox() *StatusBox {
	sb := &StatusBox{now: time.Now}
	sb.list = widget.NewList(
		func() int { return len(sb.lines) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(sb.lines) {
				obj.(*widget.Label).SetText(sb.lines[id])
			}
		},
	)
	return sb
}

// Append adds a message. Must be called on the UI thread.
func (sb *StatusBox) Append(message string) {
	if message == "" {
		return
	}
	sb.lines = appendCapped(sb.lines, "["+sb.now().Format(StatusTimeFormat)+"] "+message, MaxStatusLines)
	sb.list.Refresh()
	sb.list.ScrollToBottom()
}

// Clear removes all messages
func (sb *StatusBox) Clear() {
	sb.lines = nil
	sb.list.Refresh()
}

// Lines returns the current messages
func (sb *StatusBox) Lines() []string {
	return append([]string(nil), sb.lines...)
}

// Container returns the widget to embed
func (sb *StatusBox) Container() fyne.CanvasObject {
	return sb.list
}

// appendCapped appends line and drops the oldest lines beyond limit
func appendCapped(lines []string, line string, limit int) []string {
	lines = append(lines, line)
	if len(lines) > limit {
		lines = append([]string(nil), lines[len(lines)-limit:]...)
	}
	return lines
}
