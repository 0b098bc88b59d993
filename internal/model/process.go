package model

import (
	"fmt"
	"time"
)

// ProcessRun represents a single launch of a companion application
type ProcessRun struct {
	ID         string
	AppName    string
	Args       []string
	PID        int
	Status     ProcessStatus
	ExitCode   int       // -1 if the process was killed by a signal or never started
	LastError  string    // last error message if any
	StartedAt  time.Time // when the launch was requested
	FinishedAt time.Time // when the process exited
}

// GetUptimeString returns how long the process has been (or was) running as hh:mm:ss
func (pr *ProcessRun) GetUptimeString(now time.Time) string {
	if pr.StartedAt.IsZero() {
		return DashPlaceholder
	}
	end := now
	if !pr.FinishedAt.IsZero() {
		end = pr.FinishedAt
	}
	return FormatDuration(int(end.Sub(pr.StartedAt).Seconds()))
}

// Describe returns a one-line summary used in status boxes and logs
func (pr *ProcessRun) Describe() string {
	switch pr.Status {
	case ProcessStatusRunning, ProcessStatusStopping:
		return fmt.Sprintf("%s %s (PID: %d)", pr.AppName, pr.Status, pr.PID)
	case ProcessStatusExited:
		if pr.LastError != "" {
			return fmt.Sprintf("%s %s: %s", pr.AppName, pr.Status, pr.LastError)
		}
		return fmt.Sprintf("%s %s with code %d", pr.AppName, pr.Status, pr.ExitCode)
	default:
		return fmt.Sprintf("%s %s", pr.AppName, pr.Status)
	}
}
