package model

import (
	"strings"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{-5, "00:00:00"},
		{0, "00:00:00"},
		{59, "00:00:59"},
		{90, "00:01:30"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{36000, "10:00:00"},
	}

	for _, test := range tests {
		if result := FormatDuration(test.seconds); result != test.expected {
			t.Errorf("FormatDuration(%d) = %s, expected %s", test.seconds, result, test.expected)
		}
	}
}

func TestProcessRun_GetUptimeString(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	run := &ProcessRun{}
	if got := run.GetUptimeString(start); got != DashPlaceholder {
		t.Errorf("GetUptimeString() without start = %s, expected %s", got, DashPlaceholder)
	}

	run.StartedAt = start
	if got := run.GetUptimeString(start.Add(95 * time.Second)); got != "00:01:35" {
		t.Errorf("GetUptimeString() while running = %s, expected 00:01:35", got)
	}

	run.FinishedAt = start.Add(time.Hour)
	if got := run.GetUptimeString(start.Add(3 * time.Hour)); got != "01:00:00" {
		t.Errorf("GetUptimeString() after exit = %s, expected 01:00:00", got)
	}
}

func TestProcessRun_Describe(t *testing.T) {
	tests := []struct {
		run      ProcessRun
		contains string
	}{
		{ProcessRun{AppName: "overlay", Status: ProcessStatusRunning, PID: 42}, "PID: 42"},
		{ProcessRun{AppName: "overlay", Status: ProcessStatusExited, ExitCode: 3}, "code 3"},
		{ProcessRun{AppName: "overlay", Status: ProcessStatusExited, LastError: "not found"}, "not found"},
		{ProcessRun{AppName: "overlay", Status: ProcessStatusStarting}, "Starting"},
	}

	for _, test := range tests {
		if result := test.run.Describe(); !strings.Contains(result, test.contains) {
			t.Errorf("Describe() = %q, expected it to contain %q", result, test.contains)
		}
	}
}
