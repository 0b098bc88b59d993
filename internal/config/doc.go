package config

// Package config stores user settings in Fyne preferences and applies
// WORKOUT_VIEWER_* environment overrides on top of them.
