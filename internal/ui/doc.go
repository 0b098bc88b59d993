package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the workout catalog, the overlay launcher and the
// training store, and renders the workout list, workout details, the workout creator,
// recorded training sessions, and settings. All UI strings are localized via Localization.
