package model

// Package model defines domain data structures used across the app: workouts
// and their steps, training files from the ride database, and the lifecycle of
// the companion overlay process. Structures are designed for direct binding in
// the UI and explicit state transitions.
