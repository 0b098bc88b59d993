package storage

// Package storage reads and writes recorded training files (GPX) in the SQLite
// database shared with the overlay.
