package launcher

// Package launcher starts and stops companion applications (the workout overlay)
// as child processes, one at a time, and reports their lifecycle and output as events.
