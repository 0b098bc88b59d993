package platform

// Package platform contains OS integration: filesystem helpers, OS open/reveal,
// and naming of the per-platform overlay binaries.
