package workout

// Package workout holds the arithmetic over workout records: proportional
// duration rescaling, catalog loading, filtering and sorting, the overlay
// argument encoding, and power conversions relative to FTP. Everything here is
// pure and safe for concurrent use.
