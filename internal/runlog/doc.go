// Package runlog records extraction runs in a SQLite database.
//
// Each run stores which store it merged into, which draft it scanned and the
// summary counters it reported. The log is optional and append-only; it never
// feeds back into extraction.
package runlog
