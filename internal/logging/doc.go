// Package logging assembles the structured slog loggers used by draftscan.
//
// It owns the console and JSON handlers, level parsing and output routing,
// plus attribute helpers and standard field keys so every component emits
// log lines with the same shape. CLI loggers write to stderr; stdout is
// reserved for command output. NewNop provides a silent logger for tests
// and for wiring code that has no logger to hand.
package logging
