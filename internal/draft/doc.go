// Package draft loads the editor project document that extraction runs scan.
//
// Failures here are fatal for a run: a missing file reports ErrNotFound and
// a document that is not valid JSON reports a *ParseError. Both name the
// offending path and are returned before any persisted store is touched.
package draft
