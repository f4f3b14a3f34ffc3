// Package store holds the persistence primitives shared by the alias map and
// the effect catalog.
//
// Load reads a persisted snapshot and classifies it as valid, absent or
// corrupt. Callers treat absent and corrupt snapshots as empty: persisted
// stores are regenerable from past drafts, so a damaged file never aborts a
// run. WriteJSON persists a value as indented UTF-8 JSON through an atomic
// rename, and Acquire takes an advisory lock that serializes concurrent runs
// against the same store file.
package store
