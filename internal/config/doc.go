// Package config loads, normalizes, and validates draftscan configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts),
// reads TOML files, and honours the DRAFTSCAN_DATA_DIR environment override.
// The data directory defaults to the directory holding the draftscan
// executable: persisted stores live alongside the tool rather than in the
// caller's working directory, so repeated runs from anywhere accumulate into
// the same files.
//
// Always obtain store paths through this package so the alias map, the
// effect catalog and the run history resolve the same way in every command.
package config
