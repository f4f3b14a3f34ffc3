// Package main hosts the draftscan CLI entrypoint and command graph.
//
// The Cobra command tree wires draft scans, store lookups, run history and
// configuration scaffolding to the internal packages. Configuration and
// logger setup are resolved once in the command context so subcommands only
// deal with flags and output.
package main
