// Package preflight provides readiness checks for the filesystem paths
// draftscan writes to.
//
// The CLI "draftscan config validate" command runs RunAll and prints each
// result. Stores that do not exist yet pass as long as the directory that
// will hold them is writable; history checks are skipped when the run log is
// disabled.
package preflight
