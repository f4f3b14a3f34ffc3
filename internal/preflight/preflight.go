package preflight

import (
	"path/filepath"

	"draftscan/internal/alias"
	"draftscan/internal/config"
	"draftscan/internal/effects"
	"draftscan/internal/store"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
		CheckStoreFile("Alias map", cfg.AliasPath(), func(path string) store.Status {
			return alias.Open(path, nil).Status()
		}),
		CheckStoreFile("Effect catalog", cfg.CatalogPath(""), func(path string) store.Status {
			return effects.Open(path, nil).Status()
		}),
		CheckStoreFile("Cache listing", cfg.CacheCatalogPath(""), nil),
	}

	if cfg.History.Enabled {
		results = append(results, CheckDirectoryAccess("Run history", filepath.Dir(cfg.HistoryPath())))
	}

	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
