package testsupport

import (
	"testing"

	"draftscan/internal/config"
	"draftscan/internal/runlog"
)

// MustOpenHistory opens the configured run log and registers cleanup.
func MustOpenHistory(t testing.TB, cfg *config.Config) *runlog.Store {
	t.Helper()

	store, err := runlog.Open(cfg.HistoryPath())
	if err != nil {
		t.Fatalf("runlog.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
