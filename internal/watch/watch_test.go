package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestFileRunsCallbackOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "draft_content.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 8)
	var failures atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, 20*time.Millisecond, nil, func(context.Context) error {
			calls <- struct{}{}
			if failures.Add(1) == 1 {
				return errors.New("first run fails")
			}
			return nil
		})
	}()

	// Writes to other files in the directory are ignored. Keep touching the
	// target until the watcher (started asynchronously) reports it.
	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	deadline := time.After(5 * time.Second)
	for seen := 0; seen < 2; {
		if err := os.WriteFile(path, []byte(`{"materials": {}}`), 0o644); err != nil {
			t.Fatal(err)
		}
		select {
		case <-calls:
			seen++
		case <-time.After(200 * time.Millisecond):
		case <-deadline:
			t.Fatalf("callback ran %d times before deadline, want 2", seen)
		}
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("File returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("File did not return after cancel")
	}
}

func TestFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "draft_content.json")
	err := File(context.Background(), path, 0, nil, func(context.Context) error { return nil })
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
