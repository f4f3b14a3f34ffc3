package runlog

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history", "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	first, err := s.Record(ctx, Run{
		Kind:      KindAlias,
		DraftPath: "/drafts/a/draft_content.json",
		StorePath: "/tool/effect_alias.json",
		Added:     3,
		Unchanged: 1,
		Total:     4,
		StartedAt: base,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected generated run id")
	}

	if _, err := s.Record(ctx, Run{ID: "fixed", Kind: KindEffects, Added: 2, Total: 10, StartedAt: base.Add(time.Minute)}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	runs, err := s.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != "fixed" || runs[0].Kind != KindEffects {
		t.Fatalf("newest run = %+v", runs[0])
	}
	if runs[1].ID != first.ID || runs[1].Added != 3 || runs[1].Unchanged != 1 {
		t.Fatalf("oldest run = %+v", runs[1])
	}
	if !runs[1].StartedAt.Equal(base) {
		t.Fatalf("started_at = %s, want %s", runs[1].StartedAt, base)
	}

	limited, err := s.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "fixed" {
		t.Fatalf("limited = %+v", limited)
	}
}

func TestRecordRequiresKind(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Record(context.Background(), Run{}); err == nil {
		t.Fatal("expected error for missing kind")
	}
}

func TestReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.Record(context.Background(), Run{Kind: KindAlias}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	runs, err := reopened.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run after reopen, got %d", len(runs))
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
