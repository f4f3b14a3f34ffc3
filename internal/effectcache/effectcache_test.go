package effectcache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func buildCache(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeConfig(t, filepath.Join(root, "100", "h1"), `{"name": "Zoom In", "effect": {"Link": [{"type": "in_animation"}, {"type": "other"}]}}`)
	writeConfig(t, filepath.Join(root, "100", "h2_tmp"), `{"name": "Partial"}`)
	writeConfig(t, filepath.Join(root, "200", "h1"), `{"name": "", "effect": {}}`)
	writeConfig(t, filepath.Join(root, "300", "h1"), `not json`)
	writeConfig(t, filepath.Join(root, "350", "h1"), `["array"]`)
	if err := os.WriteFile(filepath.Join(root, "400"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "500", "h1"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, filepath.Join(root, "600", "h9"), `{"name": "Fade", "effect": {"Link": [{"type": "in_animation"}]}}`)
	return root
}

func TestScan(t *testing.T) {
	root := buildCache(t)

	entries, err := Scan(root, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := []Entry{
		{ID: "100", Hash: "h1", Name: "Zoom In", Type: "in_animation", Path: filepath.Join(root, "100", "h1")},
		{ID: "200", Hash: "h1", Name: "", Type: UnknownType, Path: filepath.Join(root, "200", "h1")},
		{ID: "600", Hash: "h9", Name: "Fade", Type: "in_animation", Path: filepath.Join(root, "600", "h9")},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"), nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGroupByType(t *testing.T) {
	groups := GroupByType([]Entry{
		{ID: "1", Type: "b"},
		{ID: "2", Type: "a"},
		{ID: "3", Type: "b"},
	})
	if len(groups) != 2 {
		t.Fatalf("got %d groups", len(groups))
	}
	if groups[0].Type != "b" || len(groups[0].Entries) != 2 || groups[0].Entries[1].ID != "3" {
		t.Fatalf("first group = %+v", groups[0])
	}
	if groups[1].Type != "a" || len(groups[1].Entries) != 1 {
		t.Fatalf("second group = %+v", groups[1])
	}
	if GroupByType(nil) != nil {
		t.Fatal("expected no groups for no entries")
	}
}

func TestSaveReplacesListing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "effect_catalog.json")
	if err := Save(path, []Entry{{ID: "1", Hash: "h", Name: "A"}, {ID: "2", Hash: "h", Name: "B"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Save(path, []Entry{{ID: "3", Hash: "h", Name: "C", Type: "t", Path: "/p"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "[\n  {\n    \"id\": \"3\",\n    \"hash\": \"h\",\n    \"name\": \"C\",\n    \"type\": \"t\",\n    \"path\": \"/p\"\n  }\n]\n"
	if string(data) != want {
		t.Fatalf("saved:\n%s\nwant:\n%s", data, want)
	}

	if err := Save(path, nil); err != nil {
		t.Fatalf("Save(nil): %v", err)
	}
	var decoded []Entry
	data, _ = os.ReadFile(path)
	if err := json.Unmarshal(data, &decoded); err != nil || decoded == nil || len(decoded) != 0 {
		t.Fatalf("empty listing = %q (err %v)", data, err)
	}
}
