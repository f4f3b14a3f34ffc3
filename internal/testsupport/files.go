package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleDraft is a small draft holding two animations (one duplicated in a
// nested segment) and three video effects across two material blocks.
const SampleDraft = `{
  "id": "D1",
  "materials": {
    "material_animations": [
      {"id": "ma-1", "animations": [
        {"id": "7001", "name": "Fade In", "type": "in"},
        {"id": "", "resource_id": "abc", "name": "Pop"},
        {"id": "7003"}
      ]}
    ],
    "video_effects": [
      {"effect_id": "10", "name": "Glow", "path": "/fx/10", "category_id": "c1", "category_name": "Light"},
      {"resource_id": "2", "name": "Blur", "type": "filter"},
      {"name": "No Id"}
    ],
    "drafts": [
      {"draft": {"materials": {"video_effects": [
        {"id": "1", "name": "Shake"},
        {"effect_id": "10", "name": "Glow Again"}
      ]}}}
    ]
  },
  "tracks": [
    {"segments": [
      {"material_animations": [{"animations": [{"id": "7001", "name": "Fade In Copy"}]}]}
    ]}
  ]
}`

// WriteDraft writes content to dir/draft_content.json and returns the path.
func WriteDraft(t testing.TB, dir, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, "draft_content.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteEffectConfig writes root/id/hash/config.json, laid out like the
// editor's effect cache.
func WriteEffectConfig(t testing.TB, root, id, hash, content string) {
	t.Helper()

	WriteFile(t, filepath.Join(root, id, hash, "config.json"), content)
}
