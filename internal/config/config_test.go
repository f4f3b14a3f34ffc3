package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"draftscan/internal/config"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv(config.DataDirEnv, "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "draftscan", "config.toml"); resolved != want {
		t.Fatalf("resolved = %q, want %q", resolved, want)
	}
	if cfg.Paths.DataDir != config.ToolDir() {
		t.Fatalf("data dir = %q, want tool dir %q", cfg.Paths.DataDir, config.ToolDir())
	}
	if got := cfg.AliasPath(); got != filepath.Join(cfg.Paths.DataDir, "effect_alias.json") {
		t.Fatalf("alias path = %q", got)
	}
	if !cfg.Store.Lock {
		t.Fatal("expected store lock enabled by default")
	}
	if cfg.History.Enabled {
		t.Fatal("expected history disabled by default")
	}
	if cfg.WatchDebounce().Milliseconds() != 500 {
		t.Fatalf("watch debounce = %s", cfg.WatchDebounce())
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	base := t.TempDir()
	t.Setenv("HOME", base)
	dataDir := filepath.Join(base, "data")
	t.Setenv(config.DataDirEnv, dataDir)

	cfgPath := filepath.Join(base, "draftscan.toml")
	fileCfg := config.Default()
	fileCfg.Paths.DataDir = filepath.Join(base, "ignored")
	fileCfg.Paths.CatalogFile = "catalog.json"
	fileCfg.History.Enabled = true
	fileCfg.Logging.Level = "DEBUG"
	data, err := toml.Marshal(fileCfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(cfgPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != cfgPath {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Paths.DataDir != dataDir {
		t.Fatalf("data dir = %q, want env override %q", cfg.Paths.DataDir, dataDir)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level = %q, want normalized debug", cfg.Logging.Level)
	}
	if got := cfg.CatalogPath(""); got != filepath.Join(dataDir, "catalog.json") {
		t.Fatalf("catalog path = %q", got)
	}
	if got := cfg.CacheCatalogPath(filepath.Join("sub", "fx.json")); got != filepath.Join(dataDir, "fx.json") {
		t.Fatalf("cache catalog path = %q", got)
	}
	if got := cfg.HistoryPath(); got != filepath.Join(dataDir, "draftscan_history.db") {
		t.Fatalf("history path = %q", got)
	}
}

func TestCatalogPathResolution(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(string(filepath.Separator), "opt", "draftscan")

	tests := []struct {
		out  string
		want string
	}{
		{"", filepath.Join(cfg.Paths.DataDir, "effect_video_catalog.json")},
		{"custom.json", filepath.Join(cfg.Paths.DataDir, "custom.json")},
		{filepath.Join("nested", "dir", "custom.json"), filepath.Join(cfg.Paths.DataDir, "custom.json")},
		{filepath.Join(string(filepath.Separator), "srv", "out.json"), filepath.Join(string(filepath.Separator), "srv", "out.json")},
	}
	for _, tt := range tests {
		if got := cfg.CatalogPath(tt.out); got != tt.want {
			t.Errorf("CatalogPath(%q) = %q, want %q", tt.out, got, tt.want)
		}
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	base := t.TempDir()
	t.Setenv("HOME", base)
	t.Setenv(config.DataDirEnv, filepath.Join(base, "data"))

	cases := map[string]string{
		"format":   "[logging]\nformat = \"xml\"\n",
		"level":    "[logging]\nlevel = \"loud\"\n",
		"debounce": "[watch]\ndebounce_ms = -1\n",
		"collide":  "[paths]\nalias_file = \"same.json\"\ncatalog_file = \"same.json\"\n",
		"cache":    "[paths]\ncache_catalog_file = \"effect_alias.json\"\n",
		"lockext":  "[paths]\ncache_catalog_file = \"x.lock\"\n",
		"unknown":  "[paths]\nbogus = 1\n",
		"syntax":   "[paths\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(base, name+".toml")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	base := t.TempDir()
	t.Setenv("HOME", base)
	t.Setenv(config.DataDirEnv, filepath.Join(base, "data"))

	path := filepath.Join(base, "cfg", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(content), "[paths]") {
		t.Fatalf("sample missing [paths] section")
	}
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := config.ExpandPath("~/stores")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "stores") {
		t.Fatalf("ExpandPath = %q", got)
	}
}
