package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"draftscan/internal/scan"
)

func TestAliasScanReport(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"alias", "scan", "--draft", env.draftPath}, env.configPath)
	if err != nil {
		t.Fatalf("alias scan: %v", err)
	}
	want := strings.Join([]string{
		"Scanned material_animations.",
		"Aliases added: 2",
		"Aliases unchanged: 1",
		"Saved to: " + filepath.Join(env.cfg.Paths.DataDir, "effect_alias.json"),
		"",
	}, "\n")
	if out != want {
		t.Fatalf("report mismatch\n got: %q\nwant: %q", out, want)
	}

	out, _, err = runCLI(t, []string{"--json", "alias", "scan", "--draft", env.draftPath}, env.configPath)
	if err != nil {
		t.Fatalf("alias scan --json: %v", err)
	}
	var result scan.AliasResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode json report: %v\n%s", err, out)
	}
	if result.Stats.Updated != 0 || result.Stats.Unchanged != 3 {
		t.Fatalf("second run stats = %+v", result.Stats)
	}
	if result.StoreStatus != "valid" {
		t.Fatalf("store status = %q, want valid", result.StoreStatus)
	}
}

func TestAliasListAndGet(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"alias", "scan", "--draft", env.draftPath}, env.configPath); err != nil {
		t.Fatalf("alias scan: %v", err)
	}

	out, _, err := runCLI(t, []string{"alias", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("alias list: %v", err)
	}
	if out != "7001\tFade In\nabc\tPop\n" {
		t.Fatalf("plain listing = %q", out)
	}

	out, _, err = runCLI(t, []string{"alias", "list", "--filter", "FADE"}, env.configPath)
	if err != nil {
		t.Fatalf("alias list --filter: %v", err)
	}
	if out != "7001\tFade In\n" {
		t.Fatalf("filtered listing = %q", out)
	}

	out, _, err = runCLI(t, []string{"alias", "list", "--format", "yaml"}, env.configPath)
	if err != nil {
		t.Fatalf("alias list --format yaml: %v", err)
	}
	requireContains(t, out, "name: Fade In")
	requireContains(t, out, "id: abc")

	if _, _, err := runCLI(t, []string{"alias", "list", "--format", "xml"}, env.configPath); err == nil {
		t.Fatal("expected unknown format error")
	}

	out, _, err = runCLI(t, []string{"alias", "get", "abc"}, env.configPath)
	if err != nil {
		t.Fatalf("alias get: %v", err)
	}
	if out != "Pop\n" {
		t.Fatalf("alias get = %q", out)
	}

	_, _, err = runCLI(t, []string{"alias", "get", "missing"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for unknown alias")
	}
	requireContains(t, err.Error(), "alias missing not found")
}

func TestScanFatalErrors(t *testing.T) {
	env := setupCLITestEnv(t)

	missing := filepath.Join(env.baseDir, "absent", "draft_content.json")
	_, _, err := runCLI(t, []string{"alias", "scan", "--draft", missing}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing draft")
	}
	if err.Error() != "draft not found: "+missing {
		t.Fatalf("error = %q", err)
	}

	brokenDir := filepath.Join(env.baseDir, "broken")
	broken := writeBrokenDraft(t, brokenDir)
	_, _, err = runCLI(t, []string{"effects", "scan", "--draft", broken}, env.configPath)
	if err == nil {
		t.Fatal("expected parse error")
	}
	requireContains(t, err.Error(), "parse draft "+broken+": ")

	if _, _, err := runCLI(t, []string{"alias", "scan"}, env.configPath); err == nil {
		t.Fatal("expected error when --draft is omitted")
	}

	out, _, err := runCLI(t, []string{"alias", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("alias list: %v", err)
	}
	if out != "" {
		t.Fatalf("alias map should be empty after fatal errors, got %q", out)
	}
}
