package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dkoosis/stylelab/pkg/reporter"
	"github.com/dkoosis/stylelab/pkg/scenario"
)

// chdir moves into dir for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func noEnv(string) string { return "" }

func TestGetConfigPath_ReturnsLocalConfig_When_FileExists(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)
	writeFile(t, filepath.Join(tempDir, FileName), "theme: mono\n")

	if got := getConfigPath(); got != FileName {
		t.Fatalf("expected local config path, got %q", got)
	}
}

func TestGetConfigPath_UsesXDGPath_When_LocalMissing(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)

	xdgRoot := filepath.Join(tempDir, "xdg")
	configPath := filepath.Join(xdgRoot, "stylelab", FileName)
	writeFile(t, configPath, "theme: orca\n")
	t.Setenv("XDG_CONFIG_HOME", xdgRoot)
	t.Setenv("HOME", filepath.Join(tempDir, "home"))

	if got := getConfigPath(); got != configPath {
		t.Fatalf("expected XDG config path %q, got %q", configPath, got)
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "none"))
	t.Setenv("HOME", filepath.Join(tempDir, "home"))

	cfg, path, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if path != "" {
		t.Fatalf("expected no config path, got %q", path)
	}
	if !cfg.Headless || cfg.Viewport.Width != 1200 || cfg.Viewport.Height != 800 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
}

func TestLoad_FileOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
headless: false
viewport:
  width: 800
settle:
  mode: stable
  interval: 20ms
groups:
  - name: smoke
    contains: [smoke]
`)

	cfg, got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != path {
		t.Fatalf("expected path %q, got %q", path, got)
	}
	if cfg.Headless {
		t.Error("expected headless: false from file")
	}
	if cfg.Viewport.Width != 800 || cfg.Viewport.Height != 800 {
		t.Errorf("viewport = %+v, want 800x800", cfg.Viewport)
	}
	if cfg.Settle.Mode != "stable" || cfg.Settle.Interval != 20*time.Millisecond {
		t.Errorf("settle = %+v", cfg.Settle)
	}
	if cfg.Settle.Timeout != scenario.DefaultSettle.Timeout {
		t.Errorf("settle.timeout = %s, want default", cfg.Settle.Timeout)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("theme = %q, want default", cfg.Theme)
	}
	if len(cfg.Groups) != 1 || cfg.Groups[0].Name != "smoke" {
		t.Errorf("groups = %+v", cfg.Groups)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "viewport: [1, 2\n")

	if _, _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for explicit missing file")
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Settle.Mode = "eventually"
	cfg.Viewport.Width = 0
	cfg.Groups = []GroupConfig{{Name: ""}}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"settle.mode", "viewport", "name is required", "needs contains or globs"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestReporterGroups_AppendsCustom(t *testing.T) {
	cfg := Default()
	cfg.Groups = []GroupConfig{{Name: "e2e", Globs: []string{"**/e2e/**"}}}

	groups, err := cfg.ReporterGroups()
	if err != nil {
		t.Fatalf("ReporterGroups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].ID != reporter.GroupStateStyling {
		t.Errorf("built-in group must come first, got %v", groups[0].ID)
	}
	if groups[1].Name != "e2e" || groups[1].ID != reporter.GroupCustom {
		t.Errorf("unexpected custom group %+v", groups[1])
	}
	if !groups[1].Match("example.com/app/e2e/login") {
		t.Error("custom glob did not match")
	}
}

func TestReporterGroups_InvalidGlob(t *testing.T) {
	cfg := Default()
	cfg.Groups = []GroupConfig{{Name: "bad", Globs: []string{"[unclosed"}}}
	if _, err := cfg.ReporterGroups(); err == nil {
		t.Fatal("expected invalid glob error")
	}
}
