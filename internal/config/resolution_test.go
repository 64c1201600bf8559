package config

import (
	"path/filepath"
	"testing"
)

func env(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestResolveConfig_Priority(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "fixture: from-file.html\nno_color: false\nsettle:\n  mode: fixed\n")

	tests := []struct {
		name        string
		flags       CliFlags
		env         map[string]string
		wantFixture string
		wantSource  string
		wantNoColor bool
		wantSettle  string
	}{
		{
			name:        "file only",
			flags:       CliFlags{ConfigPath: path},
			wantFixture: "from-file.html",
			wantSource:  SourceFile,
			wantSettle:  "fixed",
		},
		{
			name:        "env beats file",
			flags:       CliFlags{ConfigPath: path},
			env:         map[string]string{"STYLELAB_FIXTURE": "from-env.html", "NO_COLOR": "1", "STYLELAB_SETTLE": "stable"},
			wantFixture: "from-env.html",
			wantSource:  SourceEnv,
			wantNoColor: true,
			wantSettle:  "stable",
		},
		{
			name:        "cli beats env",
			flags:       CliFlags{ConfigPath: path, Fixture: "from-cli.html", NoColor: false, NoColorSet: true, Settle: "fixed"},
			env:         map[string]string{"STYLELAB_FIXTURE": "from-env.html", "NO_COLOR": "1", "STYLELAB_SETTLE": "stable"},
			wantFixture: "from-cli.html",
			wantSource:  SourceCLI,
			wantNoColor: false,
			wantSettle:  "fixed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveConfig(tt.flags, env(tt.env))
			if err != nil {
				t.Fatalf("ResolveConfig: %v", err)
			}
			if got.Fixture != tt.wantFixture || got.FixtureSource != tt.wantSource {
				t.Errorf("fixture = %q (%s), want %q (%s)", got.Fixture, got.FixtureSource, tt.wantFixture, tt.wantSource)
			}
			if got.NoColor != tt.wantNoColor {
				t.Errorf("no color = %v, want %v", got.NoColor, tt.wantNoColor)
			}
			if got.Settle.Mode != tt.wantSettle {
				t.Errorf("settle = %q, want %q", got.Settle.Mode, tt.wantSettle)
			}
		})
	}
}

func TestResolveConfig_InvalidEnvSettle(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "theme: mono\n")

	if _, err := ResolveConfig(CliFlags{ConfigPath: path}, env(map[string]string{"STYLELAB_SETTLE": "soon"})); err == nil {
		t.Fatal("expected validation error for bad settle mode")
	}
}

func TestResolveConfig_DebugFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "debug: false\n")

	got, err := ResolveConfig(CliFlags{ConfigPath: path}, env(map[string]string{"STYLELAB_DEBUG": "yes"}))
	if err != nil {
		t.Fatalf("ResolveConfig: %v", err)
	}
	if !got.Debug || got.DebugSource != SourceEnv {
		t.Errorf("debug = %v (%s), want true (env)", got.Debug, got.DebugSource)
	}
}

func TestEnvBool(t *testing.T) {
	for v, want := range map[string]bool{"1": true, "true": true, "yes": true, "0": false, "false": false} {
		if got := envBool(v); got != want {
			t.Errorf("envBool(%q) = %v, want %v", v, got, want)
		}
	}
}
