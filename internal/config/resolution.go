package config

import (
	"strconv"
)

// Sources record where a resolved value came from.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// CliFlags holds the values of command-line flags. The *Set fields record
// whether the user passed the flag explicitly.
type CliFlags struct {
	ConfigPath string
	Fixture    string
	Theme      string
	Settle     string
	NoColor    bool
	Debug      bool

	NoColorSet bool
	DebugSet   bool
}

// ResolvedConfig is the configuration after applying every source.
type ResolvedConfig struct {
	*AppConfig

	// Path is the config file read, or "".
	Path string

	FixtureSource string
	SettleSource  string
	NoColorSource string
	DebugSource   string
}

// ResolveConfig loads the file, then applies environment variables read
// through getenv, then flags. The result is validated.
func ResolveConfig(flags CliFlags, getenv func(string) string) (*ResolvedConfig, error) {
	cfg, path, err := Load(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	base := SourceDefault
	if path != "" {
		base = SourceFile
	}
	r := &ResolvedConfig{
		AppConfig:     cfg,
		Path:          path,
		FixtureSource: base,
		SettleSource:  base,
		NoColorSource: base,
		DebugSource:   base,
	}

	if v := getenv("STYLELAB_FIXTURE"); v != "" {
		r.Fixture, r.FixtureSource = v, SourceEnv
	}
	if v := getenv("STYLELAB_CHROME"); v != "" {
		r.ChromePath = v
	}
	if v := getenv("STYLELAB_SETTLE"); v != "" {
		r.Settle.Mode, r.SettleSource = v, SourceEnv
	}
	if v := getenv("STYLELAB_DEBUG"); v != "" {
		r.Debug, r.DebugSource = envBool(v), SourceEnv
	}
	if v := getenv("NO_COLOR"); v != "" {
		r.NoColor, r.NoColorSource = envBool(v), SourceEnv
	}

	if flags.Fixture != "" {
		r.Fixture, r.FixtureSource = flags.Fixture, SourceCLI
	}
	if flags.Settle != "" {
		r.Settle.Mode, r.SettleSource = flags.Settle, SourceCLI
	}
	if flags.Theme != "" {
		r.Theme = flags.Theme
	}
	if flags.NoColorSet {
		r.NoColor, r.NoColorSource = flags.NoColor, SourceCLI
	}
	if flags.DebugSet {
		r.Debug, r.DebugSource = flags.Debug, SourceCLI
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// envBool treats any value that is not a recognised false as true, so
// NO_COLOR=yes disables colour.
func envBool(v string) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return b
}
