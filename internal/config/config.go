package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/stylelab/pkg/browser"
	"github.com/dkoosis/stylelab/pkg/fixture"
	"github.com/dkoosis/stylelab/pkg/reporter"
	"github.com/dkoosis/stylelab/pkg/scenario"
)

// FileName is the config file looked up in the working directory and the
// user config directory.
const FileName = ".stylelab.yaml"

// SettleConfig selects how the runner waits for CSS transitions.
type SettleConfig struct {
	Mode     string        `yaml:"mode"`
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
}

// GroupConfig declares a custom reporter group.
type GroupConfig struct {
	Name     string   `yaml:"name"`
	Contains []string `yaml:"contains"`
	Globs    []string `yaml:"globs"`
}

// AppConfig represents the application's configuration from .stylelab.yaml.
type AppConfig struct {
	Fixture         string           `yaml:"fixture"`
	ChromePath      string           `yaml:"chrome_path"`
	Headless        bool             `yaml:"headless"`
	Viewport        browser.Viewport `yaml:"viewport"`
	Settle          SettleConfig     `yaml:"settle"`
	ScenarioTimeout time.Duration    `yaml:"scenario_timeout"`
	NoColor         bool             `yaml:"no_color"`
	Debug           bool             `yaml:"debug"`
	Theme           string           `yaml:"theme"`
	Groups          []GroupConfig    `yaml:"groups"`
}

// Constants for default values.
const (
	DefaultTheme           = "default"
	DefaultScenarioTimeout = 30 * time.Second
)

// Default returns the built-in configuration.
func Default() *AppConfig {
	return &AppConfig{
		Fixture:  fixture.DefaultPath,
		Headless: true,
		Viewport: browser.DefaultViewport,
		Settle: SettleConfig{
			Mode:     string(scenario.DefaultSettle.Mode),
			Interval: scenario.DefaultSettle.Interval,
			Timeout:  scenario.DefaultSettle.Timeout,
		},
		ScenarioTimeout: DefaultScenarioTimeout,
		Theme:           DefaultTheme,
	}
}

// Load reads the config file at path over the defaults. An empty path looks
// the file up with getConfigPath; finding none is not an error. The returned
// string is the file actually read, or "".
func Load(path string) (*AppConfig, string, error) {
	cfg := Default()
	if path == "" {
		path = getConfigPath()
		if path == "" {
			return cfg, "", nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading config %s: %w", path, err)
	}
	// Keys absent from the file keep their default values.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, "", fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, path, nil
}

// getConfigPath tries to find the config file.
// It checks the local directory first, then the user config directory.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "stylelab", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}

// Validate reports every invalid setting at once.
func (c *AppConfig) Validate() error {
	var errs []error
	switch scenario.SettleMode(c.Settle.Mode) {
	case scenario.SettleFixed, scenario.SettleStable:
	default:
		errs = append(errs, fmt.Errorf("settle.mode %q: want %q or %q", c.Settle.Mode, scenario.SettleFixed, scenario.SettleStable))
	}
	if c.Settle.Interval <= 0 {
		errs = append(errs, fmt.Errorf("settle.interval must be positive, got %s", c.Settle.Interval))
	}
	if c.Settle.Timeout < c.Settle.Interval {
		errs = append(errs, fmt.Errorf("settle.timeout %s is shorter than settle.interval %s", c.Settle.Timeout, c.Settle.Interval))
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport %dx%d must be positive", c.Viewport.Width, c.Viewport.Height))
	}
	if c.ScenarioTimeout < 0 {
		errs = append(errs, fmt.Errorf("scenario_timeout must not be negative, got %s", c.ScenarioTimeout))
	}
	for i, g := range c.Groups {
		if g.Name == "" {
			errs = append(errs, fmt.Errorf("groups[%d]: name is required", i))
		}
		if len(g.Contains) == 0 && len(g.Globs) == 0 {
			errs = append(errs, fmt.Errorf("groups[%d] %q: needs contains or globs", i, g.Name))
		}
	}
	return errors.Join(errs...)
}

// SettlePolicy converts the settle section for the scenario runner.
func (c *AppConfig) SettlePolicy() scenario.SettlePolicy {
	return scenario.SettlePolicy{
		Mode:     scenario.SettleMode(c.Settle.Mode),
		Interval: c.Settle.Interval,
		Timeout:  c.Settle.Timeout,
	}
}

// BrowserOptions converts the browser settings for browser.Launch.
func (c *AppConfig) BrowserOptions() browser.Options {
	return browser.Options{
		ExecPath: c.ChromePath,
		Headless: c.Headless,
		Viewport: c.Viewport,
	}
}

// ReporterGroups returns the built-in groups followed by the configured ones.
func (c *AppConfig) ReporterGroups() ([]reporter.Group, error) {
	groups := reporter.DefaultGroups()
	for _, g := range c.Groups {
		matchers := []reporter.Matcher{}
		if len(g.Contains) > 0 {
			matchers = append(matchers, reporter.Substring(g.Contains...))
		}
		if len(g.Globs) > 0 {
			m, err := reporter.Glob(g.Globs...)
			if err != nil {
				return nil, fmt.Errorf("group %q: %w", g.Name, err)
			}
			matchers = append(matchers, m)
		}
		groups = append(groups, reporter.Group{
			ID:    reporter.GroupCustom,
			Name:  g.Name,
			Match: reporter.Any(matchers...),
		})
	}
	return groups, nil
}
