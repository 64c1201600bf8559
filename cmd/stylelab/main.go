// stylelab checks the lab page's CSS state styling in a headless browser and
// reports on test runs.
//
// Usage:
//
//	stylelab run                      # run every style scenario
//	stylelab run --filter hover       # only scenarios whose id contains "hover"
//	stylelab check                    # static fixture contract check
//	go test -json ./... | stylelab congrats
//
// Exit codes: 0 success, 1 failing scenarios or contract violations,
// 2 usage or setup errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/dkoosis/stylelab/internal/config"
	"github.com/dkoosis/stylelab/internal/logging"
	"github.com/dkoosis/stylelab/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

const (
	exitOK      = 0
	exitFailed  = 1
	exitRuntime = 2
)

// Flag names shared between commands and setup.
const (
	flagConfig  = "config"
	flagDebug   = "debug"
	flagNoColor = "no-color"
	flagTheme   = "theme"
	flagFixture = "fixture"
	flagSettle  = "settle"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  flagConfig,
			Usage: "Path to a config file (default: ./.stylelab.yaml, then the user config dir)",
		},
		&cli.BoolFlag{
			Name:  flagDebug,
			Usage: "Enable debug logging",
		},
		&cli.BoolFlag{
			Name:  flagNoColor,
			Usage: "Disable colored output",
		},
		&cli.StringFlag{
			Name:  flagTheme,
			Usage: "Theme: default, orca, mono",
		},
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &cli.App{
		Name:      "stylelab",
		Usage:     "Assert CSS state styling of the lab page in headless Chrome",
		Version:   fmt.Sprintf("%s (%s, %s)", version.Version, version.CommitHash, version.BuildDate),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     globalFlags(),
		Commands: []*cli.Command{
			congratsCommand(),
			runCommand(),
			checkCommand(),
			listCommand(),
		},
		// Exit codes are mapped below so run stays testable.
		ExitErrHandler: func(*cli.Context, error) {},
	}

	err := app.RunContext(ctx, append([]string{"stylelab"}, args...))
	return exitCode(err, stderr)
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		if msg := coder.Error(); msg != "" {
			fmt.Fprintf(stderr, "stylelab: %s\n", msg)
		}
		return coder.ExitCode()
	}
	fmt.Fprintf(stderr, "stylelab: %v\n", err)
	return exitRuntime
}

// env holds what every command needs after flags and config are resolved.
type env struct {
	cfg    *config.ResolvedConfig
	logger *log.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// setup resolves configuration for c. Command-level flags named "fixture"
// and "settle" are picked up when the command defines them.
func setup(c *cli.Context) (*env, error) {
	flags := config.CliFlags{
		ConfigPath: c.String(flagConfig),
		Theme:      c.String(flagTheme),
		NoColor:    c.Bool(flagNoColor),
		NoColorSet: c.IsSet(flagNoColor),
		Debug:      c.Bool(flagDebug),
		DebugSet:   c.IsSet(flagDebug),
	}
	if c.Command != nil && hasFlag(c.Command, flagFixture) {
		flags.Fixture = c.String(flagFixture)
	}
	if c.Command != nil && hasFlag(c.Command, flagSettle) {
		flags.Settle = c.String(flagSettle)
	}

	cfg, err := config.ResolveConfig(flags, os.Getenv)
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("config: %v", err), exitRuntime)
	}
	logger := logging.New(c.App.ErrWriter, logging.Options{Debug: cfg.Debug, NoColor: cfg.NoColor})
	logger.Debug("config resolved",
		"path", cfg.Path,
		"fixture", cfg.Fixture, "fixture_source", cfg.FixtureSource,
		"settle", cfg.Settle.Mode, "settle_source", cfg.SettleSource,
	)
	return &env{
		cfg:    cfg,
		logger: logger,
		stdin:  c.App.Reader,
		stdout: c.App.Writer,
		stderr: c.App.ErrWriter,
	}, nil
}

func hasFlag(cmd *cli.Command, name string) bool {
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			if n == name {
				return true
			}
		}
	}
	return false
}
