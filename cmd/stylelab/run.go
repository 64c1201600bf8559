package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/dkoosis/stylelab/internal/logging"
	"github.com/dkoosis/stylelab/internal/progress"
	"github.com/dkoosis/stylelab/pkg/browser"
	"github.com/dkoosis/stylelab/pkg/fixture"
	"github.com/dkoosis/stylelab/pkg/mapper"
	"github.com/dkoosis/stylelab/pkg/scenario"
)

func fixtureFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  flagFixture,
		Usage: "Path to the fixture HTML file (default: lab/index.html)",
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run the style scenarios against the fixture in headless Chrome",
		Flags: []cli.Flag{
			fixtureFlag(),
			&cli.StringFlag{
				Name:  flagSettle,
				Usage: "How to wait for transitions: fixed or stable",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: "auto",
				Usage: "Output format: auto, terminal, llm, json",
			},
			&cli.StringSliceFlag{
				Name:  "filter",
				Usage: "Only run scenarios whose Section/Name contains this text (repeatable)",
			},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			mode, err := resolveFormat(c.String("format"), e.stdout)
			if err != nil {
				return cli.Exit(err.Error(), exitRuntime)
			}
			return e.runScenarios(c, mode, c.StringSlice("filter"))
		},
	}
}

func (e *env) runScenarios(c *cli.Context, mode string, filters []string) error {
	ctx := c.Context

	path, err := fixture.Locate(e.cfg.Fixture)
	if err != nil {
		return cli.Exit(err.Error(), exitRuntime)
	}
	if err := fixture.ValidateFile(path); err != nil {
		return cli.Exit(err.Error(), exitRuntime)
	}

	scs := scenario.Filter(scenario.Catalog(), matchAny(filters))
	if len(scs) == 0 {
		return cli.Exit("no scenarios match the filter", exitRuntime)
	}

	opts := e.cfg.BrowserOptions()
	if opts.ExecPath == "" {
		exe, err := browser.FindExecPath()
		if err != nil {
			return cli.Exit(err.Error(), exitRuntime)
		}
		opts.ExecPath = exe
	}
	opts.Logf = logging.Logf(e.logger)

	e.logger.Info("launching browser", "exec", opts.ExecPath, "scenarios", len(scs))
	session, err := browser.Launch(ctx, opts)
	if err != nil {
		return cli.Exit(err.Error(), exitRuntime)
	}
	defer func() {
		if err := session.Close(); err != nil {
			e.logger.Warn("closing browser", "err", err)
		}
	}()

	runner := &scenario.Runner{
		Browser:    scenario.FromSession(session),
		FixtureURL: fixture.URL(path),
		Settle:     e.cfg.SettlePolicy(),
		Timeout:    e.cfg.ScenarioTimeout,
		Logger:     e.logger,
	}
	stopProgress := func() {}
	if mode == "terminal" && isTTYWriter(e.stdout) {
		tracker := progress.Start(e.stdout, len(scs), e.theme())
		runner.OnStart, runner.OnResult = tracker.Started, tracker.Finished
		// The live view replaces per-scenario log lines.
		runner.Logger = e.quietLogger()
		stopProgress = func() {
			if err := tracker.Stop(); err != nil {
				e.logger.Warn("progress view", "err", err)
			}
		}
	}
	start := time.Now()
	results, runErr := runner.RunAll(ctx, scs)
	stopProgress()
	patterns := mapper.FromResults(results, time.Since(start))
	fmt.Fprint(e.stdout, e.renderer(mode).Render(patterns))

	if runErr != nil {
		if errors.Is(runErr, scenario.ErrSessionLost) {
			return cli.Exit(fmt.Sprintf("aborted after %d/%d scenarios: %v", len(results), len(scs), runErr), exitRuntime)
		}
		return cli.Exit(runErr.Error(), exitRuntime)
	}
	for _, r := range results {
		if !r.Passed() {
			return cli.Exit("", exitFailed)
		}
	}
	return nil
}

func matchAny(filters []string) func(string) bool {
	if len(filters) == 0 {
		return nil
	}
	lowered := lo.Map(filters, func(f string, _ int) string { return strings.ToLower(f) })
	return func(id string) bool {
		id = strings.ToLower(id)
		return lo.SomeBy(lowered, func(f string) bool { return strings.Contains(id, f) })
	}
}
