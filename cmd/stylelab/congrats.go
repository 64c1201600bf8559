package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/dkoosis/stylelab/internal/detect"
	"github.com/dkoosis/stylelab/pkg/mapper"
	"github.com/dkoosis/stylelab/pkg/render"
	"github.com/dkoosis/stylelab/pkg/reporter"
	"github.com/dkoosis/stylelab/pkg/testjson"
)

func congratsCommand() *cli.Command {
	return &cli.Command{
		Name:  "congrats",
		Usage: "Read test results on stdin and congratulate every fully passing group",
		Description: "Accepts a go test -json stream or an aggregated results document\n" +
			`({"testResults":[{"testFilePath":...,"numFailingTests":...}]}).`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "summary",
				Usage: "Also print a per-package summary to stderr (go test -json input only)",
			},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			return e.congrats(c.Bool("summary"))
		},
	}
}

func (e *env) congrats(summary bool) error {
	input, err := io.ReadAll(e.stdin)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading stdin: %v", err), exitRuntime)
	}
	if len(input) == 0 {
		return cli.Exit("no input on stdin", exitRuntime)
	}

	var results []reporter.FileResult
	format := detect.Sniff(input)
	e.logger.Debug("input detected", "format", format)
	switch format {
	case detect.GoTestJSON:
		pkgs, malformed, err := testjson.ParseBytes(input)
		if err != nil {
			return cli.Exit(fmt.Sprintf("parsing go test -json: %v", err), exitRuntime)
		}
		if malformed > 0 {
			e.logger.Warn("malformed lines skipped", "count", malformed)
		}
		results = reporter.FromTestJSON(pkgs)
		if summary {
			out := render.NewTerminal(e.theme(), termWidth(e.stderr)).Render(mapper.FromTestJSON(pkgs))
			fmt.Fprint(e.stderr, out)
		}
	case detect.Aggregated:
		results, err = reporter.ParseAggregated(input)
		if err != nil {
			return cli.Exit(fmt.Sprintf("parsing results: %v", err), exitRuntime)
		}
	default:
		return cli.Exit("unrecognized input (expected go test -json or an aggregated results document)", exitRuntime)
	}

	groups, err := e.cfg.ReporterGroups()
	if err != nil {
		return cli.Exit(fmt.Sprintf("config: %v", err), exitRuntime)
	}
	rep := reporter.New(e.stdout,
		reporter.WithGroups(groups),
		reporter.WithTheme(e.celebrationTheme()),
		reporter.WithLogger(e.logger),
	)
	if err := rep.OnRunComplete(results); err != nil {
		return cli.Exit(err.Error(), exitRuntime)
	}
	return nil
}
