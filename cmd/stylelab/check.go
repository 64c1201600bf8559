package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/dkoosis/stylelab/pkg/fixture"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check that the fixture has every element the scenarios query",
		Flags: []cli.Flag{fixtureFlag()},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			return e.check()
		},
	}
}

func (e *env) check() error {
	path, err := fixture.Locate(e.cfg.Fixture)
	if err != nil {
		return cli.Exit(err.Error(), exitRuntime)
	}
	if err := fixture.ValidateFile(path); err != nil {
		if errors.Is(err, fixture.ErrMissingSelectors) {
			return cli.Exit(err.Error(), exitFailed)
		}
		return cli.Exit(err.Error(), exitRuntime)
	}

	f, err := os.Open(path)
	if err != nil {
		return cli.Exit(err.Error(), exitRuntime)
	}
	defer f.Close()
	sheets, err := fixture.Stylesheets(f)
	if err != nil {
		return cli.Exit(err.Error(), exitRuntime)
	}
	for _, href := range sheets {
		sheet := filepath.Join(filepath.Dir(path), filepath.FromSlash(href))
		if _, err := os.Stat(sheet); err != nil {
			return cli.Exit(fmt.Sprintf("stylesheet %s: %v", href, err), exitFailed)
		}
	}

	fmt.Fprintf(e.stdout, "fixture ok: %s (%d selectors, %d stylesheets)\n", path, len(fixture.RequiredSelectors), len(sheets))
	return nil
}
