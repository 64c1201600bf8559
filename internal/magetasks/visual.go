package magetasks

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/dkoosis/stylelab/internal/config"
	"github.com/dkoosis/stylelab/pkg/browser"
	"github.com/dkoosis/stylelab/pkg/mapper"
	"github.com/dkoosis/stylelab/pkg/render"
	"github.com/dkoosis/stylelab/pkg/reporter"
	"github.com/dkoosis/stylelab/pkg/testjson"
)

// ErrSuiteFailed is returned when the visual suite reports failures.
var ErrSuiteFailed = errors.New("visual suite failed")

// Visual runs the headless state-styling suite and prints its summary
// followed by any group congratulations.
func Visual() error {
	PrintH2Header("Visual State Styling")

	// The suite finds its browser the same way and skips every test without one.
	if _, err := browser.FindExecPath(); err != nil {
		return toolMissing("chrome")
	}

	cfg, _, err := config.Load("")
	if err != nil {
		return err
	}
	groups, err := cfg.ReporterGroups()
	if err != nil {
		return err
	}

	cmd := exec.Command("go", "test", "-json", "-count=1", SuitePackage)
	cmd.Stderr = os.Stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	reportErr := consumeStream(stdout, Out, groups)
	return suiteOutcome(reportErr, cmd.Wait())
}

// consumeStream reports r and then drains whatever the parser left unread,
// so the child never blocks on a full pipe before Wait.
func consumeStream(r io.Reader, out io.Writer, groups []reporter.Group) error {
	err := ReportStream(r, out, groups)
	_, _ = io.Copy(io.Discard, r)
	return err
}

// suiteOutcome folds the report and process errors into one. A non-zero
// exit of go test fails the suite even when every reported test passed.
func suiteOutcome(reportErr, waitErr error) error {
	if reportErr != nil {
		return reportErr
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return fmt.Errorf("%w: go test exited with status %d", ErrSuiteFailed, exitErr.ExitCode())
	}
	return waitErr
}

// ReportStream reads go test -json output from r, renders a summary to out
// and then hands the results to the congratulation reporter. It returns
// ErrSuiteFailed when any package failed.
func ReportStream(r io.Reader, out io.Writer, groups []reporter.Group) error {
	pkgs, malformed, err := testjson.ParseStream(r)
	if err != nil {
		return fmt.Errorf("reading test stream: %w", err)
	}
	if len(pkgs) == 0 {
		return fmt.Errorf("%w: no test events (%d malformed lines)", ErrSuiteFailed, malformed)
	}

	fmt.Fprint(out, render.NewTerminal(consoleTheme, headerWidth).Render(mapper.FromTestJSON(pkgs)))

	if err := reporter.New(out, reporter.WithGroups(groups)).OnRunComplete(reporter.FromTestJSON(pkgs)); err != nil {
		return err
	}

	if stats := testjson.ComputeStats(pkgs); stats.FailedPkgs > 0 {
		return ErrSuiteFailed
	}
	return nil
}
