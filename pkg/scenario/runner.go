package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dkoosis/stylelab/pkg/browser"
	"github.com/dkoosis/stylelab/pkg/stylecheck"
)

// ErrSessionLost is returned by RunAll when the browser dies mid-run.
var ErrSessionLost = errors.New("browser session lost")

// Page is the subset of *browser.Page the runner drives.
type Page interface {
	Hover(sel string) error
	Click(sel string) error
	Focus(sel string) error
	WaitVisible(sel string) error
	SetViewport(v browser.Viewport) error
	Settle(d time.Duration) error
	ComputedStyle(sel string, props ...string) (map[string]string, error)
	InlineStyle(sel string, props ...string) (map[string]string, error)
	ApplyInlineStyle(sel, class string, decls map[string]string) error
	WaitStable(sel string, props []string, interval, timeout time.Duration) error
	Close() error
}

// Browser opens pages for the runner.
type Browser interface {
	OpenPage(ctx context.Context, url string) (Page, error)
	Alive() bool
}

type sessionBrowser struct {
	*browser.Session
}

func (s sessionBrowser) OpenPage(ctx context.Context, url string) (Page, error) {
	p, err := s.Session.OpenPage(ctx, url)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FromSession adapts a browser session for a Runner.
func FromSession(s *browser.Session) Browser {
	return sessionBrowser{s}
}

// SettleMode selects how a runner waits for transitions.
type SettleMode string

const (
	// SettleFixed sleeps for the scenario's Settle duration.
	SettleFixed SettleMode = "fixed"
	// SettleStable polls probed properties until two reads agree.
	SettleStable SettleMode = "stable"
)

// SettlePolicy controls waiting after a scenario's actions.
type SettlePolicy struct {
	Mode     SettleMode
	Interval time.Duration
	Timeout  time.Duration
}

// DefaultSettle is fixed waits, as authored per scenario.
var DefaultSettle = SettlePolicy{Mode: SettleFixed, Interval: 50 * time.Millisecond, Timeout: 2 * time.Second}

// Runner executes scenarios against one fixture URL.
type Runner struct {
	Browser    Browser
	FixtureURL string
	Settle     SettlePolicy
	// Timeout bounds each scenario. Zero means no limit beyond ctx.
	Timeout time.Duration
	Logger  *log.Logger
	// OnStart and OnResult, when set, are called around each scenario
	// RunAll executes.
	OnStart  func(Scenario)
	OnResult func(Result)
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.New(io.Discard)
	}
	return r.Logger
}

// Run executes sc on a fresh page. The page is closed on every path.
func (r *Runner) Run(ctx context.Context, sc Scenario) (res Result) {
	res.Scenario = sc
	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	page, err := r.Browser.OpenPage(ctx, r.FixtureURL)
	if err != nil {
		res.Err = err
		return res
	}
	defer func() {
		if cerr := page.Close(); cerr != nil {
			r.logger().Debug("closing page", "scenario", sc.ID(), "err", cerr)
		}
	}()

	baselines := make([]stylecheck.Snapshot, len(sc.Probes))
	for i, p := range sc.Probes {
		if !stylecheck.NeedsBaseline(p.Expect) {
			continue
		}
		snap, err := read(page, p)
		if err != nil {
			res.Err = fmt.Errorf("baseline: %w", err)
			return res
		}
		baselines[i] = snap
	}

	for _, a := range sc.Actions {
		if err := apply(page, a); err != nil {
			res.Err = fmt.Errorf("%s: %w", a, err)
			return res
		}
	}

	if err := r.settle(page, sc); err != nil {
		res.Err = fmt.Errorf("settle: %w", err)
		return res
	}

	for i, p := range sc.Probes {
		snap, err := read(page, p)
		if err != nil {
			res.Err = err
			return res
		}
		res.Mismatches = append(res.Mismatches, stylecheck.Check(p.Selector, snap, baselines[i], p.Expect...)...)
	}

	r.logger().Debug("scenario done", "scenario", sc.ID(), "mismatches", len(res.Mismatches))
	return res
}

// RunAll runs scs in order. Failing scenarios do not stop the run; a dead
// browser or a cancelled ctx does, returning the results gathered so far.
func (r *Runner) RunAll(ctx context.Context, scs []Scenario) ([]Result, error) {
	results := make([]Result, 0, len(scs))
	for _, sc := range scs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if !r.Browser.Alive() {
			return results, fmt.Errorf("%w: before %s", ErrSessionLost, sc.ID())
		}
		if r.OnStart != nil {
			r.OnStart(sc)
		}
		res := r.Run(ctx, sc)
		results = append(results, res)
		if r.OnResult != nil {
			r.OnResult(res)
		}
		if res.Err != nil && !r.Browser.Alive() {
			return results, fmt.Errorf("%w: during %s: %w", ErrSessionLost, sc.ID(), res.Err)
		}
		if res.Passed() {
			r.logger().Info("pass", "scenario", sc.ID(), "took", res.Duration.Round(time.Millisecond))
		} else {
			r.logger().Warn("fail", "scenario", sc.ID(), "problems", len(res.Failures()))
		}
	}
	return results, nil
}

func (r *Runner) settle(page Page, sc Scenario) error {
	if r.Settle.Mode != SettleStable || sc.Settle <= 0 {
		return page.Settle(sc.Settle)
	}
	// Give transitions one interval to start before polling.
	if err := page.Settle(r.Settle.Interval); err != nil {
		return err
	}
	for _, p := range sc.Probes {
		if p.Source != Computed {
			continue
		}
		props := stylecheck.Properties(p.Expect)
		if err := page.WaitStable(p.Selector, props, r.Settle.Interval, r.Settle.Timeout); err != nil {
			return err
		}
	}
	return nil
}

func apply(page Page, a Action) error {
	switch a.Kind {
	case ActHover:
		return page.Hover(a.Selector)
	case ActClick:
		return page.Click(a.Selector)
	case ActFocus:
		return page.Focus(a.Selector)
	case ActWaitFor:
		return page.WaitVisible(a.Selector)
	case ActResize:
		return page.SetViewport(a.Viewport)
	case ActSimulateActive:
		return page.ApplyInlineStyle(a.Selector, a.Class, a.Styles)
	default:
		return fmt.Errorf("unknown action %q", a.Kind)
	}
}

func read(page Page, p Probe) (stylecheck.Snapshot, error) {
	props := stylecheck.Properties(p.Expect)
	var (
		vals map[string]string
		err  error
	)
	if p.Source == Inline {
		vals, err = page.InlineStyle(p.Selector, props...)
	} else {
		vals, err = page.ComputedStyle(p.Selector, props...)
	}
	if err != nil {
		return nil, err
	}
	return stylecheck.Snapshot(vals), nil
}
