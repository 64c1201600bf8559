// Package scenario drives page-state transitions on the lab fixture and
// checks the resulting computed styles.
//
// A Scenario starts from a freshly loaded page, applies its actions, waits
// for transitions to settle and then reads every probe. Scenarios never
// share a page, so one scenario's hover or focus cannot leak into the next.
package scenario

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/dkoosis/stylelab/pkg/browser"
	"github.com/dkoosis/stylelab/pkg/stylecheck"
)

// ActionKind names a UI state transition.
type ActionKind string

// Action kinds, in the wording used by Action.String.
const (
	ActHover          ActionKind = "hover"
	ActClick          ActionKind = "click"
	ActFocus          ActionKind = "focus"
	ActWaitFor        ActionKind = "wait for"
	ActResize         ActionKind = "resize"
	ActSimulateActive ActionKind = "simulate active"
)

// Action is one step applied to a page before its probes are read.
type Action struct {
	Kind     ActionKind
	Selector string
	Viewport browser.Viewport

	// Used by ActSimulateActive.
	Class  string
	Styles map[string]string
}

func (a Action) String() string {
	if a.Kind == ActResize {
		return fmt.Sprintf("%s %dx%d", a.Kind, a.Viewport.Width, a.Viewport.Height)
	}
	return fmt.Sprintf("%s %s", a.Kind, a.Selector)
}

// Hover moves the pointer over sel.
func Hover(sel string) Action { return Action{Kind: ActHover, Selector: sel} }

// Click clicks sel, which also focuses focusable elements.
func Click(sel string) Action { return Action{Kind: ActClick, Selector: sel} }

// Focus focuses sel without moving the pointer.
func Focus(sel string) Action { return Action{Kind: ActFocus, Selector: sel} }

// WaitFor waits until sel is visible.
func WaitFor(sel string) Action { return Action{Kind: ActWaitFor, Selector: sel} }

// Resize changes the viewport.
func Resize(width, height int64) Action {
	return Action{Kind: ActResize, Viewport: browser.Viewport{Width: width, Height: height}}
}

// SimulateActive stands in for :active, which cannot be held while styles
// are read: it adds class to sel and writes styles inline. Probe the result
// with Inline, since it asserts the stand-in and not the pseudo-class.
func SimulateActive(sel, class string, styles map[string]string) Action {
	return Action{Kind: ActSimulateActive, Selector: sel, Class: class, Styles: styles}
}

// Source selects which style declaration a probe reads.
type Source int

const (
	// Computed reads window.getComputedStyle.
	Computed Source = iota
	// Inline reads the element's style attribute.
	Inline
)

func (s Source) String() string {
	if s == Inline {
		return "inline"
	}
	return "computed"
}

// Probe reads properties of the first element matching Selector and checks
// them against Expect.
type Probe struct {
	Selector string
	Source   Source
	Expect   []stylecheck.Expectation
}

// Scenario is one independent assertion run against a fresh page.
type Scenario struct {
	Section string
	Name    string
	Actions []Action
	// Settle is how long to let transitions run after the actions.
	Settle time.Duration
	Probes []Probe
}

// ID is the scenario's "Section/Name" path, usable as a subtest name.
func (s Scenario) ID() string {
	return s.Section + "/" + s.Name
}

// Result is the outcome of running one scenario.
type Result struct {
	Scenario   Scenario
	Mismatches []*stylecheck.Mismatch
	// Err is set when the scenario could not be carried out, for example a
	// selector matched nothing or navigation failed.
	Err      error
	Duration time.Duration
}

// Passed reports whether the scenario ran and every expectation held.
func (r Result) Passed() bool {
	return r.Err == nil && len(r.Mismatches) == 0
}

// Failures returns one line per problem, the run error first.
func (r Result) Failures() []string {
	var out []string
	if r.Err != nil {
		out = append(out, r.Err.Error())
	}
	for _, m := range r.Mismatches {
		out = append(out, m.Error())
	}
	return out
}

// Sections returns the distinct sections of scs in first-seen order.
func Sections(scs []Scenario) []string {
	return lo.Uniq(lo.Map(scs, func(s Scenario, _ int) string { return s.Section }))
}

// Filter returns the scenarios whose ID satisfies match. A nil match returns
// scs unchanged.
func Filter(scs []Scenario, match func(id string) bool) []Scenario {
	if match == nil {
		return scs
	}
	return lo.Filter(scs, func(s Scenario, _ int) bool { return match(s.ID()) })
}
