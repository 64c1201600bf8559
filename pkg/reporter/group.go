package reporter

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher reports whether a lowercased file identity belongs to a group.
type Matcher func(filePath string) bool

// GroupID enumerates the groups the reporter knows about.
type GroupID int

const (
	// GroupCustom identifies groups supplied through configuration.
	GroupCustom GroupID = iota
	// GroupStateStyling is the browser style assertion suite.
	GroupStateStyling
)

func (id GroupID) String() string {
	switch id {
	case GroupStateStyling:
		return "stateStyling"
	default:
		return "custom"
	}
}

// Group is a named set of test files whose joint success earns a message.
type Group struct {
	ID    GroupID
	Name  string
	Match Matcher
}

// DefaultGroups returns the built-in group set.
//
// The state styling suite is recognised by its Go package path
// (internal/statestyling), its test file name, or a Jest-style
// state-styling.test.js path in aggregated results.
func DefaultGroups() []Group {
	return []Group{
		{
			ID:    GroupStateStyling,
			Name:  GroupStateStyling.String(),
			Match: Substring("state-styling.test.js", "state_styling", "statestyling"),
		},
	}
}

// Substring matches paths containing any of subs, ignoring case.
func Substring(subs ...string) Matcher {
	lowered := make([]string, 0, len(subs))
	for _, s := range subs {
		if s != "" {
			lowered = append(lowered, strings.ToLower(s))
		}
	}
	return func(filePath string) bool {
		for _, s := range lowered {
			if strings.Contains(filePath, s) {
				return true
			}
		}
		return false
	}
}

// Glob matches paths against doublestar patterns, ignoring case.
func Glob(patterns ...string) (Matcher, error) {
	lowered := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(p)
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid glob pattern %q", p)
		}
		lowered = append(lowered, p)
	}
	return func(filePath string) bool {
		for _, p := range lowered {
			if ok, _ := doublestar.Match(p, filePath); ok {
				return true
			}
		}
		return false
	}, nil
}

// Any matches when at least one of ms matches.
func Any(ms ...Matcher) Matcher {
	return func(filePath string) bool {
		for _, m := range ms {
			if m != nil && m(filePath) {
				return true
			}
		}
		return false
	}
}

// Classify buckets results by group in a single pass. members[i] holds the
// results claimed by groups[i]; a result joins the first group that matches
// it, or none.
func Classify(groups []Group, results []FileResult) [][]FileResult {
	members := make([][]FileResult, len(groups))
	for _, res := range results {
		path := strings.ToLower(res.FilePath)
		for i, g := range groups {
			if g.Match != nil && g.Match(path) {
				members[i] = append(members[i], res)
				break
			}
		}
	}
	return members
}

// Verdict is the pass/fail rollup of one group that had members.
type Verdict struct {
	Group     Group
	Members   []FileResult
	AllPassed bool
}

// Evaluate classifies results and returns a verdict for every group with at
// least one member, in group order.
func Evaluate(groups []Group, results []FileResult) []Verdict {
	members := Classify(groups, results)
	var verdicts []Verdict
	for i, g := range groups {
		if len(members[i]) == 0 {
			continue
		}
		allPassed := true
		for _, m := range members[i] {
			if m.NumFailingTests != 0 {
				allPassed = false
				break
			}
		}
		verdicts = append(verdicts, Verdict{Group: g, Members: members[i], AllPassed: allPassed})
	}
	return verdicts
}
