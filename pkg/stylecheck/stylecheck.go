// Package stylecheck compares computed style snapshots against expectations.
//
// Computed colours and transforms vary in form across browser builds
// (rgb vs rgba, matrix vs matrix3d), so expectations choose how strict to be:
// exact equality, substring containment, a regular expression, a suffix, or
// a change relative to a baseline read taken before a state transition.
package stylecheck

import (
	"fmt"
	"regexp"
	"strings"
)

// Snapshot maps CSS property names (camelCase, as CSSStyleDeclaration
// exposes them) to their resolved values at one point in time.
type Snapshot map[string]string

// Op is the comparison an Expectation applies.
type Op string

// Ops, worded as they appear in mismatch messages.
const (
	OpEqual     Op = "equals"
	OpContains  Op = "contains"
	OpMatches   Op = "matches"
	OpHasSuffix Op = "ends with"
	OpNotEmpty  Op = "is set"
	OpChanged   Op = "changed from"
)

// Expectation is a single assertion about one property.
type Expectation struct {
	Property string
	Op       Op
	Want     string

	re *regexp.Regexp
}

// Equal expects property to resolve to exactly want.
func Equal(property, want string) Expectation {
	return Expectation{Property: property, Op: OpEqual, Want: want}
}

// Contains expects property to contain want.
func Contains(property, want string) Expectation {
	return Expectation{Property: property, Op: OpContains, Want: want}
}

// Matches expects property to match the regular expression expr.
// It panics if expr does not compile, like regexp.MustCompile.
func Matches(property, expr string) Expectation {
	return Expectation{Property: property, Op: OpMatches, Want: expr, re: regexp.MustCompile(expr)}
}

// HasSuffix expects property to end with want.
func HasSuffix(property, want string) Expectation {
	return Expectation{Property: property, Op: OpHasSuffix, Want: want}
}

// NotEmpty expects property to resolve to any non-empty value.
func NotEmpty(property string) Expectation {
	return Expectation{Property: property, Op: OpNotEmpty}
}

// Changed expects property to differ from its baseline value.
func Changed(property string) Expectation {
	return Expectation{Property: property, Op: OpChanged}
}

// Mismatch describes a failed expectation.
type Mismatch struct {
	Selector string
	Property string
	Op       Op
	Want     string
	Got      string
}

func (m *Mismatch) Error() string {
	want := m.Want
	if want != "" {
		want = " " + want
	}
	return fmt.Sprintf("%s %s: want %s%s, got %q", m.Selector, m.Property, m.Op, want, m.Got)
}

// Eval applies e to current. baseline is consulted only by OpChanged.
func (e Expectation) Eval(selector string, current, baseline Snapshot) *Mismatch {
	got, ok := current[e.Property]
	var pass bool
	switch e.Op {
	case OpEqual:
		pass = ok && got == e.Want
	case OpContains:
		pass = ok && strings.Contains(got, e.Want)
	case OpMatches:
		re := e.re
		if re == nil {
			re = regexp.MustCompile(e.Want)
		}
		pass = ok && re.MatchString(got)
	case OpHasSuffix:
		pass = ok && strings.HasSuffix(got, e.Want)
	case OpNotEmpty:
		pass = ok && got != ""
	case OpChanged:
		before, had := baseline[e.Property]
		pass = ok && had && got != before
		if !pass {
			return &Mismatch{Selector: selector, Property: e.Property, Op: e.Op, Want: fmt.Sprintf("%q", before), Got: got}
		}
	}
	if pass {
		return nil
	}
	return &Mismatch{Selector: selector, Property: e.Property, Op: e.Op, Want: e.Want, Got: got}
}

// Check evaluates every expectation independently and returns the failures.
func Check(selector string, current, baseline Snapshot, exps ...Expectation) []*Mismatch {
	var out []*Mismatch
	for _, e := range exps {
		if m := e.Eval(selector, current, baseline); m != nil {
			out = append(out, m)
		}
	}
	return out
}

// NeedsBaseline reports whether any expectation compares against a baseline.
func NeedsBaseline(exps []Expectation) bool {
	for _, e := range exps {
		if e.Op == OpChanged {
			return true
		}
	}
	return false
}

// Properties returns the distinct properties the expectations read, in order.
func Properties(exps []Expectation) []string {
	seen := make(map[string]bool, len(exps))
	var props []string
	for _, e := range exps {
		if !seen[e.Property] {
			seen[e.Property] = true
			props = append(props, e.Property)
		}
	}
	return props
}
