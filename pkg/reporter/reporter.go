// Package reporter prints a congratulation for every group of test files
// that passed completely.
package reporter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/dkoosis/stylelab/pkg/render"
)

const congratsFormat = "🎉 Congratulations! Well done for finishing all tests and tasks in: %s🎉"

// Reporter observes a completed run. It only writes; it never alters the
// run's outcome.
type Reporter struct {
	out    io.Writer
	groups []Group
	theme  render.Theme
	logger *log.Logger
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithGroups replaces the built-in group set.
func WithGroups(groups []Group) Option {
	return func(r *Reporter) { r.groups = groups }
}

// WithTheme sets the theme used for the success line.
func WithTheme(t render.Theme) Option {
	return func(r *Reporter) { r.theme = t }
}

// WithLogger sets the logger for classification decisions.
func WithLogger(l *log.Logger) Option {
	return func(r *Reporter) { r.logger = l }
}

// New returns a Reporter writing to out. By default it uses DefaultGroups and
// prints in ANSI green.
func New(out io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		out:    out,
		groups: DefaultGroups(),
		theme:  render.NewTheme("default", render.ANSIRenderer(out)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Groups returns the groups the reporter evaluates.
func (r *Reporter) Groups() []Group {
	return r.groups
}

// OnRunComplete evaluates results and prints one success line per group in
// which every member passed. Groups without members print nothing.
func (r *Reporter) OnRunComplete(results []FileResult) error {
	for _, v := range Evaluate(r.groups, results) {
		r.logger.Debug("group verdict", "group", v.Group.Name, "files", len(v.Members), "passed", v.AllPassed)
		if !v.AllPassed {
			continue
		}
		msg := r.theme.Celebrate.Render(fmt.Sprintf(congratsFormat, v.Group.Name))
		if _, err := fmt.Fprintf(r.out, "\n%s\n\n", msg); err != nil {
			return fmt.Errorf("writing congratulations for %s: %w", v.Group.Name, err)
		}
	}
	return nil
}
