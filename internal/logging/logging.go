// Package logging builds the structured logger shared by the CLI, the
// scenario runner and the reporter.
package logging

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Options configures New.
type Options struct {
	Debug   bool
	NoColor bool
	Prefix  string
}

// New returns a leveled logger writing to w. Debug lowers the level from
// info to debug; NoColor drops all styling.
func New(w io.Writer, opts Options) *log.Logger {
	level := log.InfoLevel
	if opts.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: opts.Debug,
	})
	if opts.NoColor {
		logger.SetColorProfile(termenv.Ascii)
		return logger
	}
	logger.SetStyles(styles())
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.DebugLevel] = lipgloss.NewStyle().SetString("DEBUG").Foreground(lipgloss.Color("242"))
	s.Levels[log.InfoLevel] = lipgloss.NewStyle().SetString("INFO").Foreground(lipgloss.Color("39"))
	s.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARN").Foreground(lipgloss.Color("214")).Bold(true)
	s.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERROR").Foreground(lipgloss.Color("196")).Bold(true)
	s.Key = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	return s
}

// Logf adapts logger to a printf-style callback at debug level.
func Logf(logger *log.Logger) func(format string, args ...any) {
	return func(format string, args ...any) {
		logger.Debugf(format, args...)
	}
}
