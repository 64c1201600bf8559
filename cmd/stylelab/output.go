package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/dkoosis/stylelab/pkg/render"
)

// theme returns the configured theme, or mono when colour is off.
func (e *env) theme() render.Theme {
	if e.cfg.NoColor {
		return render.MonoTheme()
	}
	return render.NewTheme(e.cfg.Theme, nil)
}

// celebrationTheme always emits ANSI colour unless colour is disabled:
// the congratulation line is usually piped through a test runner.
func (e *env) celebrationTheme() render.Theme {
	if e.cfg.NoColor {
		return render.MonoTheme()
	}
	return render.NewTheme(e.cfg.Theme, render.ANSIRenderer(e.stdout))
}

// quietLogger drops the per-scenario lines while the progress view owns the
// terminal. Debug logging is left untouched.
func (e *env) quietLogger() *log.Logger {
	if e.cfg.Debug {
		return e.logger
	}
	l := e.logger.With()
	l.SetLevel(log.ErrorLevel)
	return l
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width of w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}

// resolveFormat maps "auto" to terminal on a TTY and llm when piped.
func resolveFormat(format string, w io.Writer) (string, error) {
	switch format {
	case "terminal", "llm", "json":
		return format, nil
	case "", "auto":
		if isTTYWriter(w) {
			return "terminal", nil
		}
		return "llm", nil
	default:
		return "", fmt.Errorf("unknown format %q (expected auto, terminal, llm, json)", format)
	}
}

func (e *env) renderer(mode string) render.Renderer {
	switch mode {
	case "json":
		return render.NewJSON()
	case "llm":
		return render.NewLLM()
	default:
		return render.NewTerminal(e.theme(), termWidth(e.stdout))
	}
}
