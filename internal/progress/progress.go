// Package progress shows a live spinner and progress bar while scenarios
// run in a terminal.
package progress

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/dkoosis/stylelab/pkg/render"
	"github.com/dkoosis/stylelab/pkg/scenario"
)

const barWidth = 30

type startMsg struct{ id string }

type resultMsg struct {
	id     string
	passed bool
}

type finishMsg struct{}

// Model is the bubbletea model for a scenario run.
type Model struct {
	total    int
	done     int
	failed   []string
	current  string
	finished bool

	spinner spinner.Model
	bar     progress.Model
	theme   render.Theme
}

// NewModel returns a model for total scenarios styled with theme.
func NewModel(total int, theme render.Theme) Model {
	barOpts := []progress.Option{progress.WithWidth(barWidth), progress.WithoutPercentage()}
	if theme.Name == "mono" {
		barOpts = append(barOpts, progress.WithColorProfile(termenv.Ascii))
	} else {
		barOpts = append(barOpts, progress.WithDefaultGradient())
	}
	return Model{
		total:   total,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.Primary)),
		bar:     progress.New(barOpts...),
		theme:   theme,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		m.current = msg.id
	case resultMsg:
		m.done++
		if !msg.passed {
			m.failed = append(m.failed, msg.id)
		}
		if m.current == msg.id {
			m.current = ""
		}
	case finishMsg:
		m.finished = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.finished {
		return ""
	}
	var sb strings.Builder
	percent := 0.0
	if m.total > 0 {
		percent = float64(m.done) / float64(m.total)
	}
	fmt.Fprintf(&sb, "%s %s %d/%d", m.spinner.View(), m.bar.ViewAs(percent), m.done, m.total)
	if n := len(m.failed); n > 0 {
		sb.WriteString("  " + m.theme.Error.Render(fmt.Sprintf("%s %d failed", m.theme.Icons.Fail, n)))
	}
	if m.current != "" {
		sb.WriteString("  " + m.theme.Muted.Render(m.current))
	}
	sb.WriteString("\n")
	return sb.String()
}

// Tracker drives a Model in a background bubbletea program. Its methods
// match the scenario.Runner hooks.
type Tracker struct {
	program *tea.Program
	exited  chan error
}

// Start begins rendering to w. Stop must be called to release the terminal.
func Start(w io.Writer, total int, theme render.Theme) *Tracker {
	t := &Tracker{
		program: tea.NewProgram(NewModel(total, theme),
			tea.WithOutput(w),
			tea.WithInput(nil),
			tea.WithoutSignalHandler(),
		),
		exited: make(chan error, 1),
	}
	go func() {
		_, err := t.program.Run()
		t.exited <- err
	}()
	return t
}

// Started marks sc as running.
func (t *Tracker) Started(sc scenario.Scenario) {
	t.program.Send(startMsg{id: sc.ID()})
}

// Finished records a completed scenario.
func (t *Tracker) Finished(r scenario.Result) {
	t.program.Send(resultMsg{id: r.Scenario.ID(), passed: r.Passed()})
}

// Stop clears the view and waits for the program to exit.
func (t *Tracker) Stop() error {
	t.program.Send(finishMsg{})
	err := <-t.exited
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
