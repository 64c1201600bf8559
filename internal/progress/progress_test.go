package progress

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/stylelab/pkg/render"
	"github.com/dkoosis/stylelab/pkg/scenario"
)

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok)
	return got, cmd
}

func TestModel_CountsAndShowsCurrentScenario(t *testing.T) {
	m := NewModel(3, render.MonoTheme())

	m, _ = step(t, m, startMsg{id: "Navigation Styles/navbar"})
	assert.Contains(t, m.View(), "0/3")
	assert.Contains(t, m.View(), "Navigation Styles/navbar")

	m, _ = step(t, m, resultMsg{id: "Navigation Styles/navbar", passed: true})
	m, _ = step(t, m, startMsg{id: "Button Styles/primary hover"})
	m, _ = step(t, m, resultMsg{id: "Button Styles/primary hover", passed: false})

	view := m.View()
	assert.Contains(t, view, "2/3")
	assert.Contains(t, view, "x 1 failed")
	assert.NotContains(t, view, "primary hover", "finished scenario should leave the status line")
}

func TestModel_FinishQuitsAndClears(t *testing.T) {
	m := NewModel(1, render.MonoTheme())

	m, cmd := step(t, m, finishMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_SpinnerTicks(t *testing.T) {
	m := NewModel(1, render.MonoTheme())
	require.NotNil(t, m.Init())

	_, cmd := step(t, m, m.spinner.Tick())
	assert.NotNil(t, cmd, "spinner should schedule its next frame")
}

func TestModel_ZeroTotal(t *testing.T) {
	assert.Contains(t, NewModel(0, render.MonoTheme()).View(), "0/0")
}

func TestTracker_RunsToCompletion(t *testing.T) {
	var out bytes.Buffer
	tr := Start(&out, 2, render.MonoTheme())

	sc := scenario.Scenario{Section: "Main Layout", Name: "grid"}
	tr.Started(sc)
	tr.Finished(scenario.Result{Scenario: sc})
	require.NoError(t, tr.Stop())
}
