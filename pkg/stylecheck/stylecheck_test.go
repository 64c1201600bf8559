package stylecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectation_Eval(t *testing.T) {
	snap := Snapshot{
		"backgroundColor": "rgba(52, 152, 219, 1)",
		"transform":       "matrix(1, 0, 0, 1, 0, -5)",
		"gap":             "25px",
		"empty":           "",
	}
	tests := []struct {
		name string
		exp  Expectation
		pass bool
	}{
		{"equal", Equal("gap", "25px"), true},
		{"equal mismatch", Equal("gap", "20px"), false},
		{"equal missing property", Equal("margin", ""), false},
		{"contains", Contains("transform", "matrix"), true},
		{"contains mismatch", Contains("transform", "matrix3d"), false},
		{"matches rgba", Matches("backgroundColor", `rgba?\(52,\s*152,\s*219`), true},
		{"matches mismatch", Matches("backgroundColor", `^rgb\(`), false},
		{"suffix", HasSuffix("transform", ", -5)"), true},
		{"suffix mismatch", HasSuffix("transform", ", -2)"), false},
		{"not empty", NotEmpty("gap"), true},
		{"not empty on empty", NotEmpty("empty"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.exp.Eval(".card", snap, nil)
			if tt.pass {
				assert.Nil(t, m)
			} else {
				assert.NotNil(t, m)
			}
		})
	}
}

func TestChanged(t *testing.T) {
	before := Snapshot{"transform": "none"}

	assert.Nil(t, Changed("transform").Eval(".card", Snapshot{"transform": "matrix(1, 0, 0, 1, 0, -5)"}, before))

	m := Changed("transform").Eval(".card", Snapshot{"transform": "none"}, before)
	require.NotNil(t, m)
	assert.Equal(t, `.card transform: want changed from "none", got "none"`, m.Error())

	assert.NotNil(t, Changed("transform").Eval(".card", Snapshot{"transform": "x"}, nil), "no baseline cannot prove a change")
}

func TestMismatch_Error(t *testing.T) {
	m := Equal("backgroundColor", "rgb(44, 62, 80)").Eval(".navbar", Snapshot{"backgroundColor": "rgb(0, 0, 0)"}, nil)
	require.NotNil(t, m)
	assert.Equal(t, `.navbar backgroundColor: want equals rgb(44, 62, 80), got "rgb(0, 0, 0)"`, m.Error())

	m = NotEmpty("gridTemplateColumns").Eval("main", Snapshot{}, nil)
	require.NotNil(t, m)
	assert.Equal(t, `main gridTemplateColumns: want is set, got ""`, m.Error())
}

func TestCheck_CollectsIndependentFailures(t *testing.T) {
	snap := Snapshot{"outlineStyle": "solid", "outlineWidth": "1px", "outlineColor": "red"}
	got := Check(".btn", snap, nil,
		Equal("outlineStyle", "solid"),
		Equal("outlineWidth", "3px"),
		Equal("outlineColor", "rgb(243, 156, 18)"),
	)
	require.Len(t, got, 2)
	assert.Equal(t, "outlineWidth", got[0].Property)
	assert.Equal(t, "outlineColor", got[1].Property)
}

func TestNeedsBaselineAndProperties(t *testing.T) {
	exps := []Expectation{Contains("transform", "matrix"), Changed("transform"), Changed("boxShadow")}
	assert.True(t, NeedsBaseline(exps))
	assert.False(t, NeedsBaseline(exps[:1]))
	assert.Equal(t, []string{"transform", "boxShadow"}, Properties(exps))
}

func TestMatches_PanicsOnBadExpression(t *testing.T) {
	assert.Panics(t, func() { Matches("color", "(") })
}
