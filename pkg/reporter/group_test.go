package reporter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/stylelab/pkg/testjson"
)

func TestClassify_FirstMatchWins(t *testing.T) {
	groups := []Group{
		{Name: "first", Match: Substring("styling")},
		{Name: "second", Match: Substring("state")},
	}
	results := []FileResult{
		{FilePath: "/x/State-Styling.test.js"},
		{FilePath: "/x/state.test.js"},
		{FilePath: "/x/none.test.js"},
	}

	members := Classify(groups, results)

	want := [][]FileResult{
		{{FilePath: "/x/State-Styling.test.js"}},
		{{FilePath: "/x/state.test.js"}},
	}
	if diff := cmp.Diff(want, members); diff != "" {
		t.Errorf("Classify() mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_SkipsEmptyGroups(t *testing.T) {
	verdicts := Evaluate(DefaultGroups(), []FileResult{{FilePath: "other"}})
	assert.Empty(t, verdicts)
}

func TestEvaluate_AllPassedRequiresEveryMember(t *testing.T) {
	tests := []struct {
		name    string
		failing []int
		want    bool
	}{
		{"single pass", []int{0}, true},
		{"all pass", []int{0, 0, 0}, true},
		{"one fail", []int{0, 4, 0}, false},
		{"all fail", []int{1, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var results []FileResult
			for _, n := range tt.failing {
				results = append(results, FileResult{FilePath: "internal/statestyling", NumFailingTests: n})
			}
			verdicts := Evaluate(DefaultGroups(), results)
			require.Len(t, verdicts, 1)
			assert.Equal(t, tt.want, verdicts[0].AllPassed)
			assert.Len(t, verdicts[0].Members, len(tt.failing))
		})
	}
}

func TestGlob_RejectsInvalidPattern(t *testing.T) {
	_, err := Glob("[unterminated")
	assert.Error(t, err)
}

func TestGlob_IgnoresCase(t *testing.T) {
	m, err := Glob("**/StateStyling")
	require.NoError(t, err)
	assert.True(t, m("github.com/a/internal/statestyling"))
	assert.False(t, m("github.com/a/internal/statestyling/sub"))
}

func TestAny(t *testing.T) {
	m := Any(nil, Substring("a"), Substring("b"))
	assert.True(t, m("xb"))
	assert.False(t, m("xyz"))
}

func TestGroupID_String(t *testing.T) {
	assert.Equal(t, "stateStyling", GroupStateStyling.String())
	assert.Equal(t, "custom", GroupCustom.String())
}

func TestFromTestJSON(t *testing.T) {
	got := FromTestJSON([]testjson.TestPackageResult{
		{Name: "m/internal/statestyling", Passed: 3},
		{Name: "m/pkg/a", Passed: 1, Failed: 2},
		{Name: "m/pkg/broken", BuildError: "syntax error"},
		{Name: "m/pkg/panicky", Panicked: true},
		{Name: "m/pkg/exited", Passed: 4, FailedPkg: true},
	})
	want := []FileResult{
		{FilePath: "m/internal/statestyling", NumFailingTests: 0},
		{FilePath: "m/pkg/a", NumFailingTests: 2},
		{FilePath: "m/pkg/broken", NumFailingTests: 1},
		{FilePath: "m/pkg/panicky", NumFailingTests: 1},
		{FilePath: "m/pkg/exited", NumFailingTests: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromTestJSON() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromTestJSON_PackageLevelFailureIsNotCongratulated(t *testing.T) {
	stream := []byte(`{"Action":"run","Package":"m/internal/statestyling","Test":"TestStateStyling"}
{"Action":"pass","Package":"m/internal/statestyling","Test":"TestStateStyling","Elapsed":0.2}
{"Action":"fail","Package":"m/internal/statestyling","Elapsed":0.3}
`)
	pkgs, _, err := testjson.ParseBytes(stream)
	require.NoError(t, err)

	results := FromTestJSON(pkgs)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].NumFailingTests)

	verdicts := Evaluate(DefaultGroups(), results)
	require.Len(t, verdicts, 1)
	assert.False(t, verdicts[0].AllPassed)
}

func TestParseAggregated(t *testing.T) {
	got, err := ParseAggregated([]byte(`{"numFailedTests":0,"testResults":[
		{"testFilePath":"/repo/lab/test/state-styling.test.js","numFailingTests":0,"numPassingTests":29}
	]}`))
	require.NoError(t, err)
	assert.Equal(t, []FileResult{{FilePath: "/repo/lab/test/state-styling.test.js"}}, got)
}

func TestParseAggregated_Malformed(t *testing.T) {
	_, err := ParseAggregated([]byte(`{"testResults": 3}`))
	assert.Error(t, err)

	_, err = ParseAggregated([]byte(`{}`))
	assert.ErrorIs(t, err, ErrNoTestResults)
}
