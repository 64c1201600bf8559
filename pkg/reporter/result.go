package reporter

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dkoosis/stylelab/pkg/testjson"
)

// FileResult is the file-level outcome the reporter consumes.
// For go test runs FilePath is the package import path.
type FileResult struct {
	FilePath        string `json:"testFilePath"`
	NumFailingTests int    `json:"numFailingTests"`
}

// ErrNoTestResults is returned when an aggregated document lacks testResults.
var ErrNoTestResults = errors.New("aggregated results: missing testResults")

// FromTestJSON converts parsed go test -json packages into file results.
// A package that failed to build, panicked or failed at package level
// without a recorded failing test still counts as failing once.
func FromTestJSON(pkgs []testjson.TestPackageResult) []FileResult {
	out := make([]FileResult, 0, len(pkgs))
	for _, p := range pkgs {
		failing := p.Failed
		if failing == 0 && (p.BuildError != "" || p.Panicked || p.FailedPkg) {
			failing = 1
		}
		out = append(out, FileResult{FilePath: p.Name, NumFailingTests: failing})
	}
	return out
}

// ParseAggregated decodes an aggregated run document of the form
// {"testResults":[{"testFilePath":"...","numFailingTests":0}]}.
func ParseAggregated(data []byte) ([]FileResult, error) {
	var doc struct {
		TestResults []FileResult `json:"testResults"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("aggregated results: %w", err)
	}
	if doc.TestResults == nil {
		return nil, ErrNoTestResults
	}
	return doc.TestResults, nil
}
