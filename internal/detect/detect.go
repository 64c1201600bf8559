// Package detect sniffs stdin to determine the input format.
package detect

import (
	"encoding/json"
)

// Format represents a recognized input format.
type Format int

// Input formats stylelab congrats understands.
const (
	Unknown    Format = iota
	Aggregated        // single JSON document with a testResults array
	GoTestJSON        // go test -json NDJSON stream
)

func (f Format) String() string {
	switch f {
	case Aggregated:
		return "aggregated"
	case GoTestJSON:
		return "go-test-json"
	default:
		return "unknown"
	}
}

// Sniff examines the first bytes of input to determine format.
// Returns the detected format. Input must contain at least the first line.
func Sniff(data []byte) Format {
	// Trim leading whitespace
	for len(data) > 0 && (data[0] == ' ' || data[0] == '\t' || data[0] == '\n' || data[0] == '\r') {
		data = data[1:]
	}
	if len(data) == 0 {
		return Unknown
	}

	// Must start with '{' for either format
	if data[0] != '{' {
		return Unknown
	}

	// The aggregated form is one complete document; go test -json is one
	// object per line, so it never parses as a whole.
	if isAggregated(data) {
		return Aggregated
	}

	if isGoTestJSON(data) {
		return GoTestJSON
	}

	return Unknown
}

func isAggregated(data []byte) bool {
	var probe struct {
		TestResults []json.RawMessage `json:"testResults"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.TestResults != nil
}

func isGoTestJSON(data []byte) bool {
	// Find first complete line
	end := 0
	for end < len(data) && data[end] != '\n' {
		end++
	}
	firstLine := data[:end]

	var event struct {
		Action  string `json:"Action"`
		Package string `json:"Package"`
	}
	if err := json.Unmarshal(firstLine, &event); err != nil {
		return false
	}

	validActions := map[string]bool{
		"start": true, "run": true, "pause": true, "cont": true,
		"pass": true, "bench": true, "fail": true, "output": true, "skip": true,
	}
	return validActions[event.Action]
}
