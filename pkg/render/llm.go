package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/stylelab/pkg/pattern"
)

// maxDetailLines bounds how many mismatch lines are printed per scenario.
const maxDetailLines = 3

// LLM renders patterns as terse plain text optimized for AI consumption.
// Zero ANSI codes, SCOPE line first, failures only.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats all patterns for LLM consumption.
func (l *LLM) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder

	for _, p := range patterns {
		if s, ok := p.(*pattern.Summary); ok {
			sb.WriteString("SCOPE: " + s.Label + "\n")
		}
	}

	for _, p := range patterns {
		t, ok := p.(*pattern.TestTable)
		if !ok {
			continue
		}
		var failed []pattern.TestTableItem
		for _, item := range t.Results {
			if item.Status == statusFail {
				failed = append(failed, item)
			}
		}
		if len(failed) == 0 {
			continue
		}
		sb.WriteString("\n## " + t.Label + "\n")
		for _, item := range failed {
			sb.WriteString("  FAIL " + item.Name + "\n")
			if item.Details == "" {
				continue
			}
			lines := strings.Split(item.Details, "\n")
			n := min(len(lines), maxDetailLines)
			for _, line := range lines[:n] {
				sb.WriteString("    " + line + "\n")
			}
			if len(lines) > maxDetailLines {
				sb.WriteString(fmt.Sprintf("    ... (%d more lines)\n", len(lines)-maxDetailLines))
			}
		}
	}

	return sb.String()
}
