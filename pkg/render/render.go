// Package render provides output renderers for stylelab's result patterns.
package render

import "github.com/dkoosis/stylelab/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}

const (
	statusPass = "pass"
	statusFail = "fail"
)
