// Package mapper converts domain results into render patterns.
package mapper

const (
	statusFail = "fail"
	statusPass = "pass"

	kindSuccess = "success"
	kindError   = "error"
	kindWarning = "warning"
	kindInfo    = "info"
)
