package scenario

import (
	"testing"

	"go.uber.org/goleak"
)

// Runner owns per-scenario contexts and pages; none may outlive a run.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
