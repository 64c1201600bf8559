package magetasks

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrToolMissing is returned when a task needs an executable that is not
// installed.
var ErrToolMissing = errors.New("tool not installed")

// installHints tells the user how to get the optional tools tasks use.
var installHints = map[string]string{
	"staticcheck":   "go install honnef.co/go/tools/cmd/staticcheck@latest",
	"golangci-lint": "go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
	"chrome":        "install Chrome or chrome-headless-shell, or set STYLELAB_CHROME",
}

// Run prints a header for label and runs name with args, streaming its
// output to Out. A missing executable yields ErrToolMissing.
func Run(label, name string, args ...string) error {
	PrintH2Header(label)
	if _, err := exec.LookPath(name); err != nil {
		return toolMissing(name)
	}
	cmd := exec.Command(name, args...)
	cmd.Stdout = Out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		PrintError(label + " failed")
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	PrintSuccess(label + " ok")
	return nil
}

// toolMissing warns with the install hint for name, if one is known.
func toolMissing(name string) error {
	msg := name + " not found"
	if hint, ok := installHints[name]; ok {
		msg += " (" + hint + ")"
	}
	PrintWarning(msg)
	return fmt.Errorf("%w: %s", ErrToolMissing, name)
}
