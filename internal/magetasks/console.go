package magetasks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dkoosis/stylelab/pkg/render"
)

// Out receives all console output from tasks.
var Out io.Writer = os.Stdout

var consoleTheme = render.DefaultTheme()

const headerWidth = 80

// PrintH1Header prints a top-level header with decoration.
func PrintH1Header(title string) {
	rule := strings.Repeat("=", headerWidth)
	padding := max((headerWidth-len(title))/2, 0)
	fmt.Fprintf(Out, "\n%s\n%s%s\n%s\n\n", rule, strings.Repeat(" ", padding), consoleTheme.Bold.Render(title), rule)
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Fprintf(Out, "\n=== %s ===\n\n", consoleTheme.Bold.Render(title))
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	printStatus(consoleTheme.Icons.Pass, consoleTheme.Success.Render(msg))
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	printStatus(consoleTheme.Icons.Warn, consoleTheme.Warning.Render(msg))
}

// PrintError prints an error message.
func PrintError(msg string) {
	printStatus(consoleTheme.Icons.Fail, consoleTheme.Error.Render(msg))
}

// PrintInfo prints an info message.
func PrintInfo(msg string) {
	printStatus(consoleTheme.Icons.Info, msg)
}

func printStatus(icon, msg string) {
	fmt.Fprintf(Out, "%s %s\n", icon, msg)
}
