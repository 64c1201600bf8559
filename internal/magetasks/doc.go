// Package magetasks provides the build, test, lint and visual-suite tasks
// used by the Magefile.
//
// Tasks print section headers and status lines through the console helpers
// and shell out to the go toolchain through Run. The Visual task runs the
// headless state-styling suite and renders its results with the same
// reporter stylelab uses for `stylelab congrats`.
package magetasks
