// Package statestyling holds the browser-driven style suite for the lab
// fixture. It has no exported API; run it with
//
//	go test ./internal/statestyling
//
// The reporter's built-in stateStyling group matches this package path.
package statestyling
