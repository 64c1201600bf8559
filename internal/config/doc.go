// Package config loads stylelab's settings.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--no-color, --debug, --theme, --fixture, --settle)
//  2. Environment variables (STYLELAB_FIXTURE, STYLELAB_CHROME, STYLELAB_SETTLE,
//     STYLELAB_DEBUG, NO_COLOR)
//  3. YAML config file (.stylelab.yaml in the working directory or
//     ~/.config/stylelab/.stylelab.yaml)
//  4. Hardcoded defaults
//
// # Custom Groups
//
// The reporter's group set can be extended from the file:
//
//	groups:
//	  - name: smoke
//	    contains: [smoke]
//	    globs: ["**/e2e/**"]
//
// Custom groups are appended after the built-in ones, and a file belongs to
// the first group that matches it.
package config
