package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name      string
	Primary   lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Bold      lipgloss.Style
	Celebrate lipgloss.Style
	Icons     ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Pass   string
	Fail   string
	Warn   string
	Info   string
	Bullet string
}

// ANSIRenderer returns a lipgloss renderer for w that always emits basic
// 16-colour ANSI sequences, whether or not w is a terminal. Test runners
// pipe their reporters' output, so profile detection would strip colour.
func ANSIRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(termenv.ANSI))
	r.SetColorProfile(termenv.ANSI)
	return r
}

// NewTheme builds the named theme against renderer r.
// Unknown names fall back to the default theme.
func NewTheme(name string, r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	switch name {
	case "orca":
		return Theme{
			Name:      "orca",
			Primary:   r.NewStyle().Foreground(lipgloss.Color("75")),  // pale blue
			Success:   r.NewStyle().Foreground(lipgloss.Color("108")), // sage green
			Warning:   r.NewStyle().Foreground(lipgloss.Color("179")), // muted gold
			Error:     r.NewStyle().Foreground(lipgloss.Color("167")), // muted red
			Muted:     r.NewStyle().Foreground(lipgloss.Color("245")),
			Bold:      r.NewStyle().Bold(true),
			Celebrate: r.NewStyle().Foreground(lipgloss.Color("2")),
			Icons:     ThemeIcons{Pass: "✓", Fail: "✗", Warn: "!", Info: "·", Bullet: "·"},
		}
	case "mono":
		return Theme{
			Name:      "mono",
			Primary:   r.NewStyle(),
			Success:   r.NewStyle(),
			Warning:   r.NewStyle(),
			Error:     r.NewStyle(),
			Muted:     r.NewStyle(),
			Bold:      r.NewStyle(),
			Celebrate: r.NewStyle(),
			Icons:     ThemeIcons{Pass: "+", Fail: "x", Warn: "!", Info: "*", Bullet: "-"},
		}
	default:
		return Theme{
			Name:      "default",
			Primary:   r.NewStyle().Foreground(lipgloss.Color("39")),  // blue
			Success:   r.NewStyle().Foreground(lipgloss.Color("34")),  // green
			Warning:   r.NewStyle().Foreground(lipgloss.Color("214")), // orange
			Error:     r.NewStyle().Foreground(lipgloss.Color("196")), // red
			Muted:     r.NewStyle().Foreground(lipgloss.Color("242")), // gray
			Bold:      r.NewStyle().Bold(true),
			Celebrate: r.NewStyle().Foreground(lipgloss.Color("2")), // ANSI green, SGR 32
			Icons:     ThemeIcons{Pass: "✓", Fail: "✗", Warn: "⚠", Info: "●", Bullet: "·"},
		}
	}
}

// DefaultTheme returns the vibrant theme on the default renderer.
func DefaultTheme() Theme {
	return NewTheme("default", nil)
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return NewTheme("mono", nil)
}

// ThemeByName returns a theme by name on the default renderer.
func ThemeByName(name string) Theme {
	return NewTheme(name, nil)
}
