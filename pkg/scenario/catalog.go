package scenario

import (
	"time"

	"github.com/dkoosis/stylelab/pkg/browser"
	"github.com/dkoosis/stylelab/pkg/stylecheck"
)

// Catalog sections, in run order.
const (
	SectionGlobal        = "Global Styles"
	SectionNavigation    = "Navigation Styles"
	SectionLayout        = "Main Layout"
	SectionCards         = "Card Styles"
	SectionButtons       = "Button Styles"
	SectionResponsive    = "Responsive Design"
	SectionTransitions   = "Transitions and Animations"
	SectionAccessibility = "Accessibility"
)

// liftedTwo is the computed transform of translateY(-2px).
const liftedTwo = "matrix(1, 0, 0, 1, 0, -2)"

func probe(sel string, exps ...stylecheck.Expectation) Probe {
	return Probe{Selector: sel, Source: Computed, Expect: exps}
}

// Catalog returns the lab's style scenarios in run order.
func Catalog() []Scenario {
	return []Scenario{
		{
			Section: SectionGlobal, Name: "global reset",
			Probes: []Probe{probe("*",
				stylecheck.Equal("margin", "0px"),
				stylecheck.Equal("padding", "0px"),
				stylecheck.Equal("boxSizing", "border-box"),
				stylecheck.Contains("fontFamily", "Roboto"),
			)},
		},
		{
			Section: SectionGlobal, Name: "body",
			Probes: []Probe{probe("body",
				stylecheck.Equal("maxWidth", "1200px"),
				stylecheck.Equal("padding", "20px"),
				stylecheck.Equal("lineHeight", "25px"),
				stylecheck.Equal("minHeight", "800px"),
				stylecheck.Contains("background", "linear-gradient"),
			)},
		},

		{
			Section: SectionNavigation, Name: "navbar",
			Probes: []Probe{probe(".navbar",
				stylecheck.Equal("backgroundColor", "rgb(44, 62, 80)"),
				stylecheck.Equal("borderRadius", "8px"),
				stylecheck.Equal("overflow", "hidden"),
				stylecheck.Equal("padding", "0px"),
			)},
		},
		{
			Section: SectionNavigation, Name: "flex list",
			Probes: []Probe{probe(".navbar ul",
				stylecheck.Equal("display", "flex"),
				stylecheck.Equal("listStyle", "outside none none"),
				stylecheck.Equal("margin", "0px"),
				stylecheck.Equal("padding", "0px"),
			)},
		},
		{
			Section: SectionNavigation, Name: "links",
			Probes: []Probe{probe(".navbar a",
				stylecheck.Equal("display", "block"),
				stylecheck.Equal("color", "rgb(236, 240, 241)"),
				stylecheck.Contains("textDecoration", "none"),
				stylecheck.Equal("padding", "15px 20px"),
				stylecheck.Equal("textAlign", "center"),
				stylecheck.Equal("fontSize", "24px"),
			)},
		},
		{
			Section: SectionNavigation, Name: "link hover",
			Actions: []Action{WaitFor(".navbar a"), Hover(".navbar a")},
			Settle:  300 * time.Millisecond,
			Probes: []Probe{probe(".navbar a",
				stylecheck.Matches("backgroundColor", `rgba?\(52,\s*152,\s*219`),
				stylecheck.Matches("color", `rgba?\(255,\s*255,\s*255`),
			)},
		},
		{
			Section: SectionNavigation, Name: "link focus",
			Actions: []Action{Click(".navbar a")},
			Settle:  500 * time.Millisecond,
			Probes: []Probe{probe(".navbar a",
				stylecheck.Matches("backgroundColor", `rgba?\(231,\s*76,\s*60`),
				stylecheck.Contains("backgroundColor", "231, 76, 60"),
				stylecheck.Equal("outlineStyle", "solid"),
				stylecheck.Contains("outlineWidth", "2px"),
			)},
		},

		{
			Section: SectionLayout, Name: "grid",
			Probes: []Probe{probe("main",
				stylecheck.Equal("display", "grid"),
				stylecheck.Contains("gridTemplateColumns", "370px 370px 370px"),
				stylecheck.Equal("gap", "25px"),
				stylecheck.Equal("marginTop", "20px"),
			)},
		},

		{
			Section: SectionCards, Name: "section base",
			Probes: []Probe{probe("section",
				stylecheck.Contains("background", "rgb(255, 255, 255)"),
				stylecheck.Equal("borderRadius", "12px"),
				stylecheck.Contains("boxShadow", "rgba(0, 0, 0, 0.1)"),
				stylecheck.Equal("overflow", "hidden"),
			)},
		},
		{
			Section: SectionCards, Name: "content padding",
			Probes:  []Probe{probe(".card-content", stylecheck.Equal("padding", "20px"))},
		},
		{
			Section: SectionCards, Name: "heading",
			Probes: []Probe{probe(".card h2",
				stylecheck.Equal("color", "rgb(44, 62, 80)"),
				stylecheck.Equal("marginBottom", "10px"),
				stylecheck.Equal("fontSize", "32px"),
			)},
		},
		{
			Section: SectionCards, Name: "paragraph",
			Probes: []Probe{probe(".card p",
				stylecheck.Equal("color", "rgb(127, 140, 141)"),
				stylecheck.Equal("marginBottom", "20px"),
				stylecheck.Equal("fontSize", "18px"),
			)},
		},
		{
			Section: SectionCards, Name: "hover lift",
			Actions: []Action{Hover(".card")},
			Settle:  350 * time.Millisecond,
			Probes: []Probe{probe(".card",
				stylecheck.Changed("transform"),
				stylecheck.Contains("transform", "matrix"),
				stylecheck.HasSuffix("transform", ", -5)"),
			)},
		},
		{
			Section: SectionCards, Name: "image",
			Probes: []Probe{probe(".card img",
				stylecheck.Contains("width", "px"),
				stylecheck.Equal("height", "200px"),
				stylecheck.Equal("objectFit", "cover"),
			)},
		},

		{
			Section: SectionButtons, Name: "container",
			Probes: []Probe{probe(".card-buttons",
				stylecheck.Equal("display", "flex"),
				stylecheck.Equal("gap", "10px"),
			)},
		},
		{
			Section: SectionButtons, Name: "base",
			Probes: []Probe{probe(".btn",
				stylecheck.Equal("padding", "10px 20px"),
				stylecheck.Equal("border", "0px none rgb(255, 255, 255)"),
				stylecheck.Equal("borderRadius", "6px"),
				stylecheck.Equal("cursor", "pointer"),
				stylecheck.Equal("fontSize", "20px"),
				stylecheck.Equal("fontWeight", "500"),
				stylecheck.Equal("flex", "1 1 0%"),
				stylecheck.Equal("textAlign", "center"),
			)},
		},
		{
			Section: SectionButtons, Name: "primary",
			Probes: []Probe{probe(".btn-primary",
				stylecheck.Equal("backgroundColor", "rgb(52, 152, 219)"),
				stylecheck.Equal("color", "rgb(255, 255, 255)"),
			)},
		},
		{
			Section: SectionButtons, Name: "secondary",
			Probes: []Probe{probe(".btn-secondary",
				stylecheck.Equal("backgroundColor", "rgb(149, 165, 166)"),
				stylecheck.Equal("color", "rgb(255, 255, 255)"),
			)},
		},
		{
			Section: SectionButtons, Name: "primary hover",
			Actions: []Action{Hover(".btn-primary")},
			Settle:  350 * time.Millisecond,
			Probes: []Probe{probe(".btn-primary",
				stylecheck.Changed("backgroundColor"),
				stylecheck.Equal("backgroundColor", "rgb(41, 128, 185)"),
				stylecheck.Contains("transform", liftedTwo),
			)},
		},
		{
			Section: SectionButtons, Name: "secondary hover",
			Actions: []Action{Hover(".btn-secondary")},
			Settle:  350 * time.Millisecond,
			Probes: []Probe{probe(".btn-secondary",
				stylecheck.Equal("backgroundColor", "rgb(127, 140, 141)"),
				stylecheck.Contains("transform", liftedTwo),
			)},
		},
		{
			Section: SectionButtons, Name: "focus ring",
			Actions: []Action{WaitFor(".btn"), Focus(".btn")},
			Settle:  500 * time.Millisecond,
			Probes: []Probe{probe(".btn",
				stylecheck.Equal(browser.FocusedProp, "true"),
				stylecheck.Equal("outlineColor", "rgb(243, 156, 18)"),
				stylecheck.Equal("outlineWidth", "3px"),
				stylecheck.Equal("outlineStyle", "solid"),
			)},
		},
		{
			// :active only holds while the button is pressed, so the state
			// is applied inline and read back from the style attribute.
			Section: SectionButtons, Name: "primary active (inline stand-in)",
			Actions: []Action{
				Click(".btn-primary"),
				SimulateActive(".btn-primary", "active-state", map[string]string{
					"backgroundColor": "#21618c",
					"transform":       "translateY(0)",
				}),
			},
			Probes: []Probe{{
				Selector: ".btn-primary",
				Source:   Inline,
				Expect: []stylecheck.Expectation{
					stylecheck.Equal("backgroundColor", "rgb(33, 97, 140)"),
					stylecheck.Equal("transform", "translateY(0px)"),
				},
			}},
		},

		{
			Section: SectionResponsive, Name: "mobile",
			Actions: []Action{Resize(320, 568)},
			Settle:  100 * time.Millisecond,
			Probes:  []Probe{probe("main", stylecheck.Contains("gridTemplateColumns", "300px"))},
		},
		{
			Section: SectionResponsive, Name: "tablet",
			Actions: []Action{Resize(768, 1024)},
			Settle:  100 * time.Millisecond,
			Probes:  []Probe{probe("main", stylecheck.NotEmpty("gridTemplateColumns"))},
		},
		{
			Section: SectionResponsive, Name: "large screen",
			Actions: []Action{Resize(1920, 1080)},
			Settle:  100 * time.Millisecond,
			Probes:  []Probe{probe("body", stylecheck.Equal("maxWidth", "1200px"))},
		},

		{
			Section: SectionTransitions, Name: "transition durations",
			Probes: []Probe{
				probe("section", stylecheck.Contains("transition", "0.3s")),
				probe(".btn", stylecheck.Contains("transition", "0.3s")),
				probe(".navbar a", stylecheck.Contains("transition", "0.3s")),
			},
		},
		{
			Section: SectionTransitions, Name: "card hover animates",
			Actions: []Action{Hover(".card")},
			Settle:  200 * time.Millisecond,
			Probes: []Probe{probe(".card",
				stylecheck.Changed("transform"),
				stylecheck.Changed("boxShadow"),
				stylecheck.Contains("transform", "matrix"),
				stylecheck.Contains("boxShadow", "rgba"),
			)},
		},

		{
			Section: SectionAccessibility, Name: "text colors",
			Probes: []Probe{
				probe(".card h2", stylecheck.Equal("color", "rgb(44, 62, 80)")),
				probe(".card p", stylecheck.Equal("color", "rgb(127, 140, 141)")),
				probe(".navbar a", stylecheck.Equal("color", "rgb(236, 240, 241)")),
			},
		},
	}
}
