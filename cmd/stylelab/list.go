package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/dkoosis/stylelab/pkg/scenario"
)

const flagLong = "long"

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List scenario ids, usable with run --filter",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: flagLong, Aliases: []string{"l"}, Usage: "Show actions and probed selectors in a table"},
		},
		Action: func(c *cli.Context) error {
			scs := scenario.Catalog()
			if c.Bool(flagLong) {
				renderCatalogTable(c, scs)
				return nil
			}
			for _, sc := range scs {
				fmt.Fprintln(c.App.Writer, sc.ID())
			}
			return nil
		},
	}
}

func renderCatalogTable(c *cli.Context, scs []scenario.Scenario) {
	t := table.NewWriter()
	t.SetOutputMirror(c.App.Writer)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Section", "Scenario", "Actions", "Probes", "Settle"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Actions", WidthMax: 40, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Probes", WidthMax: 40, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Settle", Align: text.AlignRight},
	})

	for i, section := range scenario.Sections(scs) {
		if i > 0 {
			t.AppendSeparator()
		}
		for _, sc := range lo.Filter(scs, func(s scenario.Scenario, _ int) bool { return s.Section == section }) {
			actions := lo.Map(sc.Actions, func(a scenario.Action, _ int) string { return a.String() })
			probes := lo.Uniq(lo.Map(sc.Probes, func(p scenario.Probe, _ int) string { return p.Selector }))
			settle := "-"
			if sc.Settle > 0 {
				settle = sc.Settle.String()
			}
			t.AppendRow(table.Row{section, sc.Name, strings.Join(actions, ", "), strings.Join(probes, ", "), settle})
		}
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d scenarios", len(scs)), "", "", ""})
	t.Render()
}
