package mapper

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/stylelab/pkg/pattern"
	"github.com/dkoosis/stylelab/pkg/scenario"
)

var (
	upper = cases.Upper(language.English)
	title = cases.Title(language.English)
)

// FromResults converts scenario results into a Summary followed by one
// TestTable per section, in the order sections first appear.
func FromResults(results []scenario.Result, elapsed time.Duration) []pattern.Pattern {
	var passed, failed, errored int
	bySection := map[string][]pattern.TestTableItem{}
	sectionFails := map[string]int{}
	var order []string

	for _, r := range results {
		sec := r.Scenario.Section
		if _, ok := bySection[sec]; !ok {
			order = append(order, sec)
		}
		item := pattern.TestTableItem{
			Name:     title.String(r.Scenario.Name),
			Status:   statusPass,
			Duration: formatDuration(r.Duration),
		}
		switch {
		case r.Err != nil:
			errored++
			item.Status = statusFail
		case len(r.Mismatches) > 0:
			failed++
			item.Status = statusFail
		default:
			passed++
		}
		if item.Status == statusFail {
			sectionFails[sec]++
			item.Details = strings.Join(r.Failures(), "\n")
		}
		bySection[sec] = append(bySection[sec], item)
	}

	total := len(results)
	ok := failed == 0 && errored == 0
	label := fmt.Sprintf("PASS %d scenarios (%s)", total, formatDuration(elapsed))
	if !ok {
		label = fmt.Sprintf("FAIL %d/%d scenarios (%s)", failed+errored, total, formatDuration(elapsed))
	}

	metrics := []pattern.SummaryItem{}
	if failed > 0 {
		metrics = append(metrics, pattern.SummaryItem{Label: "Mismatched", Value: fmt.Sprintf("%d", failed), Kind: kindError})
	}
	if errored > 0 {
		metrics = append(metrics, pattern.SummaryItem{Label: "Errored", Value: fmt.Sprintf("%d", errored), Kind: kindError})
	}
	passKind := kindSuccess
	if !ok {
		passKind = kindInfo
	}
	metrics = append(metrics,
		pattern.SummaryItem{Label: "Passed", Value: fmt.Sprintf("%d/%d", passed, total), Kind: passKind},
		pattern.SummaryItem{Label: "Sections", Value: fmt.Sprintf("%d", len(order)), Kind: kindInfo},
	)

	patterns := []pattern.Pattern{&pattern.Summary{Label: label, Passed: ok, Metrics: metrics}}
	for _, sec := range order {
		items := bySection[sec]
		patterns = append(patterns, &pattern.TestTable{
			Label:   fmt.Sprintf("%s (%d/%d)", upper.String(sec), len(items)-sectionFails[sec], len(items)),
			Results: items,
		})
	}
	return patterns
}
