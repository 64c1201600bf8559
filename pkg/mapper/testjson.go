package mapper

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dkoosis/stylelab/pkg/pattern"
	"github.com/dkoosis/stylelab/pkg/testjson"
)

// FromTestJSON converts go test results into patterns: a Summary, one table
// per failing package, then one table of passing packages.
func FromTestJSON(results []testjson.TestPackageResult) []pattern.Pattern {
	stats := testjson.ComputeStats(results)
	patterns := []pattern.Pattern{packageSummary(stats)}

	sorted := make([]testjson.TestPackageResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		pi, pj := pkgPriority(sorted[i]), pkgPriority(sorted[j])
		if pi != pj {
			return pi < pj
		}
		return sorted[i].Name < sorted[j].Name
	})

	var passItems []pattern.TestTableItem
	for _, r := range sorted {
		switch {
		case r.Panicked:
			patterns = append(patterns, &pattern.TestTable{
				Label:   "PANIC " + shortPkgName(r.Name),
				Results: failedItems(r),
			})
		case r.BuildError != "":
			patterns = append(patterns, &pattern.TestTable{
				Label: "BUILD FAIL " + shortPkgName(r.Name),
				Results: []pattern.TestTableItem{{
					Name:    "build",
					Status:  statusFail,
					Details: truncateString(r.BuildError, 300),
				}},
			})
		case r.Failed > 0:
			patterns = append(patterns, &pattern.TestTable{
				Label:   fmt.Sprintf("FAIL %s (%d/%d failed)", shortPkgName(r.Name), r.Failed, r.TotalTests()),
				Results: failedItems(r),
			})
		case r.FailedPkg:
			patterns = append(patterns, &pattern.TestTable{
				Label:   fmt.Sprintf("FAIL %s (package exited after %d passing tests)", shortPkgName(r.Name), r.Passed),
				Results: failedItems(r),
			})
		case r.Status() == statusPass:
			passItems = append(passItems, pattern.TestTableItem{
				Name:     shortPkgName(r.Name),
				Status:   statusPass,
				Duration: formatDuration(r.Duration),
			})
		}
	}
	if len(passItems) > 0 {
		patterns = append(patterns, &pattern.TestTable{
			Label:   fmt.Sprintf("Passing Packages (%d)", len(passItems)),
			Results: passItems,
		})
	}
	return patterns
}

func packageSummary(s testjson.Stats) *pattern.Summary {
	var metrics []pattern.SummaryItem
	if s.Panics > 0 {
		metrics = append(metrics, pattern.SummaryItem{Label: "Panics", Value: fmt.Sprintf("%d", s.Panics), Kind: kindError})
	}
	if s.BuildErrors > 0 {
		metrics = append(metrics, pattern.SummaryItem{Label: "Build Errors", Value: fmt.Sprintf("%d", s.BuildErrors), Kind: kindError})
	}
	if s.Failed > 0 {
		metrics = append(metrics, pattern.SummaryItem{Label: "Failed", Value: fmt.Sprintf("%d/%d tests", s.Failed, s.TotalTests), Kind: kindError})
	}
	if s.Passed > 0 {
		kind := kindSuccess
		if s.Failed > 0 {
			kind = kindInfo
		}
		metrics = append(metrics, pattern.SummaryItem{Label: "Passed", Value: fmt.Sprintf("%d/%d tests", s.Passed, s.TotalTests), Kind: kind})
	}
	if s.Skipped > 0 {
		metrics = append(metrics, pattern.SummaryItem{Label: "Skipped", Value: fmt.Sprintf("%d", s.Skipped), Kind: kindWarning})
	}
	metrics = append(metrics, pattern.SummaryItem{Label: "Packages", Value: fmt.Sprintf("%d", s.Packages), Kind: kindInfo})

	passed := s.FailedPkgs == 0
	label := fmt.Sprintf("PASS (%s)", formatDuration(s.Duration))
	if !passed {
		label = fmt.Sprintf("FAIL %d/%d tests, %d packages affected (%s)",
			s.Failed, s.TotalTests, s.FailedPkgs, formatDuration(s.Duration))
	}
	return &pattern.Summary{Label: label, Passed: passed, Metrics: metrics}
}

func failedItems(r testjson.TestPackageResult) []pattern.TestTableItem {
	items := make([]pattern.TestTableItem, 0, len(r.FailedTests))
	for _, name := range r.FailedTests {
		items = append(items, pattern.TestTableItem{Name: name, Status: statusFail})
	}
	if len(items) == 0 {
		items = append(items, pattern.TestTableItem{Name: "(package)", Status: statusFail})
	}
	return items
}

func pkgPriority(r testjson.TestPackageResult) int {
	switch {
	case r.Panicked:
		return 0
	case r.BuildError != "":
		return 1
	case r.Failed > 0, r.FailedPkg:
		return 2
	default:
		return 3
	}
}

func shortPkgName(name string) string {
	// Strip common module prefix to show relative package path
	for _, prefix := range []string{"/internal/", "/cmd/", "/pkg/"} {
		if idx := strings.Index(name, prefix); idx != -1 {
			return name[idx+1:]
		}
	}
	parts := strings.Split(name, "/")
	if len(parts) > 2 {
		return strings.Join(parts[len(parts)-2:], "/")
	}
	return name
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return "0s"
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
