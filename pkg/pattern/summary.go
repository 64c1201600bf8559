package pattern

// Summary represents the headline of a run: a label plus counted metrics.
type Summary struct {
	Label   string
	Passed  bool
	Metrics []SummaryItem
}

// SummaryItem is a single metric in a summary.
type SummaryItem struct {
	Label string // e.g., "Failed", "Passed", "Scenarios"
	Value string // formatted value
	Kind  string // success, error, warning or info; picks the color
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }
