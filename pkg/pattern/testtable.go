package pattern

// TestTable represents scenario results for one section of the suite.
type TestTable struct {
	Label   string
	Results []TestTableItem
}

// TestTableItem is a single scenario result.
type TestTableItem struct {
	Name     string // scenario name
	Status   string // "pass", "fail"
	Duration string // formatted duration
	Details  string // mismatches or error text, one per line
}

func (t *TestTable) Type() PatternType { return PatternTypeTestTable }
