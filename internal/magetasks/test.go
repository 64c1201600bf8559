package magetasks

// TestAll runs every test, including the headless browser suite.
func TestAll() error {
	return Run("Tests", "go", "test", "./...")
}

// TestShort runs the tests that need no browser.
func TestShort() error {
	return Run("Short Tests", "go", "test", "-short", "./...")
}

// TestCoverage runs tests with coverage and prints the per-function report.
func TestCoverage() error {
	if err := Run("Test Coverage", "go", "test", "-short", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return Run("Coverage Report", "go", "tool", "cover", "-func=coverage.out")
}

// TestRace runs tests with the race detector.
func TestRace() error {
	return Run("Race Detector", "go", "test", "-short", "-race", "./...")
}
