package testjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// ParseStream parses go test -json NDJSON from a reader, line by line.
// Returns the parsed results, the number of malformed lines skipped, and any error.
func ParseStream(r io.Reader) ([]TestPackageResult, int, error) {
	agg := newAggregator()
	scanner := bufio.NewScanner(r)
	// Allow large lines for verbose test output
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var malformed int
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event TestEvent
		if err := json.Unmarshal(line, &event); err != nil {
			malformed++
			continue
		}
		agg.processEvent(event)
	}
	if err := scanner.Err(); err != nil {
		return nil, malformed, fmt.Errorf("scanning test output: %w", err)
	}
	return agg.results(), malformed, nil
}

// ParseBytes is a convenience for parsing from a byte slice.
func ParseBytes(data []byte) ([]TestPackageResult, int, error) {
	return ParseStream(bytes.NewReader(data))
}

type aggregator struct {
	packages map[string]*pkgState
	order    []string
}

type pkgState struct {
	name       string
	passed     int
	failed     int
	skipped    int
	duration   time.Duration
	failedTest []string
	buildError string
	panicked   bool
	failedPkg  bool
	// package-level output, kept for build error reporting
	pkgOutput []string
}

func newAggregator() *aggregator {
	return &aggregator{
		packages: make(map[string]*pkgState),
	}
}

func (a *aggregator) getOrCreate(name string) *pkgState {
	if pkg, ok := a.packages[name]; ok {
		return pkg
	}
	pkg := &pkgState{name: name}
	a.packages[name] = pkg
	a.order = append(a.order, name)
	return pkg
}

func (a *aggregator) processEvent(e TestEvent) {
	pkg := a.getOrCreate(e.Package)
	elapsed := time.Duration(e.Elapsed * float64(time.Second))

	switch e.Action {
	case ActionPass:
		if e.Test != "" {
			pkg.passed++
		} else {
			pkg.duration = elapsed
		}

	case ActionFail:
		if e.Test != "" {
			pkg.failed++
			pkg.failedTest = append(pkg.failedTest, e.Test)
			return
		}
		pkg.duration = elapsed
		pkg.failedPkg = true
		// A package that fails without running anything did not build.
		if pkg.passed == 0 && pkg.failed == 0 && pkg.skipped == 0 && !pkg.panicked {
			pkg.buildError = strings.Join(pkg.pkgOutput, "\n")
			if pkg.buildError == "" {
				pkg.buildError = "package failed without running tests"
			}
		}

	case ActionSkip:
		if e.Test != "" {
			pkg.skipped++
		}

	case ActionOutput:
		output := strings.TrimRight(e.Output, "\n")
		if output == "" {
			return
		}
		if e.Test == "" {
			pkg.pkgOutput = append(pkg.pkgOutput, output)
		}
		if strings.HasPrefix(strings.TrimSpace(output), "panic:") {
			pkg.panicked = true
		}
	}
}

func (a *aggregator) results() []TestPackageResult {
	results := make([]TestPackageResult, 0, len(a.order))
	for _, name := range a.order {
		pkg := a.packages[name]
		// Skip packages with no test activity
		if pkg.passed == 0 && pkg.failed == 0 && pkg.skipped == 0 && pkg.buildError == "" && !pkg.panicked && !pkg.failedPkg {
			continue
		}
		results = append(results, TestPackageResult{
			Name:        pkg.name,
			Passed:      pkg.passed,
			Failed:      pkg.failed,
			Skipped:     pkg.skipped,
			Duration:    pkg.duration,
			FailedTests: pkg.failedTest,
			BuildError:  pkg.buildError,
			Panicked:    pkg.panicked,
			FailedPkg:   pkg.failedPkg,
		})
	}
	return results
}
