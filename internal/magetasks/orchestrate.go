package magetasks

import "fmt"

// Section is one named step of a multi-step workflow.
type Section struct {
	Name        string
	Description string
	Run         func() error
}

// RunSections runs sections in order and stops at the first failure.
// It returns the names of the sections that completed.
func RunSections(sections ...Section) ([]string, error) {
	done := make([]string, 0, len(sections))
	for _, s := range sections {
		PrintH1Header(s.Name)
		if s.Description != "" {
			PrintInfo(s.Description)
		}
		if err := s.Run(); err != nil {
			PrintError(fmt.Sprintf("%s failed", s.Name))
			return done, fmt.Errorf("%s: %w", s.Name, err)
		}
		done = append(done, s.Name)
	}
	PrintSuccess(fmt.Sprintf("%d sections complete", len(done)))
	return done, nil
}

// RunAll builds, lints, runs the short tests and then the visual suite.
func RunAll() error {
	_, err := RunSections(
		Section{Name: "Build", Description: "Build the stylelab binary", Run: BuildAll},
		Section{Name: "Lint", Description: "Format, vet and static analysis", Run: LintAll},
		Section{Name: "Tests", Description: "Unit tests without a browser", Run: TestShort},
		Section{Name: "Visual", Description: "State styling suite in headless Chrome", Run: Visual},
	)
	return err
}
