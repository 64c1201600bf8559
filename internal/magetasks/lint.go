package magetasks

import "errors"

type linter struct {
	run func() error
	// optional linters are skipped when their tool is not installed.
	optional bool
}

// LintAll runs every linter and joins their failures.
func LintAll() error {
	var errs []error
	for _, l := range []linter{
		{run: LintFormat},
		{run: LintVet},
		{run: LintStaticcheck, optional: true},
		{run: LintGolangci, optional: true},
	} {
		if err := l.run(); err != nil && !(l.optional && errors.Is(err, ErrToolMissing)) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	PrintSuccess("All linters passed")
	return nil
}

// LintFormat rewrites files with gofmt -s and lists the ones it touched.
func LintFormat() error {
	return Run("Go Format", "gofmt", "-s", "-l", "-w", ".")
}

// LintVet runs go vet.
func LintVet() error {
	return Run("Go Vet", "go", "vet", "./...")
}

// LintStaticcheck runs staticcheck.
func LintStaticcheck() error {
	return Run("Staticcheck", "staticcheck", "./...")
}

// LintGolangci runs golangci-lint.
func LintGolangci() error {
	return Run("Golangci-lint", "golangci-lint", golangciArgs()...)
}

// LintGolangciFix runs golangci-lint with auto-fixes.
func LintGolangciFix() error {
	return Run("Golangci-lint Fix", "golangci-lint", golangciArgs("--fix")...)
}

func golangciArgs(extra ...string) []string {
	args := append([]string{"run"}, extra...)
	return append(args,
		"--disable=exhaustruct,varnamelen,ireturn,wrapcheck,nlreturn,gochecknoglobals,mnd,depguard,tagalign",
		"--timeout=5m",
		"./...")
}
