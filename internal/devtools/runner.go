// Package devtools runs the project's own test suite and coverage
// reports from the CLI.
package devtools

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Result holds the outcome of a dev command invocation.
type Result struct {
	// Passed is true when the underlying command exited with status 0.
	Passed bool
	// ExitCode is the command's exit status.
	ExitCode int
	// Output is the combined stdout and stderr of the command.
	Output string
}

// Runner executes test and coverage commands for a Go module.
type Runner interface {
	// Test runs the test suite.
	Test() (Result, error)
	// Coverage runs the test suite with coverage and returns the
	// per-function coverage report as Result.Output.
	Coverage() (Result, error)
	// CoverageHTML writes an HTML coverage report to htmlPath.
	CoverageHTML(htmlPath string) (Result, error)
}

// GoRunner runs the go toolchain against a module directory.
type GoRunner struct {
	// Dir is the module root the commands run in.
	Dir string
	// Packages selects the packages under test, ./... when empty.
	Packages string
}

func (r GoRunner) packages() string {
	if r.Packages == "" {
		return "./..."
	}
	return r.Packages
}

func (r GoRunner) run(args ...string) (Result, error) {
	cmd := exec.Command("go", args...)
	cmd.Dir = r.Dir

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, fmt.Errorf("run go %s: %w", args[0], err)
		}
		exitCode = exitErr.ExitCode()
	}

	return Result{
		Passed:   exitCode == 0,
		ExitCode: exitCode,
		Output:   buf.String(),
	}, nil
}

// Test runs go test over the configured packages.
func (r GoRunner) Test() (Result, error) {
	return r.run("test", r.packages())
}

// Coverage runs go test with a coverage profile and reports
// per-function coverage, including the total line.
func (r GoRunner) Coverage() (Result, error) {
	profile, cleanup, err := r.coverProfile()
	if err != nil {
		return Result{}, err
	}
	defer cleanup()

	testResult, err := r.run("test", "-coverprofile", profile, r.packages())
	if err != nil {
		return Result{}, err
	}
	if !testResult.Passed {
		return testResult, nil
	}

	report, err := r.run("tool", "cover", "-func", profile)
	if err != nil {
		return Result{}, err
	}
	report.Output = testResult.Output + report.Output
	return report, nil
}

// CoverageHTML runs go test with a coverage profile and writes an HTML
// report to htmlPath.
func (r GoRunner) CoverageHTML(htmlPath string) (Result, error) {
	profile, cleanup, err := r.coverProfile()
	if err != nil {
		return Result{}, err
	}
	defer cleanup()

	testResult, err := r.run("test", "-coverprofile", profile, r.packages())
	if err != nil {
		return Result{}, err
	}
	if !testResult.Passed {
		return testResult, nil
	}

	htmlResult, err := r.run("tool", "cover", "-html", profile, "-o", htmlPath)
	if err != nil {
		return Result{}, err
	}
	htmlResult.Output = testResult.Output + htmlResult.Output
	return htmlResult, nil
}

func (r GoRunner) coverProfile() (string, func(), error) {
	dir, err := os.MkdirTemp("", "td-cover-")
	if err != nil {
		return "", nil, fmt.Errorf("create coverage dir: %w", err)
	}
	return filepath.Join(dir, "coverage.out"), func() { os.RemoveAll(dir) }, nil
}

// WriteSummary writes a human-readable summary of a coverage result,
// including the parsed total percentage when present.
func WriteSummary(w io.Writer, result Result) {
	fmt.Fprint(w, result.Output)
	if percent, ok := ParseCoveragePercent(result.Output); ok {
		fmt.Fprintf(w, "\nTotal coverage: %.1f%%\n", percent)
	}
}
