package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/devtools"
)

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Run the project's test suite and coverage reports",
}

var devTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the test suite",
	Args:  cobra.NoArgs,
	RunE:  runDevTest,
}

var devCoverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Run the test suite with a coverage report",
	Args:  cobra.NoArgs,
	RunE:  runDevCoverage,
}

var devCoverageHTMLCmd = &cobra.Command{
	Use:   "coverage-html [output]",
	Short: "Write an HTML coverage report",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDevCoverageHTML,
}

func init() {
	rootCmd.AddCommand(devCmd)
	devCmd.AddCommand(devTestCmd, devCoverageCmd, devCoverageHTMLCmd)
}

// newDevRunner builds the runner from configuration. Swapped out in
// tests.
var newDevRunner = func(cfg *config.Config) devtools.Runner {
	return devtools.GoRunner{
		Dir:      cfg.Dev.Dir,
		Packages: cfg.Dev.Packages,
	}
}

// exitError carries a command exit status through cobra's error path.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func (e exitError) ExitCode() int {
	return e.code
}

func devRunner() (devtools.Runner, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newDevRunner(cfg), nil
}

func reportDevResult(result devtools.Result) error {
	devtools.WriteSummary(os.Stdout, result)
	if result.Passed {
		fmt.Println("All tests passed.")
		return nil
	}
	fmt.Println("Tests failed.")
	return exitError{code: result.ExitCode}
}

func runDevTest(cmd *cobra.Command, args []string) error {
	runner, err := devRunner()
	if err != nil {
		return err
	}

	result, err := runner.Test()
	if err != nil {
		return err
	}
	return reportDevResult(result)
}

func runDevCoverage(cmd *cobra.Command, args []string) error {
	runner, err := devRunner()
	if err != nil {
		return err
	}

	result, err := runner.Coverage()
	if err != nil {
		return err
	}
	return reportDevResult(result)
}

func runDevCoverageHTML(cmd *cobra.Command, args []string) error {
	runner, err := devRunner()
	if err != nil {
		return err
	}

	output := "coverage.html"
	if len(args) > 0 {
		output = args[0]
	}

	result, err := runner.CoverageHTML(output)
	if err != nil {
		return err
	}
	if result.Passed {
		fmt.Printf("Coverage report written to %s\n", output)
		return nil
	}
	return reportDevResult(result)
}
