// Package main implements the td CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/paths"
	"github.com/taskdeck/taskdeck/task"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "td",
	Short:        "Taskdeck - a simple task tracker",
	SilenceUsage: true,
}

var tasksFileFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&tasksFileFlag, "file", "", "Tasks file (overrides taskdeck.toml)")
}

// loadConfig loads configuration for the current directory.
func loadConfig() (*config.Config, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	return config.Load(cwd)
}

// openTaskStore resolves the tasks file from the --file flag or the
// configuration and opens a store on it.
func openTaskStore() (*task.Store, error) {
	if tasksFileFlag != "" {
		return task.Open(tasksFileFlag, task.StoreOptions{}), nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return task.Open(cfg.Tasks.File, task.StoreOptions{}), nil
}
