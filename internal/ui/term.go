package ui

import (
	"os"

	"golang.org/x/term"
)

// ANSIEnabled reports whether styled output should be emitted on
// stdout. NO_COLOR and dumb terminals disable styling.
func ANSIEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive returns true if stdin is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
