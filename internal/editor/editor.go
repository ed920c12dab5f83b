// Package editor hands task files off to the user's $EDITOR and reads
// the result back.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Edit runs the user's editor on path and blocks until it exits. The
// EDITOR environment variable picks the binary, falling back to vi.
func Edit(path string) error {
	name := os.Getenv("EDITOR")
	if name == "" {
		name = "vi"
	}

	cmd := exec.Command(name, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%s exited with status %d", name, exitErr.ExitCode())
	}
	if err != nil {
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}
