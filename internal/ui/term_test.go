package ui

import (
	"os"
	"testing"

	"github.com/creack/pty"
)

// swapStdout points os.Stdout at the given file for the test.
func swapStdout(t *testing.T, f *os.File) {
	t.Helper()
	old := os.Stdout
	os.Stdout = f
	t.Cleanup(func() { os.Stdout = old })
}

// swapStdin points os.Stdin at the given file for the test.
func swapStdin(t *testing.T, f *os.File) {
	t.Helper()
	old := os.Stdin
	os.Stdin = f
	t.Cleanup(func() { os.Stdin = old })
}

func TestIsInteractive_OnPTY(t *testing.T) {
	primary, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer primary.Close()
	defer tty.Close()

	swapStdin(t, tty)

	if !IsInteractive() {
		t.Error("expected interactive on a pty")
	}
}

func TestIsInteractive_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdin")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer f.Close()

	swapStdin(t, f)

	if IsInteractive() {
		t.Error("expected regular file to be non-interactive")
	}
}

func TestANSIEnabled_OnPTY(t *testing.T) {
	primary, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer primary.Close()
	defer tty.Close()

	swapStdout(t, tty)
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")

	if !ANSIEnabled() {
		t.Error("expected ANSI enabled on a pty")
	}
}

func TestANSIEnabled_RespectsNoColor(t *testing.T) {
	primary, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer primary.Close()
	defer tty.Close()

	swapStdout(t, tty)
	t.Setenv("NO_COLOR", "1")

	if ANSIEnabled() {
		t.Error("expected NO_COLOR to disable ANSI")
	}
}

func TestANSIEnabled_DumbTerminal(t *testing.T) {
	primary, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer primary.Close()
	defer tty.Close()

	swapStdout(t, tty)
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "dumb")

	if ANSIEnabled() {
		t.Error("expected dumb terminal to disable ANSI")
	}
}

func TestANSIEnabled_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdout")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer f.Close()

	swapStdout(t, f)
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")

	if ANSIEnabled() {
		t.Error("expected regular file to disable ANSI")
	}
}

func TestStylesPassThroughWithoutTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdout")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer f.Close()
	swapStdout(t, f)

	if got := StyleOverdue("2026-01-01"); got != "2026-01-01" {
		t.Errorf("expected unstyled value, got %q", got)
	}
	if got := StyleDone("done"); got != "done" {
		t.Errorf("expected unstyled value, got %q", got)
	}
}
