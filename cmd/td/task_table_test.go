package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/task"
)

var tableNow = time.Date(2026, time.August, 24, 15, 0, 0, 0, time.UTC)

func tableTask(id int, title string) task.Task {
	return task.Task{
		ID:          id,
		Title:       title,
		Description: "d",
		Priority:    task.PriorityLow,
		Category:    task.CategoryOther,
		CreatedAt:   tableNow.Add(-2 * time.Hour).Format(task.CreatedAtLayout),
	}
}

func TestFormatTaskTable(t *testing.T) {
	first := tableTask(1, "First item")
	first.Priority = task.PriorityHigh
	first.Category = task.CategoryWork
	first.DueDate = "2026-08-30"
	second := tableTask(2, "Second item")

	out := formatTaskTable([]task.Task{first, second}, tableNow)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "TITLE") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "H") || !strings.Contains(lines[1], "2026-08-30") {
		t.Errorf("expected priority and due date in row: %q", lines[1])
	}
	if !strings.Contains(lines[2], "-") {
		t.Errorf("expected dash for missing due date: %q", lines[2])
	}
	if !strings.Contains(lines[1], "2h") {
		t.Errorf("expected age column: %q", lines[1])
	}
}

func TestRowStylePrecedence(t *testing.T) {
	overdue := tableTask(1, "late")
	overdue.DueDate = "2026-08-20"

	doneButLate := overdue
	doneButLate.Completed = true

	dueSoon := tableTask(2, "soon")
	dueSoon.DueDate = "2026-08-25"

	if !task.IsOverdue(overdue, tableNow) {
		t.Fatal("expected task to be overdue")
	}
	if task.IsOverdue(doneButLate, tableNow) {
		t.Fatal("completed tasks are never overdue")
	}
	if !task.IsDueSoon(dueSoon, tableNow) {
		t.Fatal("expected task to be due soon")
	}

	// Styling is disabled outside a terminal, so the style funcs are
	// identity here; verify selection rather than escape codes.
	if got := taskStatus(doneButLate, tableNow); got != "completed" {
		t.Errorf("expected completed status, got %q", got)
	}
	if got := taskStatus(overdue, tableNow); got != "overdue" {
		t.Errorf("expected overdue status, got %q", got)
	}
	if got := taskStatus(dueSoon, tableNow); got != "due soon" {
		t.Errorf("expected due soon status, got %q", got)
	}
	if got := taskStatus(tableTask(3, "plain"), tableNow); got != "pending" {
		t.Errorf("expected pending status, got %q", got)
	}
}

func TestFormatDueSoonBanner(t *testing.T) {
	soon := tableTask(1, "soon")
	soon.DueDate = "2026-08-25"
	later := tableTask(2, "later")
	later.DueDate = "2026-09-15"

	if got := formatDueSoonBanner([]task.Task{later}, tableNow); got != "" {
		t.Errorf("expected no banner, got %q", got)
	}
	if got := formatDueSoonBanner([]task.Task{soon, later}, tableNow); got != "1 task is due within 24 hours!" {
		t.Errorf("unexpected banner: %q", got)
	}

	second := tableTask(3, "also soon")
	second.DueDate = "2026-08-25"
	if got := formatDueSoonBanner([]task.Task{soon, second}, tableNow); got != "2 tasks are due within 24 hours!" {
		t.Errorf("unexpected banner: %q", got)
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read captured stdout: %v", err)
	}
	return string(data)
}

func TestDueSoonBannerIgnoresFilters(t *testing.T) {
	store := task.Open(filepath.Join(t.TempDir(), "tasks.json"), task.StoreOptions{})
	now := time.Now()

	err := store.Save([]task.Task{
		{
			ID:       1,
			Title:    "errand",
			Priority: task.PriorityLow,
			Category: task.CategoryPersonal,
			DueDate:  now.AddDate(0, 0, 1).Format(task.DueDateLayout),
		},
		{
			ID:       2,
			Title:    "report",
			Priority: task.PriorityHigh,
			Category: task.CategoryWork,
		},
	})
	if err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	category := task.CategoryWork
	view, err := store.List(task.ViewOptions{Category: &category})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if banner := formatDueSoonBanner(view, now); banner != "" {
		t.Fatalf("precondition failed: filtered view should hide the due-soon task, got %q", banner)
	}

	out := captureStdout(t, func() {
		if err := printDueSoonBanner(store, now); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
	if !strings.Contains(out, "1 task is due within 24 hours!") {
		t.Errorf("expected banner for the full collection, got %q", out)
	}
}

func TestPriorityShort(t *testing.T) {
	cases := map[task.Priority]string{
		task.PriorityHigh:   "H",
		task.PriorityMedium: "M",
		task.PriorityLow:    "L",
		task.Priority(""):   "?",
	}
	for priority, want := range cases {
		if got := priorityShort(priority); got != want {
			t.Errorf("priorityShort(%q): expected %q, got %q", priority, want, got)
		}
	}
}

func TestFormatTaskAge(t *testing.T) {
	item := tableTask(1, "aged")
	if got := formatTaskAge(item, tableNow); got != "2h" {
		t.Errorf("expected 2h, got %q", got)
	}

	item.CreatedAt = "not a timestamp"
	if got := formatTaskAge(item, tableNow); got != "-" {
		t.Errorf("expected dash for unparseable created_at, got %q", got)
	}
}
