package main

import (
	"fmt"
	"time"

	"github.com/taskdeck/taskdeck/internal/ui"
	"github.com/taskdeck/taskdeck/task"
)

// printTaskTable prints tasks in a table format.
func printTaskTable(tasks []task.Task, now time.Time) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, now))
}

func formatTaskTable(tasks []task.Task, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "PRI", "CATEGORY", "DUE", "AGE", "TITLE"}, len(tasks))

	for _, t := range tasks {
		style := rowStyle(t, now)
		row := []string{
			style(fmt.Sprintf("%d", t.ID)),
			style(priorityShort(t.Priority)),
			style(string(t.Category)),
			style(formatTaskDue(t)),
			style(formatTaskAge(t, now)),
			style(ui.TruncateTableCell(t.Title)),
		}
		builder.AddRow(row)
	}

	return builder.String()
}

// rowStyle picks the cell style for a task's row. Completed wins over
// overdue, overdue over due-soon.
func rowStyle(t task.Task, now time.Time) func(string) string {
	switch {
	case t.Completed:
		return ui.StyleDone
	case task.IsOverdue(t, now):
		return ui.StyleOverdue
	case task.IsDueSoon(t, now):
		return ui.StyleDueSoon
	default:
		return func(value string) string { return value }
	}
}

func formatTaskDue(t task.Task) string {
	if t.DueDate == "" {
		return "-"
	}
	return t.DueDate
}

func formatTaskAge(t task.Task, now time.Time) string {
	created, err := time.ParseInLocation(task.CreatedAtLayout, t.CreatedAt, now.Location())
	if err != nil {
		return "-"
	}
	return ui.FormatTimeAgeShort(created, now)
}

// priorityShort returns a short representation of priority.
func priorityShort(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return "H"
	case task.PriorityMedium:
		return "M"
	case task.PriorityLow:
		return "L"
	default:
		return "?"
	}
}

// printDueSoonBanner prints an advisory line when any task in the
// whole collection is due within the next 24 hours. The advisory is
// independent of the active filters, so it re-reads the store rather
// than using the rendered view.
func printDueSoonBanner(store *task.Store, now time.Time) error {
	all, err := store.Load()
	if err != nil {
		return err
	}
	if banner := formatDueSoonBanner(all, now); banner != "" {
		fmt.Println(ui.StyleBanner(banner))
	}
	return nil
}

func formatDueSoonBanner(tasks []task.Task, now time.Time) string {
	dueSoon := task.DueSoon(tasks, now)
	if len(dueSoon) == 0 {
		return ""
	}

	label := "task is"
	if len(dueSoon) > 1 {
		label = "tasks are"
	}
	return fmt.Sprintf("%d %s due within 24 hours!", len(dueSoon), label)
}
