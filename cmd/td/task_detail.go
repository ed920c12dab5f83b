package main

import (
	"fmt"
	"time"

	"github.com/taskdeck/taskdeck/internal/markdown"
	"github.com/taskdeck/taskdeck/task"
)

// printTaskDetail prints detailed information about a task.
func printTaskDetail(t task.Task, now time.Time) {
	fmt.Printf("ID:       %d\n", t.ID)
	fmt.Printf("Title:    %s\n", t.Title)
	fmt.Printf("Priority: %s\n", t.Priority)
	fmt.Printf("Category: %s\n", t.Category)
	fmt.Printf("Status:   %s\n", taskStatus(t, now))
	fmt.Printf("Due:      %s\n", formatTaskDue(t))
	fmt.Printf("Created:  %s\n", t.CreatedAt)

	if t.Description != "" {
		fmt.Printf("\nDescription:\n%s\n", formatTaskDescription(t.Description))
	}
}

func taskStatus(t task.Task, now time.Time) string {
	switch {
	case t.Completed:
		return "completed"
	case task.IsOverdue(t, now):
		return "overdue"
	case task.IsDueSoon(t, now):
		return "due soon"
	default:
		return "pending"
	}
}

const taskDetailLineWidth = 80

func formatTaskDescription(value string) string {
	rendered := markdown.Render(taskDetailLineWidth, value)
	if rendered == "" {
		return "-"
	}
	return rendered
}
