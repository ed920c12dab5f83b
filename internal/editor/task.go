package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"github.com/taskdeck/taskdeck/task"
)

// TaskData represents the data used to render the TOML template.
type TaskData struct {
	// IsUpdate is true when editing an existing task.
	IsUpdate bool
	// ID is the task ID (only for updates).
	ID int
	// Title is the task title.
	Title string
	// Priority is the task priority (Low, Medium, High).
	Priority string
	// Category is the task category (Work, Personal, School, Other).
	Category string
	// DueDate is the YYYY-MM-DD due date, possibly empty.
	DueDate string
	// Completed is the completion flag (only for updates).
	Completed bool
	// Description is the task description, edited as the body below
	// the frontmatter.
	Description string
}

// DefaultCreateData returns TaskData with default values for creating a new task.
func DefaultCreateData() TaskData {
	return TaskData{
		Priority: string(task.PriorityLow),
		Category: string(task.CategoryOther),
	}
}

// DataFromTask creates TaskData from an existing task for editing.
func DataFromTask(t *task.Task) TaskData {
	return TaskData{
		IsUpdate:    true,
		ID:          t.ID,
		Title:       t.Title,
		Priority:    string(t.Priority),
		Category:    string(t.Category),
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		Description: t.Description,
	}
}

var taskTemplate = template.Must(template.New("task").Parse(`title = {{ printf "%q" .Title }}
priority = {{ printf "%q" .Priority }} # Low, Medium, High
category = {{ printf "%q" .Category }} # Work, Personal, School, Other
due = {{ printf "%q" .DueDate }} # YYYY-MM-DD, empty for none
{{- if .IsUpdate }}
completed = {{ .Completed }}
{{- end }}
---
{{ .Description }}
`))

// RenderTaskTOML renders the task data as editable TOML frontmatter
// with the description as the body.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTask represents the parsed result from the TOML editor output.
type ParsedTask struct {
	Title       string `toml:"title"`
	Priority    string `toml:"priority"`
	Category    string `toml:"category"`
	DueDate     string `toml:"due"`
	Completed   *bool  `toml:"completed"`
	Description string
}

// ParseTaskTOML parses the TOML content from the editor.
func ParseTaskTOML(content string) (*ParsedTask, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedTask
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Description = strings.TrimSpace(body)

	if err := task.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}
	if err := task.ValidateDescription(parsed.Description); err != nil {
		return nil, err
	}
	if err := task.ValidateDueDateFormat(parsed.DueDate); err != nil {
		return nil, err
	}

	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	return strings.Join(lines[:separatorIndex], "\n"), strings.Join(lines[separatorIndex+1:], "\n")
}

// EditTask opens the editor with pre-populated data and returns the parsed result.
func EditTask(data TaskData) (*ParsedTask, error) {
	content, err := RenderTaskTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "td-task-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTaskTOML(string(edited))
}

// ToCreateOptions converts a ParsedTask to task.CreateOptions.
func (p *ParsedTask) ToCreateOptions() task.CreateOptions {
	return task.CreateOptions{
		Description: p.Description,
		Priority:    task.Priority(p.Priority),
		Category:    task.Category(p.Category),
		DueDate:     p.DueDate,
	}
}

// ToUpdateOptions converts a ParsedTask to task.UpdateOptions.
func (p *ParsedTask) ToUpdateOptions() task.UpdateOptions {
	priority := task.Priority(p.Priority)
	category := task.Category(p.Category)
	opts := task.UpdateOptions{
		Title:       &p.Title,
		Description: &p.Description,
		Priority:    &priority,
		Category:    &category,
		DueDate:     &p.DueDate,
	}
	if p.Completed != nil {
		opts.Completed = p.Completed
	}
	return opts
}
