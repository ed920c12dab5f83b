// Package task implements the core of a single-user task tracker.
//
// Tasks live in a single JSON file that is wholly loaded into memory
// on every interaction and rewritten in full after every mutation.
// The package splits into three layers:
//   - Store: durable load/save of the whole collection
//   - query helpers: pure filter/search/sort functions over []Task
//   - operations: load -> mutate -> save transactions (Create,
//     Complete, Reopen, Update, Delete, Show, List)
package task

import "strings"

// Priority represents the importance level of a task.
type Priority string

const (
	// PriorityLow is the default importance level.
	PriorityLow Priority = "Low"

	// PriorityMedium is the middle importance level.
	PriorityMedium Priority = "Medium"

	// PriorityHigh is the highest importance level.
	PriorityHigh Priority = "High"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank for a priority. High sorts first.
// Unknown or missing priorities rank with Low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Category labels a task. The query helpers treat it as opaque text;
// the canonical values exist for CLI input normalization only.
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategorySchool   Category = "School"
	CategoryOther    Category = "Other"
)

// ValidCategories returns all canonical category values.
func ValidCategories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategorySchool, CategoryOther}
}

// IsValid returns true if the category is a canonical value.
func (c Category) IsValid() bool {
	for _, valid := range ValidCategories() {
		if c == valid {
			return true
		}
	}
	return false
}

func normalizePriority(p Priority) Priority {
	switch strings.ToLower(strings.TrimSpace(string(p))) {
	case "low":
		return PriorityLow
	case "medium":
		return PriorityMedium
	case "high":
		return PriorityHigh
	default:
		return p
	}
}

func normalizeCategory(c Category) Category {
	switch strings.ToLower(strings.TrimSpace(string(c))) {
	case "work":
		return CategoryWork
	case "personal":
		return CategoryPersonal
	case "school":
		return CategorySchool
	case "other":
		return CategoryOther
	default:
		return c
	}
}

// CreatedAtLayout is the timestamp format stored in created_at.
const CreatedAtLayout = "2006-01-02 15:04:05"
