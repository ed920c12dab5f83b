package task

import (
	"sort"
	"strings"
	"time"
)

// The query helpers are pure: they never mutate their input and never
// fail. Missing or malformed fields degrade per-helper rather than
// returning errors.

// FilterByPriority keeps tasks whose priority equals the given value
// exactly (case-sensitive).
func FilterByPriority(tasks []Task, priority Priority) []Task {
	var result []Task
	for _, t := range tasks {
		if t.Priority == priority {
			result = append(result, t)
		}
	}
	return result
}

// FilterByCategory keeps tasks whose category equals the given value
// exactly (case-sensitive).
func FilterByCategory(tasks []Task, category Category) []Task {
	var result []Task
	for _, t := range tasks {
		if t.Category == category {
			result = append(result, t)
		}
	}
	return result
}

// FilterByCompletion keeps tasks whose completed flag equals the
// argument.
func FilterByCompletion(tasks []Task, completed bool) []Task {
	var result []Task
	for _, t := range tasks {
		if t.Completed == completed {
			result = append(result, t)
		}
	}
	return result
}

// Search keeps tasks whose title or description contains the query,
// case-insensitively. A task matching on both fields appears once.
func Search(tasks []Task, query string) []Task {
	query = strings.ToLower(query)
	var result []Task
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Description), query) {
			result = append(result, t)
		}
	}
	return result
}

// IsOverdue reports whether an incomplete task's due date is strictly
// before the reference moment's calendar day. Tasks with missing or
// malformed due dates are treated as not yet due.
func IsOverdue(t Task, now time.Time) bool {
	if t.Completed {
		return false
	}
	due, ok := ParseDueDate(t.DueDate, now.Location())
	if !ok {
		return false
	}
	return due.Before(startOfDay(now))
}

// Overdue returns the incomplete tasks that are overdue at the
// reference moment.
func Overdue(tasks []Task, now time.Time) []Task {
	var result []Task
	for _, t := range tasks {
		if IsOverdue(t, now) {
			result = append(result, t)
		}
	}
	return result
}

// IsDueSoon reports whether an incomplete task's due date, taken as
// midnight of that day, falls within the closed interval [now,
// now+24h]. Malformed due dates are never due soon.
func IsDueSoon(t Task, now time.Time) bool {
	if t.Completed {
		return false
	}
	due, ok := ParseDueDate(t.DueDate, now.Location())
	if !ok {
		return false
	}
	horizon := now.Add(24 * time.Hour)
	return !due.Before(now) && !due.After(horizon)
}

// DueSoon returns the incomplete tasks due within the next 24 hours.
func DueSoon(tasks []Task, now time.Time) []Task {
	var result []Task
	for _, t := range tasks {
		if IsDueSoon(t, now) {
			result = append(result, t)
		}
	}
	return result
}

// SortByPriority returns a copy ordered High, Medium, Low. The sort
// is stable; unknown or missing priorities rank with Low.
func SortByPriority(tasks []Task) []Task {
	sorted := append([]Task(nil), tasks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority.Rank() < sorted[j].Priority.Rank()
	})
	return sorted
}

// SortByDueDate returns a copy ordered ascending by due date. The
// sort is stable; missing or malformed dates sort after every valid
// date, preserving their relative order.
func SortByDueDate(tasks []Task) []Task {
	sorted := append([]Task(nil), tasks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dueSortKey(sorted[i]).Before(dueSortKey(sorted[j]))
	})
	return sorted
}

// dueSortKey anchors dates to UTC; the ordering is the same in any
// single location.
func dueSortKey(t Task) time.Time {
	due, ok := ParseDueDate(t.DueDate, time.UTC)
	if !ok {
		return dueDateMax
	}
	return due
}
