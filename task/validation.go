package task

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyDescription is returned when a task description is empty.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrInvalidPriority is returned when an unknown priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidCategory is returned when an unknown category is provided.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrMalformedDueDate is returned when a due date is not YYYY-MM-DD.
	ErrMalformedDueDate = errors.New("due date must be YYYY-MM-DD")

	// ErrDueDateInPast is returned when a new task's due date is before today.
	ErrDueDateInPast = errors.New("due date cannot be in the past")

	// ErrInvalidSortMode is returned when an unknown sort mode is provided.
	ErrInvalidSortMode = errors.New("invalid sort mode")
)

// ValidateTitle checks that a title is non-empty.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ValidateDescription checks that a description is non-empty.
func ValidateDescription(description string) error {
	if description == "" {
		return ErrEmptyDescription
	}
	return nil
}

// ValidateDueDateFormat checks that a due date is empty or parseable.
func ValidateDueDateFormat(dueDate string) error {
	if dueDate == "" {
		return nil
	}
	if _, ok := ParseDueDate(dueDate, time.UTC); !ok {
		return fmt.Errorf("%w: got %q", ErrMalformedDueDate, dueDate)
	}
	return nil
}

// ValidateNew checks the boundary rules for task creation: title and
// description must be non-empty, and the due date, when present, must
// parse and not fall before today. The store never receives an
// invalid new task.
func ValidateNew(title, description, dueDate string, now time.Time) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	if err := ValidateDescription(description); err != nil {
		return err
	}
	if dueDate == "" {
		return nil
	}
	due, ok := ParseDueDate(dueDate, now.Location())
	if !ok {
		return fmt.Errorf("%w: got %q", ErrMalformedDueDate, dueDate)
	}
	if due.Before(startOfDay(now)) {
		return fmt.Errorf("%w: %s", ErrDueDateInPast, dueDate)
	}
	return nil
}

func validatePriorityInput(p Priority) (Priority, error) {
	normalized := normalizePriority(p)
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, p)
	}
	return normalized, nil
}

func validateCategoryInput(c Category) (Category, error) {
	normalized := normalizeCategory(c)
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, c)
	}
	return normalized, nil
}
