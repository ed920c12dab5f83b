package task

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Each operation is a complete load -> mutate -> save transaction.
// Nothing is cached between operations; the backing file is re-read
// every time.

// CreateOptions configures a new task.
type CreateOptions struct {
	// Description provides additional context. Required.
	Description string

	// Priority defaults to PriorityLow when empty.
	Priority Priority

	// Category defaults to CategoryOther when empty.
	Category Category

	// DueDate is an optional YYYY-MM-DD date. When present it must
	// not fall before today.
	DueDate string
}

// Create validates the input, allocates the next ID, appends the new
// task, and persists the collection.
func (s *Store) Create(title string, opts CreateOptions) (*Task, error) {
	now := time.Now()

	if err := ValidateNew(title, opts.Description, opts.DueDate, now); err != nil {
		return nil, err
	}

	if opts.Priority == "" {
		opts.Priority = PriorityLow
	}
	priority, err := validatePriorityInput(opts.Priority)
	if err != nil {
		return nil, err
	}

	if opts.Category == "" {
		opts.Category = CategoryOther
	}
	category, err := validateCategoryInput(opts.Category)
	if err != nil {
		return nil, err
	}

	tasks, err := s.Load()
	if err != nil {
		return nil, err
	}

	created := Task{
		ID:          NextID(tasks),
		Title:       title,
		Description: opts.Description,
		Priority:    priority,
		Category:    category,
		DueDate:     opts.DueDate,
		Completed:   false,
		CreatedAt:   now.Format(CreatedAtLayout),
	}
	tasks = append(tasks, created)

	if err := s.Save(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}
	return &created, nil
}

// UpdateOptions configures fields to update on tasks.
// Nil pointers mean "don't update this field".
type UpdateOptions struct {
	Title       *string
	Description *string
	Priority    *Priority
	Category    *Category
	DueDate     *string
	Completed   *bool
}

// Update applies the given options to one or more tasks and persists
// the collection. Returns the updated tasks in collection order.
func (s *Store) Update(ids []int, opts UpdateOptions) ([]Task, error) {
	if err := validateTaskIDs(ids); err != nil {
		return nil, err
	}
	if opts.Title != nil {
		if err := ValidateTitle(*opts.Title); err != nil {
			return nil, err
		}
	}
	if opts.Description != nil {
		if err := ValidateDescription(*opts.Description); err != nil {
			return nil, err
		}
	}
	if opts.Priority != nil {
		normalized, err := validatePriorityInput(*opts.Priority)
		if err != nil {
			return nil, err
		}
		opts.Priority = &normalized
	}
	if opts.Category != nil {
		normalized, err := validateCategoryInput(*opts.Category)
		if err != nil {
			return nil, err
		}
		opts.Category = &normalized
	}
	// Past due dates are allowed on update; only the format is
	// checked. Creation is the boundary that rejects past dates.
	if opts.DueDate != nil {
		if err := ValidateDueDateFormat(*opts.DueDate); err != nil {
			return nil, err
		}
	}

	tasks, err := s.Load()
	if err != nil {
		return nil, err
	}

	idSet := makeIDSet(ids)
	var updated []Task
	for i := range tasks {
		if !idSet[tasks[i].ID] {
			continue
		}
		delete(idSet, tasks[i].ID)

		if opts.Title != nil {
			tasks[i].Title = *opts.Title
		}
		if opts.Description != nil {
			tasks[i].Description = *opts.Description
		}
		if opts.Priority != nil {
			tasks[i].Priority = *opts.Priority
		}
		if opts.Category != nil {
			tasks[i].Category = *opts.Category
		}
		if opts.DueDate != nil {
			tasks[i].DueDate = *opts.DueDate
		}
		if opts.Completed != nil {
			tasks[i].Completed = *opts.Completed
		}
		updated = append(updated, tasks[i])
	}

	if err := missingTaskIDsError(idSet); err != nil {
		return nil, err
	}

	if err := s.Save(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}
	return updated, nil
}

// Complete marks one or more tasks as completed.
func (s *Store) Complete(ids []int) ([]Task, error) {
	completed := true
	return s.Update(ids, UpdateOptions{Completed: &completed})
}

// Reopen marks one or more completed tasks as incomplete.
func (s *Store) Reopen(ids []int) ([]Task, error) {
	completed := false
	return s.Update(ids, UpdateOptions{Completed: &completed})
}

// Delete removes one or more tasks from the collection and persists
// the result. There is no soft delete; freed IDs are not reused while
// larger IDs remain.
func (s *Store) Delete(ids []int) ([]Task, error) {
	if err := validateTaskIDs(ids); err != nil {
		return nil, err
	}

	tasks, err := s.Load()
	if err != nil {
		return nil, err
	}

	idSet := makeIDSet(ids)
	kept := tasks[:0]
	var removed []Task
	for _, t := range tasks {
		if idSet[t.ID] {
			delete(idSet, t.ID)
			removed = append(removed, t)
			continue
		}
		kept = append(kept, t)
	}

	if err := missingTaskIDsError(idSet); err != nil {
		return nil, err
	}

	if err := s.Save(kept); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}
	return removed, nil
}

// Show returns the tasks with the given IDs, in the order requested.
func (s *Store) Show(ids []int) ([]Task, error) {
	if err := validateTaskIDs(ids); err != nil {
		return nil, err
	}

	tasks, err := s.Load()
	if err != nil {
		return nil, err
	}

	byID := make(map[int]Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	var result []Task
	missing := make(map[int]bool)
	seen := make(map[int]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		t, ok := byID[id]
		if !ok {
			missing[id] = true
			continue
		}
		result = append(result, t)
	}

	if err := missingTaskIDsError(missing); err != nil {
		return nil, err
	}
	return result, nil
}

// List loads the collection and applies the view pipeline.
func (s *Store) List(opts ViewOptions) ([]Task, error) {
	if opts.Priority != nil {
		normalized, err := validatePriorityInput(*opts.Priority)
		if err != nil {
			return nil, err
		}
		opts.Priority = &normalized
	}
	if opts.Category != nil {
		normalized, err := validateCategoryInput(*opts.Category)
		if err != nil {
			return nil, err
		}
		opts.Category = &normalized
	}
	if opts.Sort == "" {
		opts.Sort = SortNone
	}
	if !opts.Sort.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortMode, opts.Sort)
	}

	tasks, err := s.Load()
	if err != nil {
		return nil, err
	}
	return View(tasks, opts), nil
}

func validateTaskIDs(ids []int) error {
	if len(ids) == 0 {
		return fmt.Errorf("no task IDs provided")
	}
	for _, id := range ids {
		if id < 1 {
			return fmt.Errorf("invalid task ID %d", id)
		}
	}
	return nil
}

func makeIDSet(ids []int) map[int]bool {
	idSet := make(map[int]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}
	return idSet
}

func missingTaskIDsError(missing map[int]bool) error {
	if len(missing) == 0 {
		return nil
	}
	ids := make([]int, 0, len(missing))
	for id := range missing {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, strconv.Itoa(id))
	}
	return fmt.Errorf("tasks not found: %s", strings.Join(labels, ", "))
}
