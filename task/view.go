package task

// SortMode selects the ordering applied at the end of the view
// pipeline.
type SortMode string

const (
	// SortNone leaves tasks in collection order.
	SortNone SortMode = "none"

	// SortPriority orders High, Medium, Low.
	SortPriority SortMode = "priority"

	// SortDueDate orders ascending by due date.
	SortDueDate SortMode = "due"
)

// IsValid returns true if the sort mode is a known value.
func (m SortMode) IsValid() bool {
	switch m {
	case SortNone, SortPriority, SortDueDate:
		return true
	}
	return false
}

// ViewOptions configures the render pipeline for a task list.
// Nil pointers mean "don't filter on this field".
type ViewOptions struct {
	// Query is a free-text search over title and description. Empty
	// means no search.
	Query string

	// Priority filters by exact priority match.
	Priority *Priority

	// Category filters by exact category match.
	Category *Category

	// ShowCompleted includes completed tasks. Default is false.
	ShowCompleted bool

	// Sort is the final ordering. Zero value means SortNone.
	Sort SortMode
}

// View applies the filter/search/sort pipeline to the full collection.
//
// When Query is non-empty, the search runs against the unfiltered
// collection and REPLACES the pipeline's base set; the category,
// priority, and completion filters then reapply on top of the search
// result. Search does not narrow an already-filtered set. This
// mirrors the interaction ordering of the shipped UI and is covered
// by a regression test; changing it changes user-visible behavior.
func View(tasks []Task, opts ViewOptions) []Task {
	view := tasks
	if opts.Query != "" {
		view = Search(tasks, opts.Query)
	}
	if opts.Category != nil {
		view = FilterByCategory(view, *opts.Category)
	}
	if opts.Priority != nil {
		view = FilterByPriority(view, *opts.Priority)
	}
	if !opts.ShowCompleted {
		view = FilterByCompletion(view, false)
	}
	switch opts.Sort {
	case SortPriority:
		view = SortByPriority(view)
	case SortDueDate:
		view = SortByDueDate(view)
	}
	return view
}
