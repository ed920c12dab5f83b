package task

import (
	"reflect"
	"testing"
	"time"
)

// End-to-end checks over the pure query layer and the store together.

func TestEndToEnd_QueryScenario(t *testing.T) {
	now := time.Date(2026, time.August, 24, 9, 0, 0, 0, time.UTC)
	tasks := []Task{
		{ID: 1, Priority: PriorityHigh, DueDate: now.AddDate(0, 0, 1).Format(DueDateLayout)},
		{ID: 2, Priority: PriorityLow, DueDate: now.AddDate(0, 0, -1).Format(DueDateLayout)},
	}

	if got := Overdue(tasks, now); !reflect.DeepEqual(taskIDs(got), []int{2}) {
		t.Errorf("overdue: expected [2], got %v", taskIDs(got))
	}
	if got := SortByPriority(tasks); !reflect.DeepEqual(taskIDs(got), []int{1, 2}) {
		t.Errorf("priority sort: expected [1 2], got %v", taskIDs(got))
	}
	if got := SortByDueDate(tasks); !reflect.DeepEqual(taskIDs(got), []int{2, 1}) {
		t.Errorf("due date sort: expected [2 1], got %v", taskIDs(got))
	}
}

func TestEndToEnd_IDAllocationAcrossSaves(t *testing.T) {
	store, _ := openTestStore(t)

	tasks, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if got := NextID(tasks); got != 1 {
		t.Fatalf("expected next ID 1 on empty store, got %d", got)
	}

	if _, err := store.Create("first", CreateOptions{Description: "d"}); err != nil {
		t.Fatalf("failed to create: %v", err)
	}

	tasks, err = store.Load()
	if err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if got := NextID(tasks); got != 2 {
		t.Fatalf("expected next ID 2 after one create, got %d", got)
	}
}

func TestEndToEnd_FullLifecycle(t *testing.T) {
	store, _ := openTestStore(t)

	created, err := store.Create("Write slides", CreateOptions{
		Description: "for Monday",
		Priority:    PriorityHigh,
		Category:    CategoryWork,
		DueDate:     dueIn(2),
	})
	if err != nil {
		t.Fatalf("failed to create: %v", err)
	}

	if _, err := store.Complete([]int{created.ID}); err != nil {
		t.Fatalf("failed to complete: %v", err)
	}

	listed, err := store.List(ViewOptions{})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("expected completed task hidden, got %v", taskIDs(listed))
	}

	if _, err := store.Delete([]int{created.ID}); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}

	tasks, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty store, got %v", taskIDs(tasks))
	}
}
