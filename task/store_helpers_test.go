package task

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"
)

// openTestStore returns a store backed by a temp file, plus the
// buffer its warnings are written to.
func openTestStore(t *testing.T) (*Store, *bytes.Buffer) {
	t.Helper()

	warnings := &bytes.Buffer{}
	path := filepath.Join(t.TempDir(), "tasks.json")
	return Open(path, StoreOptions{Warnings: warnings}), warnings
}

// dueIn formats a due date the given number of days from now.
func dueIn(days int) string {
	return time.Now().AddDate(0, 0, days).Format(DueDateLayout)
}
