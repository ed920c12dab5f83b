package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultFile is the tasks file used when no path is configured.
const DefaultFile = "tasks.json"

// Store persists the task collection to a single JSON file. The file
// is the only source of truth: every Load re-reads it, and every Save
// rewrites it in full. There is no locking; the tracker is
// single-user by design.
type Store struct {
	path     string
	warnings io.Writer
}

// StoreOptions configures a store.
type StoreOptions struct {
	// Warnings receives non-fatal recovery notices, such as a corrupt
	// tasks file being treated as empty. Defaults to os.Stderr.
	Warnings io.Writer
}

// Open returns a store backed by the JSON file at path.
func Open(path string, opts StoreOptions) *Store {
	if path == "" {
		path = DefaultFile
	}
	warnings := opts.Warnings
	if warnings == nil {
		warnings = os.Stderr
	}
	return &Store{path: path, warnings: warnings}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full task collection. A missing file yields an empty
// collection. A file that cannot be parsed also yields an empty
// collection, with a warning on the store's warning sink; corrupt
// state is treated as "no state yet", never as a fatal error.
func (s *Store) Load() ([]Task, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		fmt.Fprintf(s.warnings, "warning: %s contains invalid JSON, starting a new task list\n", s.path)
		return nil, nil
	}
	return tasks, nil
}

// Save serializes the entire collection, pretty-printed, and replaces
// the backing file via a temp-file rename.
func (s *Store) Save(tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	data = append(data, '\n')

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
