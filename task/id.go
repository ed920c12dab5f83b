package task

// NextID returns the identifier for a task being created: 1 for an
// empty collection, otherwise one past the largest existing ID. IDs
// are never reassigned after deletion, so gaps are acceptable.
func NextID(tasks []Task) int {
	maxID := 0
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}
