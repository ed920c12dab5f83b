package task

// Task represents a single to-do item.
type Task struct {
	// ID is a positive integer, unique within the collection. IDs are
	// never reused while any task holds them, so gaps are expected.
	ID int `json:"id"`

	// Title is the short summary of the task.
	Title string `json:"title"`

	// Description provides additional context about the task.
	Description string `json:"description"`

	// Priority is the importance level (Low, Medium, High).
	Priority Priority `json:"priority"`

	// Category labels the task (Work, Personal, School, Other).
	Category Category `json:"category"`

	// DueDate is a YYYY-MM-DD date. It may be empty or malformed in
	// persisted data; query helpers tolerate both.
	DueDate string `json:"due_date"`

	// Completed is toggled by user action.
	Completed bool `json:"completed"`

	// CreatedAt is when the task was created. Informational only; no
	// query reads it.
	CreatedAt string `json:"created_at"`
}
