package task

import "time"

// DueDateLayout is the calendar date format stored in due_date.
const DueDateLayout = "2006-01-02"

// dueDateMax sorts tasks with missing or malformed due dates after
// every task with a valid date.
var dueDateMax = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// ParseDueDate parses a YYYY-MM-DD due date as midnight in the given
// location. Due dates carry no zone of their own, so they must be
// anchored to the same clock as the reference moment they are compared
// against. The second return value is false when the date is empty or
// malformed.
func ParseDueDate(value string, loc *time.Location) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation(DueDateLayout, value, loc)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// startOfDay truncates a moment to midnight of its calendar day.
func startOfDay(moment time.Time) time.Time {
	return time.Date(moment.Year(), moment.Month(), moment.Day(), 0, 0, 0, 0, moment.Location())
}
