package types

import "time"

// Log entry actions: the fixed vocabulary of recorded task operations.
const (
	ActionCreate   = "create"
	ActionEdit     = "edit"
	ActionDelete   = "delete"
	ActionComplete = "complete"
)

// validActions is the set of recognized log entry actions.
var validActions = map[string]bool{
	ActionCreate:   true,
	ActionEdit:     true,
	ActionDelete:   true,
	ActionComplete: true,
}

// ValidAction reports whether a is a recognized log entry action.
func ValidAction(a string) bool { return validActions[a] }

// LogEntry is an append-only audit record of a task operation. Entries are
// never mutated or deleted by normal operation.
type LogEntry struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	TaskTitle string    `json:"task_title"` // Title snapshot of the affected task.
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
