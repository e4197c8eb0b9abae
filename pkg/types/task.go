package types

import "time"

// Task statuses. A task is created pending, becomes completed through the
// explicit complete action, and becomes overdue when its due date passes
// while still pending.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusOverdue   = "overdue"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DueDateLayout is the storage form of due dates: a calendar date with no
// time component.
const DueDateLayout = "2006-01-02"

// validStatuses is the set of recognized task status values.
var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusCompleted: true,
	StatusOverdue:   true,
}

// validPriorities is the set of recognized task priority values.
var validPriorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

// ValidStatus reports whether s is a recognized task status.
func ValidStatus(s string) bool { return validStatuses[s] }

// ValidPriority reports whether p is a recognized task priority.
func ValidPriority(p string) bool { return validPriorities[p] }

// TaskParams carries the caller-supplied fields for task creation. The
// title is required; priority defaults to medium when empty. Validation
// tags are enforced by the storage backend before any write.
type TaskParams struct {
	Title       string `validate:"required"`
	Description string
	DueDate     string `validate:"omitempty,iso_date"`
	Priority    string `validate:"omitempty,task_priority"`
	CategoryID  *int64
}

// Task represents a unit of work.
type Task struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`                   // Required, non-empty after trimming.
	Description  string    `json:"description"`             // Optional, defaults to empty.
	DueDate      string    `json:"due_date,omitempty"`      // ISO calendar date, empty when unset.
	Status       string    `json:"status"`                  // One of the Status constants.
	Priority     string    `json:"priority"`                // One of the Priority constants.
	CategoryID   *int64    `json:"category_id,omitempty"`   // Nil when the task has no category.
	CategoryName string    `json:"category_name,omitempty"` // Joined on read, not stored.
	CreatedAt    time.Time `json:"created_at"`              // Assigned at creation, immutable.
}

// OverdueOn reports whether the task is semantically overdue on the given
// calendar date: still pending, with a due date strictly before that date.
// Both sides are ISO date strings, so the comparison is lexical and matches
// the predicate the store uses for its sweep and statistics queries. A task
// past its due date satisfies this before any sweep persists the overdue
// status.
func (t *Task) OverdueOn(date string) bool {
	return t.Status == StatusPending && t.DueDate != "" && t.DueDate < date
}

// DueOn reports whether the task is pending with a due date equal to the
// given calendar date.
func (t *Task) DueOn(date string) bool {
	return t.Status == StatusPending && t.DueDate == date
}

// Today returns the current local calendar date in the due date layout.
func Today() string {
	return time.Now().Format(DueDateLayout)
}
