// Package undo implements the in-process reversal stack for destructive
// task actions. The stack is process-resident and strictly LIFO; nothing
// survives a restart. It operates through a narrow gateway so reversals
// run through the same validated write paths as any other change.
package undo

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dmaldon/taskdesk/pkg/types"
)

// Gateway is the slice of the storage surface reversals need.
type Gateway interface {
	CreateTask(p types.TaskParams) (*types.Task, error)
	UpdateTask(id int64, patch types.TaskPatch) (bool, error)
	GetTask(id int64) (*types.Task, error)
}

// Kind names the action a stack entry reverses.
type Kind string

const (
	// Delete entries restore a deleted task from its snapshot.
	Delete Kind = "delete"
	// Complete entries revert a completion back to pending.
	Complete Kind = "complete"
)

// DeletedTask is the snapshot captured before a deletion. Restoring it
// creates a new task row; the original id, tag links, and history rows
// are not resurrected.
type DeletedTask struct {
	Title       string
	Description string
	DueDate     string
	Priority    string
	Status      string
	CategoryID  *int64
}

// Snapshot captures the fields of a live task that a restore needs.
func Snapshot(t *types.Task) DeletedTask {
	s := DeletedTask{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Status:      t.Status,
	}
	if t.CategoryID != nil {
		id := *t.CategoryID
		s.CategoryID = &id
	}
	return s
}

type entry struct {
	id      string
	kind    Kind
	payload any
}

// Stack records destructive actions and reverses the most recent one on
// demand. Safe for concurrent use.
type Stack struct {
	mu      sync.Mutex
	gateway Gateway
	entries []entry
}

// NewStack returns an empty stack operating through the given gateway.
func NewStack(gateway Gateway) *Stack {
	return &Stack{gateway: gateway}
}

// Record pushes an action onto the stack and returns the entry id, which
// callers can carry in their logs to correlate a recorded action with its
// eventual reversal. Delete entries carry a DeletedTask snapshot; Complete
// entries carry the task id.
func (s *Stack) Record(kind Kind, payload any) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.entries = append(s.entries, entry{id: id, kind: kind, payload: payload})
	return id
}

// Len returns the number of recorded actions.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Undo pops the most recent action and reverses it, returning a short
// confirmation of what happened. An empty stack returns ok=false with no
// error. Entries are consumed even when the reversal fails.
func (s *Stack) Undo() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return "", false, nil
	}
	e := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]

	switch e.kind {
	case Delete:
		snap, ok := e.payload.(DeletedTask)
		if !ok {
			return "", false, fmt.Errorf("delete entry carries %T, not a task snapshot", e.payload)
		}
		return s.restore(snap)
	case Complete:
		id, ok := e.payload.(int64)
		if !ok {
			return "", false, fmt.Errorf("complete entry carries %T, not a task id", e.payload)
		}
		return s.reopen(id)
	default:
		return "", false, fmt.Errorf("unknown undo kind %q", e.kind)
	}
}

// restore recreates a deleted task from its snapshot through the normal
// create path, then puts back a non-pending prior status.
func (s *Stack) restore(snap DeletedTask) (string, bool, error) {
	created, err := s.gateway.CreateTask(types.TaskParams{
		Title:       snap.Title,
		Description: snap.Description,
		DueDate:     snap.DueDate,
		Priority:    snap.Priority,
		CategoryID:  snap.CategoryID,
	})
	if err != nil {
		return "", false, fmt.Errorf("restoring task %q: %w", snap.Title, err)
	}

	if snap.Status != "" && snap.Status != types.StatusPending {
		status := snap.Status
		if _, err := s.gateway.UpdateTask(created.ID, types.TaskPatch{Status: &status}); err != nil {
			return "", false, fmt.Errorf("restoring status of task %q: %w", snap.Title, err)
		}
	}

	return fmt.Sprintf("restored %q", snap.Title), true, nil
}

// reopen reverts a completed task to pending. The reversion always goes
// through the update path; a task deleted since its completion makes the
// patch a no-op.
func (s *Stack) reopen(id int64) (string, bool, error) {
	task, err := s.gateway.GetTask(id)
	if err != nil && err != types.ErrNotFound {
		return "", false, fmt.Errorf("looking up task %d: %w", id, err)
	}

	pending := types.StatusPending
	reverted, uerr := s.gateway.UpdateTask(id, types.TaskPatch{Status: &pending})
	if uerr != nil {
		return "", false, fmt.Errorf("reopening task %d: %w", id, uerr)
	}
	if err == types.ErrNotFound || !reverted {
		return "the completed task no longer exists", true, nil
	}

	return fmt.Sprintf("reopened %q", task.Title), true, nil
}
