// This file implements the activity history of the persistence gateway.
// Task writes append their history rows inside the same transaction as
// the triggering change, so the log never drifts from the task table.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dmaldon/taskdesk/pkg/types"
)

// defaultLogLimit bounds RecentLog when the caller passes no limit.
const defaultLogLimit = 50

// appendLogTx inserts a history row as part of an open transaction.
func appendLogTx(tx *sql.Tx, action, taskTitle, detail string, now time.Time) error {
	if !types.ValidAction(action) {
		return types.NewValidationError("action", fmt.Sprintf("unknown action %q", action))
	}

	_, err := tx.Exec(
		"INSERT INTO history (action, task_title, detail, created_at) VALUES (?, ?, ?, ?)",
		action, taskTitle, detail, now.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("appending history row: %w", err)
	}
	return nil
}

// AppendLog records a standalone history entry outside any task write,
// for actions such as undo that have no task transaction of their own.
func (b *Backend) AppendLog(action, taskTitle, detail string) error {
	db, err := b.handle()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := appendLogTx(tx, action, taskTitle, detail, time.Now()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing history entry: %w", err)
	}
	return nil
}

// RecentLog returns history entries newest first. A non-positive limit
// takes the default of 50.
func (b *Backend) RecentLog(limit int) ([]types.LogEntry, error) {
	db, err := b.handle()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultLogLimit
	}

	rows, err := db.Query(
		"SELECT id, action, task_title, detail, created_at FROM history ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	entries := []types.LogEntry{}
	for rows.Next() {
		var (
			e     types.LogEntry
			stamp string
		)
		if err := rows.Scan(&e.ID, &e.Action, &e.TaskTitle, &e.Detail, &stamp); err != nil {
			return nil, fmt.Errorf("hydrating history entry: %w", err)
		}
		created, err := time.Parse(time.RFC3339, stamp)
		if err != nil {
			return nil, fmt.Errorf("parsing history timestamp: %w", err)
		}
		e.CreatedAt = created
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}

	return entries, nil
}
