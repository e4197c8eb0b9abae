// This file implements the task operations of the persistence gateway:
// create, list, get, partial update, delete, complete, the overdue sweep,
// and the status statistics.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmaldon/taskdesk/internal/validation"
	"github.com/dmaldon/taskdesk/pkg/types"
)

// overdueCondition matches pending tasks whose due date is strictly before
// the calendar date bound as its single parameter. The sweep, statistics,
// and listings all bind this same fragment, so the codepaths cannot
// disagree about which tasks count as overdue. Due dates are ISO strings;
// the comparison is lexical, mirroring types.Task.OverdueOn.
const overdueCondition = "status = '" + types.StatusPending + "' AND due_date IS NOT NULL AND due_date < ?"

// selectTask is the base query for hydrating tasks, with the category name
// joined in so callers can render without a second lookup.
const selectTask = `SELECT tasks.id, tasks.title, tasks.description, tasks.due_date,
tasks.status, tasks.priority, tasks.category_id, categories.name, tasks.created_at
FROM tasks LEFT JOIN categories ON categories.id = tasks.category_id`

// taskOrder is the presentation ordering contract: actionable first.
// Status ranks pending before overdue before completed, priority ranks
// high before medium before low, and due dates ascend with dateless tasks
// sorted last.
const taskOrder = ` ORDER BY
CASE tasks.status WHEN 'pending' THEN 1 WHEN 'overdue' THEN 2 WHEN 'completed' THEN 3 ELSE 4 END,
CASE tasks.priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 ELSE 4 END,
COALESCE(tasks.due_date, 'zzzz') ASC`

// CategoryFilterAll is the sentinel list filter matching every task.
const CategoryFilterAll = "all"

// CreateTask validates the input and inserts a new task. Tasks are always
// created pending; priority defaults to medium and the description to
// empty. The audit record commits in the same transaction as the insert.
func (b *Backend) CreateTask(p types.TaskParams) (*types.Task, error) {
	db, err := b.handle()
	if err != nil {
		return nil, err
	}

	p.Title = validation.SanitizeText(p.Title)
	if p.Priority == "" {
		p.Priority = types.PriorityMedium
	}
	if err := validation.TaskParams(p); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO tasks (title, description, due_date, status, priority, category_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		p.Title, p.Description, nullIfEmpty(p.DueDate), types.StatusPending, p.Priority,
		nullIfNoCategory(p.CategoryID), now.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new task id: %w", err)
	}

	if err := appendLogTx(tx, types.ActionCreate, p.Title, "Task created with priority "+p.Priority, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing task: %w", err)
	}

	return b.GetTask(id)
}

// ListTasks returns tasks in the presentation order, optionally filtered
// by category name. An empty filter or the "all" sentinel matches every
// task. The ordering snapshot is taken against the stored status before
// the overdue transition is persisted: a task that crossed its due date
// keeps its pending rank on the listing that detects it, is returned with
// status overdue, and joins the overdue band from the next listing on.
func (b *Backend) ListTasks(categoryFilter string) ([]types.Task, error) {
	db, err := b.handle()
	if err != nil {
		return nil, err
	}

	query := selectTask
	var args []any
	if !matchesAll(categoryFilter) {
		query += " WHERE categories.name = ?"
		args = append(args, categoryFilter)
	}
	query += taskOrder

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	tasks := []types.Task{}
	for rows.Next() {
		task, err := hydrateTaskFromRows(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("hydrating task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	// The transaction holds one connection; the cursor must be drained
	// before the sweep statement runs on it.
	rows.Close()

	today := types.Today()
	if _, err := tx.Exec(
		"UPDATE tasks SET status = ? WHERE "+overdueCondition,
		types.StatusOverdue, today,
	); err != nil {
		return nil, fmt.Errorf("sweeping overdue tasks: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing overdue sweep: %w", err)
	}

	for i := range tasks {
		if tasks[i].OverdueOn(today) {
			tasks[i].Status = types.StatusOverdue
		}
	}

	return tasks, nil
}

// GetTask retrieves a task by ID with its category name joined in.
// Returns ErrNotFound if no task exists with that ID.
func (b *Backend) GetTask(id int64) (*types.Task, error) {
	db, err := b.handle()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(selectTask+" WHERE tasks.id = ?", id)
	task, err := hydrateTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting task %d: %w", id, err)
	}
	return task, nil
}

// UpdateTask applies the non-nil fields of the patch to an existing task.
// Returns false without error when the task does not exist or the patch
// carries no fields. Status and priority values are re-validated against
// their enumerations before the write.
func (b *Backend) UpdateTask(id int64, patch types.TaskPatch) (bool, error) {
	db, err := b.handle()
	if err != nil {
		return false, err
	}

	if patch.Empty() {
		return false, nil
	}
	if err := validation.TaskPatch(patch); err != nil {
		return false, err
	}

	// Title snapshot for the audit record, and the existence probe.
	var title string
	err = db.QueryRow("SELECT title FROM tasks WHERE id = ?", id).Scan(&title)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking task existence: %w", err)
	}

	var sets []string
	var args []any
	if patch.Title != nil {
		newTitle := validation.SanitizeText(*patch.Title)
		if newTitle == "" {
			return false, types.NewValidationError("title", "must not be empty")
		}
		sets = append(sets, "title = ?")
		args = append(args, newTitle)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, nullIfEmpty(*patch.DueDate))
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
	}
	if patch.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, *patch.Priority)
	}
	if patch.CategoryID != nil {
		sets = append(sets, "category_id = ?")
		args = append(args, nullIfNoCategory(patch.CategoryID))
	}
	args = append(args, id)

	now := time.Now().UTC()

	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
		return false, fmt.Errorf("updating task %d: %w", id, err)
	}

	detail := "Updated fields: " + strings.Join(patch.Fields(), ", ")
	if err := appendLogTx(tx, types.ActionEdit, title, detail, now); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing task update: %w", err)
	}

	return true, nil
}

// DeleteTask removes a task permanently, along with its tag links.
// Returns false without error when no task exists with that ID.
func (b *Backend) DeleteTask(id int64) (bool, error) {
	db, err := b.handle()
	if err != nil {
		return false, err
	}

	// The audit record snapshots the title before the row disappears.
	var title string
	err = db.QueryRow("SELECT title FROM tasks WHERE id = ?", id).Scan(&title)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking task existence: %w", err)
	}

	now := time.Now().UTC()

	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM task_tags WHERE task_id = ?", id); err != nil {
		return false, fmt.Errorf("deleting task tag links: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM tasks WHERE id = ?", id); err != nil {
		return false, fmt.Errorf("deleting task %d: %w", id, err)
	}

	if err := appendLogTx(tx, types.ActionDelete, title, "Task deleted permanently", now); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing task deletion: %w", err)
	}

	return true, nil
}

// CompleteTask marks a task completed. Completing an already-completed
// task is a valid call and a data-level no-op, but still records the
// action. Returns false without error when no task exists with that ID.
func (b *Backend) CompleteTask(id int64) (bool, error) {
	db, err := b.handle()
	if err != nil {
		return false, err
	}

	var title string
	err = db.QueryRow("SELECT title FROM tasks WHERE id = ?", id).Scan(&title)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking task existence: %w", err)
	}

	now := time.Now().UTC()

	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE tasks SET status = ? WHERE id = ?", types.StatusCompleted, id); err != nil {
		return false, fmt.Errorf("completing task %d: %w", id, err)
	}

	if err := appendLogTx(tx, types.ActionComplete, title, "Task marked as completed", now); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing task completion: %w", err)
	}

	return true, nil
}

// SweepOverdue persists the overdue status for every pending task whose
// due date has passed, and returns the number of rows changed. Running it
// again immediately changes nothing.
func (b *Backend) SweepOverdue() (int64, error) {
	db, err := b.handle()
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(
		"UPDATE tasks SET status = ? WHERE "+overdueCondition,
		types.StatusOverdue, types.Today(),
	)
	if err != nil {
		return 0, fmt.Errorf("sweeping overdue tasks: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting swept tasks: %w", err)
	}
	return n, nil
}

// Statistics returns task counts by effective status. Pending tasks past
// their due date count as overdue, not pending, even while their stored
// status has not caught up with a sweep.
func (b *Backend) Statistics() (types.Statistics, error) {
	db, err := b.handle()
	if err != nil {
		return types.Statistics{}, err
	}

	var s types.Statistics
	if err := db.QueryRow("SELECT COUNT(*) FROM tasks").Scan(&s.Total); err != nil {
		return types.Statistics{}, fmt.Errorf("counting tasks: %w", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM tasks WHERE status = ?", types.StatusCompleted).Scan(&s.Completed); err != nil {
		return types.Statistics{}, fmt.Errorf("counting completed tasks: %w", err)
	}

	var storedOverdue, storedPending, pastDue int64
	if err := db.QueryRow("SELECT COUNT(*) FROM tasks WHERE status = ?", types.StatusOverdue).Scan(&storedOverdue); err != nil {
		return types.Statistics{}, fmt.Errorf("counting overdue tasks: %w", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM tasks WHERE status = ?", types.StatusPending).Scan(&storedPending); err != nil {
		return types.Statistics{}, fmt.Errorf("counting pending tasks: %w", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM tasks WHERE "+overdueCondition, types.Today()).Scan(&pastDue); err != nil {
		return types.Statistics{}, fmt.Errorf("counting past-due tasks: %w", err)
	}

	s.Overdue = storedOverdue + pastDue
	s.Pending = storedPending - pastDue

	return s, nil
}

// matchesAll reports whether the category filter requests every task.
func matchesAll(filter string) bool {
	return filter == "" || strings.EqualFold(filter, CategoryFilterAll)
}

// nullIfEmpty stores NULL for an empty string column value.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullIfNoCategory stores NULL for an absent category reference. Row IDs
// start at one, so zero also means "no category" (the patch convention
// for clearing the field).
func nullIfNoCategory(id *int64) any {
	if id == nil || *id == 0 {
		return nil
	}
	return *id
}

// hydrateTask converts a single row into a *types.Task.
func hydrateTask(row *sql.Row) (*types.Task, error) {
	var t types.Task
	var dueDate, categoryName sql.NullString
	var categoryID sql.NullInt64
	var createdAt string
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &dueDate, &t.Status, &t.Priority,
		&categoryID, &categoryName, &createdAt); err != nil {
		return nil, err
	}
	return finishTask(&t, dueDate, categoryID, categoryName, createdAt)
}

// hydrateTaskFromRows converts a row from sql.Rows into a *types.Task.
func hydrateTaskFromRows(rows *sql.Rows) (*types.Task, error) {
	var t types.Task
	var dueDate, categoryName sql.NullString
	var categoryID sql.NullInt64
	var createdAt string
	if err := rows.Scan(&t.ID, &t.Title, &t.Description, &dueDate, &t.Status, &t.Priority,
		&categoryID, &categoryName, &createdAt); err != nil {
		return nil, err
	}
	return finishTask(&t, dueDate, categoryID, categoryName, createdAt)
}

// finishTask fills the nullable columns and parses the creation timestamp.
func finishTask(t *types.Task, dueDate sql.NullString, categoryID sql.NullInt64, categoryName sql.NullString, createdAt string) (*types.Task, error) {
	if dueDate.Valid {
		t.DueDate = dueDate.String
	}
	if categoryID.Valid {
		id := categoryID.Int64
		t.CategoryID = &id
	}
	if categoryName.Valid {
		t.CategoryName = categoryName.String
	}
	var err error
	t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return t, nil
}
