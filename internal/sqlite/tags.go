// This file implements the tag operations of the persistence gateway,
// including the many-to-many links between tasks and tags.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmaldon/taskdesk/internal/validation"
	"github.com/dmaldon/taskdesk/pkg/types"
)

// CreateTag validates and inserts a new tag. An empty color takes the
// default; names are unique.
func (b *Backend) CreateTag(name, color string) (*types.Tag, error) {
	db, err := b.handle()
	if err != nil {
		return nil, err
	}

	name = validation.SanitizeText(name)
	if name == "" {
		return nil, types.NewValidationError("name", "must not be empty")
	}
	if color == "" {
		color = types.DefaultTagColor
	}
	if err := validation.ValidateTagColor(color); err != nil {
		return nil, err
	}

	var exists bool
	err = db.QueryRow("SELECT 1 FROM tags WHERE name = ?", name).Scan(&exists)
	if err == nil {
		return nil, types.NewValidationError("name", fmt.Sprintf("tag %q already exists", name))
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("checking tag name: %w", err)
	}

	res, err := db.Exec("INSERT INTO tags (name, color) VALUES (?, ?)", name, color)
	if err != nil {
		return nil, fmt.Errorf("inserting tag: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new tag id: %w", err)
	}

	return &types.Tag{ID: id, Name: name, Color: color}, nil
}

// ListTags returns all tags ordered by name.
func (b *Backend) ListTags() ([]types.Tag, error) {
	db, err := b.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT id, name, color FROM tags ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer rows.Close()

	return collectTags(rows)
}

// GetTag retrieves a tag by ID.
// Returns ErrNotFound if no tag exists with that ID.
func (b *Backend) GetTag(id int64) (*types.Tag, error) {
	db, err := b.handle()
	if err != nil {
		return nil, err
	}

	var t types.Tag
	err = db.QueryRow("SELECT id, name, color FROM tags WHERE id = ?", id).
		Scan(&t.ID, &t.Name, &t.Color)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting tag %d: %w", id, err)
	}
	return &t, nil
}

// UpdateTag applies the non-nil fields of the patch. Returns false
// without error when the tag does not exist or the patch is empty.
func (b *Backend) UpdateTag(id int64, patch types.TagPatch) (bool, error) {
	db, err := b.handle()
	if err != nil {
		return false, err
	}

	if patch.Empty() {
		return false, nil
	}

	var exists bool
	err = db.QueryRow("SELECT 1 FROM tags WHERE id = ?", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking tag existence: %w", err)
	}

	var sets []string
	var args []any
	if patch.Name != nil {
		name := validation.SanitizeText(*patch.Name)
		if name == "" {
			return false, types.NewValidationError("name", "must not be empty")
		}
		var taken bool
		err := db.QueryRow("SELECT 1 FROM tags WHERE name = ? AND id != ?", name, id).Scan(&taken)
		if err == nil {
			return false, types.NewValidationError("name", fmt.Sprintf("tag %q already exists", name))
		}
		if err != sql.ErrNoRows {
			return false, fmt.Errorf("checking tag name: %w", err)
		}
		sets = append(sets, "name = ?")
		args = append(args, name)
	}
	if patch.Color != nil {
		if err := validation.ValidateTagColor(*patch.Color); err != nil {
			return false, err
		}
		sets = append(sets, "color = ?")
		args = append(args, *patch.Color)
	}
	args = append(args, id)

	if _, err := db.Exec("UPDATE tags SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
		return false, fmt.Errorf("updating tag %d: %w", id, err)
	}

	return true, nil
}

// DeleteTag removes a tag and its task links in one transaction.
// Returns false without error when no tag exists with that ID.
func (b *Backend) DeleteTag(id int64) (bool, error) {
	db, err := b.handle()
	if err != nil {
		return false, err
	}

	var exists bool
	err = db.QueryRow("SELECT 1 FROM tags WHERE id = ?", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking tag existence: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM task_tags WHERE tag_id = ?", id); err != nil {
		return false, fmt.Errorf("deleting tag links: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM tags WHERE id = ?", id); err != nil {
		return false, fmt.Errorf("deleting tag %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing tag deletion: %w", err)
	}

	return true, nil
}

// TagTask links a tag to a task. Both ends must exist; linking an already
// linked pair is a no-op.
func (b *Backend) TagTask(taskID, tagID int64) error {
	db, err := b.handle()
	if err != nil {
		return err
	}

	var exists bool
	err = db.QueryRow("SELECT 1 FROM tasks WHERE id = ?", taskID).Scan(&exists)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking task existence: %w", err)
	}
	err = db.QueryRow("SELECT 1 FROM tags WHERE id = ?", tagID).Scan(&exists)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking tag existence: %w", err)
	}

	if _, err := db.Exec(
		"INSERT OR IGNORE INTO task_tags (task_id, tag_id) VALUES (?, ?)",
		taskID, tagID,
	); err != nil {
		return fmt.Errorf("linking tag %d to task %d: %w", tagID, taskID, err)
	}

	return nil
}

// UntagTask removes the link between a tag and a task. Returns false
// without error when the pair was not linked.
func (b *Backend) UntagTask(taskID, tagID int64) (bool, error) {
	db, err := b.handle()
	if err != nil {
		return false, err
	}

	res, err := db.Exec("DELETE FROM task_tags WHERE task_id = ? AND tag_id = ?", taskID, tagID)
	if err != nil {
		return false, fmt.Errorf("unlinking tag %d from task %d: %w", tagID, taskID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("counting unlinked rows: %w", err)
	}
	return n > 0, nil
}

// TaskTags returns the tags linked to a task, ordered by name.
// Returns ErrNotFound if no task exists with that ID.
func (b *Backend) TaskTags(taskID int64) ([]types.Tag, error) {
	db, err := b.handle()
	if err != nil {
		return nil, err
	}

	var exists bool
	err = db.QueryRow("SELECT 1 FROM tasks WHERE id = ?", taskID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("checking task existence: %w", err)
	}

	rows, err := db.Query(
		`SELECT tags.id, tags.name, tags.color FROM tags
		INNER JOIN task_tags ON task_tags.tag_id = tags.id
		WHERE task_tags.task_id = ? ORDER BY tags.name`,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing tags for task %d: %w", taskID, err)
	}
	defer rows.Close()

	return collectTags(rows)
}

// collectTags hydrates a tag result set into a slice.
func collectTags(rows *sql.Rows) ([]types.Tag, error) {
	tags := []types.Tag{}
	for rows.Next() {
		var t types.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color); err != nil {
			return nil, fmt.Errorf("hydrating tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}
	return tags, nil
}
