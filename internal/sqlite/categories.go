// This file implements the category operations of the persistence gateway.
// Category deletion enforces referential integrity at this level rather
// than with a bare foreign key, so the caller gets a descriptive error
// carrying the blocking task count.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmaldon/taskdesk/internal/validation"
	"github.com/dmaldon/taskdesk/pkg/types"
)

// CreateCategory validates and inserts a new category. Names are unique;
// a duplicate surfaces as a ValidationError before the write.
func (b *Backend) CreateCategory(name, description string) (*types.Category, error) {
	db, err := b.handle()
	if err != nil {
		return nil, err
	}

	name = validation.SanitizeText(name)
	if name == "" {
		return nil, types.NewValidationError("name", "must not be empty")
	}

	var exists bool
	err = db.QueryRow("SELECT 1 FROM categories WHERE name = ?", name).Scan(&exists)
	if err == nil {
		return nil, types.NewValidationError("name", fmt.Sprintf("category %q already exists", name))
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("checking category name: %w", err)
	}

	res, err := db.Exec("INSERT INTO categories (name, description) VALUES (?, ?)", name, description)
	if err != nil {
		return nil, fmt.Errorf("inserting category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new category id: %w", err)
	}

	return &types.Category{ID: id, Name: name, Description: description}, nil
}

// ListCategories returns all categories ordered by name.
func (b *Backend) ListCategories() ([]types.Category, error) {
	db, err := b.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT id, name, description FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	categories := []types.Category{}
	for rows.Next() {
		var c types.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("hydrating category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return categories, nil
}

// GetCategory retrieves a category by ID.
// Returns ErrNotFound if no category exists with that ID.
func (b *Backend) GetCategory(id int64) (*types.Category, error) {
	db, err := b.handle()
	if err != nil {
		return nil, err
	}

	var c types.Category
	err = db.QueryRow("SELECT id, name, description FROM categories WHERE id = ?", id).
		Scan(&c.ID, &c.Name, &c.Description)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting category %d: %w", id, err)
	}
	return &c, nil
}

// GetCategoryByName retrieves a category by its exact name.
// Returns ErrNotFound if no category has that name.
func (b *Backend) GetCategoryByName(name string) (*types.Category, error) {
	db, err := b.handle()
	if err != nil {
		return nil, err
	}

	var c types.Category
	err = db.QueryRow("SELECT id, name, description FROM categories WHERE name = ?", name).
		Scan(&c.ID, &c.Name, &c.Description)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting category %q: %w", name, err)
	}
	return &c, nil
}

// UpdateCategory applies the non-nil fields of the patch. Returns false
// without error when the category does not exist or the patch is empty.
func (b *Backend) UpdateCategory(id int64, patch types.CategoryPatch) (bool, error) {
	db, err := b.handle()
	if err != nil {
		return false, err
	}

	if patch.Empty() {
		return false, nil
	}

	var exists bool
	err = db.QueryRow("SELECT 1 FROM categories WHERE id = ?", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking category existence: %w", err)
	}

	var sets []string
	var args []any
	if patch.Name != nil {
		name := validation.SanitizeText(*patch.Name)
		if name == "" {
			return false, types.NewValidationError("name", "must not be empty")
		}
		var taken bool
		err := db.QueryRow("SELECT 1 FROM categories WHERE name = ? AND id != ?", name, id).Scan(&taken)
		if err == nil {
			return false, types.NewValidationError("name", fmt.Sprintf("category %q already exists", name))
		}
		if err != sql.ErrNoRows {
			return false, fmt.Errorf("checking category name: %w", err)
		}
		sets = append(sets, "name = ?")
		args = append(args, name)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	args = append(args, id)

	if _, err := db.Exec("UPDATE categories SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
		return false, fmt.Errorf("updating category %d: %w", id, err)
	}

	return true, nil
}

// DeleteCategory removes a category that no task references. When
// referencing tasks exist, it returns a ReferentialIntegrityError carrying
// the blocking count and changes nothing. Returns false without error when
// no category exists with that ID.
func (b *Backend) DeleteCategory(id int64) (bool, error) {
	db, err := b.handle()
	if err != nil {
		return false, err
	}

	var name string
	err = db.QueryRow("SELECT name FROM categories WHERE id = ?", id).Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking category existence: %w", err)
	}

	count, err := b.CountTasksByCategory(id)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, &types.ReferentialIntegrityError{CategoryID: id, Name: name, Count: count}
	}

	if _, err := db.Exec("DELETE FROM categories WHERE id = ?", id); err != nil {
		return false, fmt.Errorf("deleting category %d: %w", id, err)
	}

	return true, nil
}

// CountTasksByCategory returns the number of tasks referencing a category.
// This is the probe behind the deletion guard, exported so surfaces can
// warn before attempting a delete.
func (b *Backend) CountTasksByCategory(id int64) (int64, error) {
	db, err := b.handle()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.QueryRow("SELECT COUNT(*) FROM tasks WHERE category_id = ?", id).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting tasks for category %d: %w", id, err)
	}
	return count, nil
}
