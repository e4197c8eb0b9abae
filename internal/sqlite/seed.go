package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dmaldon/taskdesk/pkg/types"
)

// defaultCategory describes a category to seed on attach.
type defaultCategory struct {
	name        string
	description string
}

// defaultCategories is the fixed set inserted on first use. Each entry is
// guarded by its own not-exists check, so a user who deletes one of them
// gets it back on the next attach without disturbing the rest.
var defaultCategories = []defaultCategory{
	{"Work", "Work-related tasks"},
	{"Personal", "Personal tasks"},
	{"Home", "Household tasks"},
	{"Study", "Academic tasks"},
	{"Health", "Health tasks"},
	{"Finance", "Financial tasks"},
}

// seedDefaultCategories inserts any default category whose name is not
// already present. Idempotent.
func seedDefaultCategories(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, dc := range defaultCategories {
		var exists bool
		err := tx.QueryRow("SELECT 1 FROM categories WHERE name = ?", dc.name).Scan(&exists)
		if err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("checking category %s: %w", dc.name, err)
		}
		if err == nil {
			continue
		}
		if _, err := tx.Exec(
			"INSERT INTO categories (name, description) VALUES (?, ?)",
			dc.name, dc.description,
		); err != nil {
			return fmt.Errorf("seeding category %s: %w", dc.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}

	return nil
}

// sampleTask describes a demonstration task seeded by SeedSamples.
type sampleTask struct {
	title       string
	description string
	dueIn       int // days from today; negative means already past
	hasDue      bool
	status      string
	priority    string
	category    string
}

// sampleTasks is the demonstration set. Due dates are relative to the day
// of seeding so the pending ones never start out past due.
var sampleTasks = []sampleTask{
	{"Review quarterly report", "Check the numbers and prepare the presentation", 14, true, types.StatusPending, types.PriorityHigh, "Work"},
	{"Buy groceries", "Go to the supermarket", 3, true, types.StatusPending, types.PriorityMedium, "Home"},
	{"Study for exam", "Review chapters 5-8", 7, true, types.StatusPending, types.PriorityHigh, "Study"},
	{"Call the doctor", "Book a checkup appointment", 0, false, types.StatusCompleted, types.PriorityLow, "Health"},
	{"Send weekly report", "Email it to the team", -2, true, types.StatusCompleted, types.PriorityMedium, "Work"},
}

// SeedSamples inserts the demonstration tasks when the tasks table is
// empty. Returns the number of tasks inserted: zero means the store
// already held tasks and nothing was touched.
func (b *Backend) SeedSamples() (int, error) {
	db, err := b.handle()
	if err != nil {
		return 0, err
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM tasks").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting tasks: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	categoryIDs := make(map[string]int64)
	rows, err := db.Query("SELECT id, name FROM categories")
	if err != nil {
		return 0, fmt.Errorf("loading categories for samples: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return 0, fmt.Errorf("scanning category: %w", err)
		}
		categoryIDs[name] = id
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterating categories: %w", err)
	}

	now := time.Now().UTC()
	today := time.Now()

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning sample transaction: %w", err)
	}
	defer tx.Rollback()

	for _, st := range sampleTasks {
		var dueDate any
		if st.hasDue {
			dueDate = today.AddDate(0, 0, st.dueIn).Format(types.DueDateLayout)
		}
		var categoryID any
		if id, ok := categoryIDs[st.category]; ok {
			categoryID = id
		}
		if _, err := tx.Exec(
			"INSERT INTO tasks (title, description, due_date, status, priority, category_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			st.title, st.description, dueDate, st.status, st.priority, categoryID, now.Format(time.RFC3339),
		); err != nil {
			return 0, fmt.Errorf("seeding sample task %s: %w", st.title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing sample transaction: %w", err)
	}

	return len(sampleTasks), nil
}
