package types

// TaskPatch describes a partial update to a task. Nil fields are left
// unchanged; the set of updatable fields is closed. A non-nil DueDate
// pointing at an empty string clears the due date, and a non-nil
// CategoryID pointing at zero clears the category reference (row IDs
// start at one, so zero is never a valid category).
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *string `validate:"omitnil,omitempty,iso_date"`
	Status      *string `validate:"omitnil,task_status"`
	Priority    *string `validate:"omitnil,task_priority"`
	CategoryID  *int64
}

// Empty reports whether the patch carries no fields.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil &&
		p.Status == nil && p.Priority == nil && p.CategoryID == nil
}

// Fields returns the names of the fields the patch carries, in storage
// column order. Used for the audit detail of edit operations.
func (p TaskPatch) Fields() []string {
	var fields []string
	if p.Title != nil {
		fields = append(fields, "title")
	}
	if p.Description != nil {
		fields = append(fields, "description")
	}
	if p.DueDate != nil {
		fields = append(fields, "due_date")
	}
	if p.Status != nil {
		fields = append(fields, "status")
	}
	if p.Priority != nil {
		fields = append(fields, "priority")
	}
	if p.CategoryID != nil {
		fields = append(fields, "category_id")
	}
	return fields
}

// CategoryPatch describes a partial update to a category.
type CategoryPatch struct {
	Name        *string
	Description *string
}

// Empty reports whether the patch carries no fields.
func (p CategoryPatch) Empty() bool {
	return p.Name == nil && p.Description == nil
}

// TagPatch describes a partial update to a tag.
type TagPatch struct {
	Name  *string
	Color *string
}

// Empty reports whether the patch carries no fields.
func (p TagPatch) Empty() bool {
	return p.Name == nil && p.Color == nil
}
