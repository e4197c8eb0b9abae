package types

// DefaultTagColor is applied when a tag is created without a color.
const DefaultTagColor = "#88C0D0"

// Tag is an independent many-to-many label on tasks. A task may carry zero
// or more tags; a tag may mark any number of tasks.
type Tag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // 7-character #RRGGBB form.
}
