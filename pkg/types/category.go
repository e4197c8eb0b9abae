package types

// Category is a named grouping for tasks. Names are unique across all
// categories. A category cannot be deleted while any task references it.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
