package types

// Statistics summarizes task counts by effective status. Pending counts
// only tasks that are not past due; Overdue counts stored-overdue tasks
// plus pending tasks whose due date has passed, so the figures are correct
// even when a sweep has not run yet.
type Statistics struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
	Overdue   int64 `json:"overdue"`
}

// Zero reports whether every counter is zero.
func (s Statistics) Zero() bool {
	return s.Total == 0 && s.Completed == 0 && s.Pending == 0 && s.Overdue == 0
}
