// Unit tests for task operations: creation defaults, the presentation
// ordering, partial updates, the overdue sweep, and statistics.
package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaldon/taskdesk/pkg/types"
)

// mustCreateTask creates a task or fails the test.
func mustCreateTask(t *testing.T, b *Backend, p types.TaskParams) *types.Task {
	t.Helper()
	task, err := b.CreateTask(p)
	require.NoError(t, err)
	return task
}

// isoDaysFromNow formats a calendar date the given number of days away.
func isoDaysFromNow(days int) string {
	return time.Now().AddDate(0, 0, days).Format(types.DueDateLayout)
}

func strPtr(s string) *string { return &s }

func TestCreateTaskDefaults(t *testing.T) {
	b := setupBackend(t)

	task := mustCreateTask(t, b, types.TaskParams{Title: "Water the plants"})

	assert.NotZero(t, task.ID)
	assert.Equal(t, "Water the plants", task.Title)
	assert.Empty(t, task.Description)
	assert.Empty(t, task.DueDate)
	assert.Equal(t, types.StatusPending, task.Status)
	assert.Equal(t, types.PriorityMedium, task.Priority)
	assert.Nil(t, task.CategoryID)
	assert.Empty(t, task.CategoryName)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestCreateTaskWithCategory(t *testing.T) {
	b := setupBackend(t)

	work, err := b.GetCategoryByName("Work")
	require.NoError(t, err)

	task := mustCreateTask(t, b, types.TaskParams{
		Title:      "Prepare slides",
		DueDate:    isoDaysFromNow(7),
		Priority:   types.PriorityHigh,
		CategoryID: &work.ID,
	})

	require.NotNil(t, task.CategoryID)
	assert.Equal(t, work.ID, *task.CategoryID)
	assert.Equal(t, "Work", task.CategoryName)
	assert.Equal(t, types.PriorityHigh, task.Priority)
}

func TestCreateTaskTrimsTitle(t *testing.T) {
	b := setupBackend(t)

	task := mustCreateTask(t, b, types.TaskParams{Title: "  Clean desk \t"})
	assert.Equal(t, "Clean desk", task.Title)
}

func TestCreateTaskValidation(t *testing.T) {
	tests := []struct {
		name      string
		params    types.TaskParams
		wantField string
	}{
		{
			name:      "empty title",
			params:    types.TaskParams{},
			wantField: "title",
		},
		{
			name:      "whitespace title",
			params:    types.TaskParams{Title: "   "},
			wantField: "title",
		},
		{
			name:      "malformed due date",
			params:    types.TaskParams{Title: "Task", DueDate: "31/12/2030"},
			wantField: "due_date",
		},
		{
			name:      "impossible due date",
			params:    types.TaskParams{Title: "Task", DueDate: "2030-02-30"},
			wantField: "due_date",
		},
		{
			name:      "unknown priority",
			params:    types.TaskParams{Title: "Task", Priority: "urgent"},
			wantField: "priority",
		},
	}

	b := setupBackend(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.CreateTask(tt.params)
			var verr *types.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestGetTaskNotFound(t *testing.T) {
	b := setupBackend(t)

	_, err := b.GetTask(9999)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestListTasksOrder(t *testing.T) {
	b := setupBackend(t)

	a := mustCreateTask(t, b, types.TaskParams{Title: "Write minutes", DueDate: isoDaysFromNow(10)})
	bTask := mustCreateTask(t, b, types.TaskParams{Title: "Prepare agenda", Priority: types.PriorityHigh})
	c := mustCreateTask(t, b, types.TaskParams{Title: "File expenses", Priority: types.PriorityHigh})
	d := mustCreateTask(t, b, types.TaskParams{Title: "Order supplies", DueDate: isoDaysFromNow(20)})

	_, err := b.CompleteTask(c.ID)
	require.NoError(t, err)

	tasks, err := b.ListTasks("")
	require.NoError(t, err)
	require.Len(t, tasks, 4)

	// Pending before completed, high priority before medium, earlier due
	// dates before later, dateless last within a priority band.
	want := []int64{bTask.ID, a.ID, d.ID, c.ID}
	var got []int64
	for _, task := range tasks {
		got = append(got, task.ID)
	}
	assert.Equal(t, want, got)
}

func TestListTasksRanksLateTaskAsPendingOnFirstSight(t *testing.T) {
	b := setupBackend(t)

	// Stored-overdue task, swept before the late pending one exists.
	d := mustCreateTask(t, b, types.TaskParams{Title: "Order supplies", DueDate: isoDaysFromNow(-10)})
	n, err := b.SweepOverdue()
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	a := mustCreateTask(t, b, types.TaskParams{Title: "Write minutes", Priority: types.PriorityHigh, DueDate: "2099-01-01"})
	late := mustCreateTask(t, b, types.TaskParams{Title: "Prepare agenda", Priority: types.PriorityHigh, DueDate: isoDaysFromNow(-3)})
	c := mustCreateTask(t, b, types.TaskParams{Title: "File expenses", Priority: types.PriorityLow})
	_, err = b.CompleteTask(c.ID)
	require.NoError(t, err)

	// The listing that detects the late task still ranks it by its stored
	// pending status: ahead of the far-future task of equal priority, with
	// the stored-overdue and completed bands after.
	tasks, err := b.ListTasks("")
	require.NoError(t, err)
	require.Len(t, tasks, 4)

	want := []int64{late.ID, a.ID, d.ID, c.ID}
	var got []int64
	for _, task := range tasks {
		got = append(got, task.ID)
	}
	assert.Equal(t, want, got)
	assert.Equal(t, types.StatusOverdue, tasks[0].Status, "the returned record reflects the transition")

	stored, err := b.GetTask(late.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusOverdue, stored.Status, "the transition is persisted")

	// From the next listing on it sorts in the overdue band, above the
	// lower-priority stored-overdue task.
	tasks, err = b.ListTasks("")
	require.NoError(t, err)
	got = got[:0]
	for _, task := range tasks {
		got = append(got, task.ID)
	}
	assert.Equal(t, []int64{a.ID, late.ID, d.ID, c.ID}, got)
}

func TestListTasksCategoryFilter(t *testing.T) {
	b := setupBackend(t)

	work, err := b.GetCategoryByName("Work")
	require.NoError(t, err)
	home, err := b.GetCategoryByName("Home")
	require.NoError(t, err)

	mustCreateTask(t, b, types.TaskParams{Title: "Quarterly review", CategoryID: &work.ID})
	mustCreateTask(t, b, types.TaskParams{Title: "Fix the faucet", CategoryID: &home.ID})
	mustCreateTask(t, b, types.TaskParams{Title: "Uncategorized errand"})

	tests := []struct {
		name   string
		filter string
		want   int
	}{
		{name: "empty filter matches all", filter: "", want: 3},
		{name: "all sentinel matches all", filter: "all", want: 3},
		{name: "all sentinel is case insensitive", filter: "All", want: 3},
		{name: "named category", filter: "Work", want: 1},
		{name: "unknown category matches nothing", filter: "Garage", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := b.ListTasks(tt.filter)
			require.NoError(t, err)
			assert.Len(t, tasks, tt.want)
		})
	}
}

func TestListTasksEmpty(t *testing.T) {
	b := setupBackend(t)

	tasks, err := b.ListTasks("")
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestListTasksPersistsOverdue(t *testing.T) {
	b := setupBackend(t)

	task := mustCreateTask(t, b, types.TaskParams{Title: "Missed deadline", DueDate: isoDaysFromNow(-3)})
	require.Equal(t, types.StatusPending, task.Status)

	tasks, err := b.ListTasks("")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, types.StatusOverdue, tasks[0].Status)

	// The transition is stored, not just rendered.
	got, err := b.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusOverdue, got.Status)
}

func TestUpdateTask(t *testing.T) {
	b := setupBackend(t)

	task := mustCreateTask(t, b, types.TaskParams{
		Title:   "Draft proposal",
		DueDate: isoDaysFromNow(5),
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		ok, err := b.UpdateTask(task.ID, types.TaskPatch{})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing task reports false", func(t *testing.T) {
		ok, err := b.UpdateTask(9999, types.TaskPatch{Title: strPtr("Ghost")})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("applies listed fields only", func(t *testing.T) {
		ok, err := b.UpdateTask(task.ID, types.TaskPatch{
			Title:    strPtr("Final proposal"),
			Priority: strPtr(types.PriorityHigh),
		})
		require.NoError(t, err)
		require.True(t, ok)

		got, err := b.GetTask(task.ID)
		require.NoError(t, err)
		assert.Equal(t, "Final proposal", got.Title)
		assert.Equal(t, types.PriorityHigh, got.Priority)
		assert.Equal(t, isoDaysFromNow(5), got.DueDate, "unlisted fields keep their values")
	})

	t.Run("clears due date with empty string", func(t *testing.T) {
		ok, err := b.UpdateTask(task.ID, types.TaskPatch{DueDate: strPtr("")})
		require.NoError(t, err)
		require.True(t, ok)

		got, err := b.GetTask(task.ID)
		require.NoError(t, err)
		assert.Empty(t, got.DueDate)
	})

	t.Run("clears category with zero id", func(t *testing.T) {
		work, err := b.GetCategoryByName("Work")
		require.NoError(t, err)
		ok, err := b.UpdateTask(task.ID, types.TaskPatch{CategoryID: &work.ID})
		require.NoError(t, err)
		require.True(t, ok)

		var none int64
		ok, err = b.UpdateTask(task.ID, types.TaskPatch{CategoryID: &none})
		require.NoError(t, err)
		require.True(t, ok)

		got, err := b.GetTask(task.ID)
		require.NoError(t, err)
		assert.Nil(t, got.CategoryID)
		assert.Empty(t, got.CategoryName)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := b.UpdateTask(task.ID, types.TaskPatch{Status: strPtr("paused")})
		var verr *types.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "status", verr.Field)
	})

	t.Run("rejects blank title", func(t *testing.T) {
		_, err := b.UpdateTask(task.ID, types.TaskPatch{Title: strPtr("  ")})
		var verr *types.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "title", verr.Field)
	})
}

func TestCompleteTask(t *testing.T) {
	b := setupBackend(t)

	task := mustCreateTask(t, b, types.TaskParams{Title: "Ship release"})

	ok, err := b.CompleteTask(task.ID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := b.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusCompleted, got.Status)

	ok, err = b.CompleteTask(9999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteTask(t *testing.T) {
	b := setupBackend(t)

	task := mustCreateTask(t, b, types.TaskParams{Title: "Temporary"})

	ok, err := b.DeleteTask(task.ID)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = b.GetTask(task.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	ok, err = b.DeleteTask(task.ID)
	require.NoError(t, err)
	assert.False(t, ok, "second delete should report false")
}

func TestSweepOverdue(t *testing.T) {
	b := setupBackend(t)

	mustCreateTask(t, b, types.TaskParams{Title: "Late one", DueDate: isoDaysFromNow(-1)})
	mustCreateTask(t, b, types.TaskParams{Title: "Late two", DueDate: isoDaysFromNow(-10)})
	mustCreateTask(t, b, types.TaskParams{Title: "On time", DueDate: isoDaysFromNow(3)})
	mustCreateTask(t, b, types.TaskParams{Title: "Dateless"})
	doneLate := mustCreateTask(t, b, types.TaskParams{Title: "Done late", DueDate: isoDaysFromNow(-5)})
	_, err := b.CompleteTask(doneLate.ID)
	require.NoError(t, err)

	n, err := b.SweepOverdue()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "only pending past-due tasks transition")

	n, err = b.SweepOverdue()
	require.NoError(t, err)
	assert.Zero(t, n, "sweep is idempotent")

	got, err := b.GetTask(doneLate.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusCompleted, got.Status)
}

func TestSweepOverdueDueTodayStaysPending(t *testing.T) {
	b := setupBackend(t)

	task := mustCreateTask(t, b, types.TaskParams{Title: "Due today", DueDate: types.Today()})

	n, err := b.SweepOverdue()
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := b.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusPending, got.Status)
}

func TestStatistics(t *testing.T) {
	b := setupBackend(t)

	for _, title := range []string{"Done one", "Done two"} {
		task := mustCreateTask(t, b, types.TaskParams{Title: title})
		_, err := b.CompleteTask(task.ID)
		require.NoError(t, err)
	}
	mustCreateTask(t, b, types.TaskParams{Title: "Future", DueDate: isoDaysFromNow(5)})
	mustCreateTask(t, b, types.TaskParams{Title: "Past due unswept", DueDate: isoDaysFromNow(-3)})
	stored := mustCreateTask(t, b, types.TaskParams{Title: "Swept earlier", DueDate: isoDaysFromNow(-5)})
	_, err := b.UpdateTask(stored.ID, types.TaskPatch{Status: strPtr(types.StatusOverdue)})
	require.NoError(t, err)

	stats, err := b.Statistics()
	require.NoError(t, err)

	// The unswept past-due task counts as overdue, not pending, even
	// though its stored status has not caught up yet.
	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(2), stats.Completed)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(2), stats.Overdue)
}

func TestStatisticsEmpty(t *testing.T) {
	b := setupBackend(t)

	stats, err := b.Statistics()
	require.NoError(t, err)
	assert.Equal(t, types.Statistics{}, stats)
}
