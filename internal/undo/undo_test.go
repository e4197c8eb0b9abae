// Tests for the reversal stack, run against the real storage backend.
package undo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaldon/taskdesk/internal/sqlite"
	"github.com/dmaldon/taskdesk/pkg/types"
)

var _ Gateway = (*sqlite.Backend)(nil)

// recordingGateway counts the update calls a reversal issues.
type recordingGateway struct {
	*sqlite.Backend
	updates int
}

func (g *recordingGateway) UpdateTask(id int64, patch types.TaskPatch) (bool, error) {
	g.updates++
	return g.Backend.UpdateTask(id, patch)
}

func setupStack(t *testing.T) (*Stack, *sqlite.Backend) {
	t.Helper()

	b := sqlite.NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	require.NoError(t, b.Attach(config))
	t.Cleanup(func() { b.Detach() })

	return NewStack(b), b
}

func TestUndoEmptyStack(t *testing.T) {
	s, _ := setupStack(t)

	msg, ok, err := s.Undo()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, msg)
}

func TestUndoDeleteRestoresTask(t *testing.T) {
	s, b := setupStack(t)

	work, err := b.GetCategoryByName("Work")
	require.NoError(t, err)
	due := time.Now().AddDate(0, 0, 6).Format(types.DueDateLayout)
	task, err := b.CreateTask(types.TaskParams{
		Title:       "Quarterly filing",
		Description: "Gather receipts first",
		DueDate:     due,
		Priority:    types.PriorityHigh,
		CategoryID:  &work.ID,
	})
	require.NoError(t, err)

	s.Record(Delete, Snapshot(task))
	_, err = b.DeleteTask(task.ID)
	require.NoError(t, err)

	msg, ok, err := s.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `restored "Quarterly filing"`, msg)

	tasks, err := b.ListTasks("")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	restored := tasks[0]
	assert.NotEqual(t, task.ID, restored.ID, "restore creates a new row")
	assert.Equal(t, "Quarterly filing", restored.Title)
	assert.Equal(t, "Gather receipts first", restored.Description)
	assert.Equal(t, due, restored.DueDate)
	assert.Equal(t, types.PriorityHigh, restored.Priority)
	assert.Equal(t, "Work", restored.CategoryName)
	assert.Equal(t, types.StatusPending, restored.Status)
}

func TestUndoDeleteRestoresPriorStatus(t *testing.T) {
	s, b := setupStack(t)

	task, err := b.CreateTask(types.TaskParams{Title: "Closed out"})
	require.NoError(t, err)
	_, err = b.CompleteTask(task.ID)
	require.NoError(t, err)

	task, err = b.GetTask(task.ID)
	require.NoError(t, err)
	s.Record(Delete, Snapshot(task))
	_, err = b.DeleteTask(task.ID)
	require.NoError(t, err)

	_, ok, err := s.Undo()
	require.NoError(t, err)
	require.True(t, ok)

	tasks, err := b.ListTasks("")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, types.StatusCompleted, tasks[0].Status)
}

func TestUndoDeleteSurvivesDeletedCategory(t *testing.T) {
	s, b := setupStack(t)

	cat, err := b.CreateCategory("Ephemeral", "")
	require.NoError(t, err)
	task, err := b.CreateTask(types.TaskParams{Title: "Orphaned soon", CategoryID: &cat.ID})
	require.NoError(t, err)

	s.Record(Delete, Snapshot(task))
	_, err = b.DeleteTask(task.ID)
	require.NoError(t, err)
	_, err = b.DeleteCategory(cat.ID)
	require.NoError(t, err)

	msg, ok, err := s.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `restored "Orphaned soon"`, msg)

	tasks, err := b.ListTasks("")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Empty(t, tasks[0].CategoryName, "the dangling reference renders as uncategorized")
}

func TestUndoCompleteReopensTask(t *testing.T) {
	s, b := setupStack(t)

	task, err := b.CreateTask(types.TaskParams{Title: "Shipped early"})
	require.NoError(t, err)
	_, err = b.CompleteTask(task.ID)
	require.NoError(t, err)
	s.Record(Complete, task.ID)

	msg, ok, err := s.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `reopened "Shipped early"`, msg)

	got, err := b.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusPending, got.Status)
}

func TestUndoCompleteAfterDeletion(t *testing.T) {
	_, b := setupStack(t)
	g := &recordingGateway{Backend: b}
	s := NewStack(g)

	task, err := b.CreateTask(types.TaskParams{Title: "Gone"})
	require.NoError(t, err)
	_, err = b.CompleteTask(task.ID)
	require.NoError(t, err)
	s.Record(Complete, task.ID)
	_, err = b.DeleteTask(task.ID)
	require.NoError(t, err)

	msg, ok, err := s.Undo()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "the completed task no longer exists", msg)
	assert.Equal(t, 1, g.updates, "the reversion is still attempted as a no-op patch")
}

func TestRecordReturnsEntryID(t *testing.T) {
	s, b := setupStack(t)

	task, err := b.CreateTask(types.TaskParams{Title: "Tracked"})
	require.NoError(t, err)

	first := s.Record(Complete, task.ID)
	second := s.Record(Delete, Snapshot(task))

	require.NotEmpty(t, first)
	require.NotEmpty(t, second)
	assert.NotEqual(t, first, second)
	assert.Equal(t, first, s.entries[0].id)
	assert.Equal(t, second, s.entries[1].id)
}

func TestUndoOrderIsLIFO(t *testing.T) {
	s, b := setupStack(t)

	first, err := b.CreateTask(types.TaskParams{Title: "First done"})
	require.NoError(t, err)
	second, err := b.CreateTask(types.TaskParams{Title: "Second done"})
	require.NoError(t, err)

	_, err = b.CompleteTask(first.ID)
	require.NoError(t, err)
	s.Record(Complete, first.ID)
	_, err = b.CompleteTask(second.ID)
	require.NoError(t, err)
	s.Record(Complete, second.ID)

	require.Equal(t, 2, s.Len())

	msg, ok, err := s.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `reopened "Second done"`, msg)

	msg, ok, err = s.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `reopened "First done"`, msg)

	assert.Zero(t, s.Len())
}

func TestUndoUnknownKind(t *testing.T) {
	s, _ := setupStack(t)

	s.Record(Kind("archive"), int64(1))

	_, ok, err := s.Undo()
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), `unknown undo kind "archive"`)
	assert.Zero(t, s.Len(), "the bad entry is consumed")
}

func TestUndoWrongPayloadType(t *testing.T) {
	s, _ := setupStack(t)

	s.Record(Delete, "not a snapshot")
	_, ok, err := s.Undo()
	require.Error(t, err)
	assert.False(t, ok)

	s.Record(Complete, "not an id")
	_, ok, err = s.Undo()
	require.Error(t, err)
	assert.False(t, ok)
}

func TestUndoDetachedGateway(t *testing.T) {
	s, b := setupStack(t)

	task, err := b.CreateTask(types.TaskParams{Title: "Doomed"})
	require.NoError(t, err)
	s.Record(Delete, Snapshot(task))

	require.NoError(t, b.Detach())

	_, ok, err := s.Undo()
	require.ErrorIs(t, err, types.ErrNotAttached)
	assert.False(t, ok)
}
