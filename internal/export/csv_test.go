// Tests for the CSV exporter, run against the real storage backend.
package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaldon/taskdesk/internal/sqlite"
	"github.com/dmaldon/taskdesk/pkg/types"
)

var _ TaskLister = (*sqlite.Backend)(nil)

func setupBackend(t *testing.T) *sqlite.Backend {
	t.Helper()

	b := sqlite.NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	require.NoError(t, b.Attach(config))
	t.Cleanup(func() { b.Detach() })

	return b
}

// readRows parses an exported file back into records, checking the BOM
// on the way.
func readRows(t *testing.T, path string) [][]string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), utf8BOM), "file should start with a UTF-8 BOM")

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), utf8BOM)))
	r.Comma = ';'
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExport(t *testing.T) {
	b := setupBackend(t)

	work, err := b.GetCategoryByName("Work")
	require.NoError(t, err)
	_, err = b.CreateTask(types.TaskParams{
		Title:       "Send invoice",
		Description: "Hours for July",
		DueDate:     "2030-07-15",
		Priority:    types.PriorityHigh,
		CategoryID:  &work.ID,
	})
	require.NoError(t, err)
	second, err := b.CreateTask(types.TaskParams{Title: "Dateless chore"})
	require.NoError(t, err)
	_, err = b.CompleteTask(second.ID)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.csv")
	written, n, err := Export(b, path)
	require.NoError(t, err)
	assert.Equal(t, path, written)
	assert.Equal(t, 2, n)

	rows := readRows(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Title", "Description", "Due Date", "Status", "Priority", "Category"}, rows[0])

	// Rows follow id order, not the presentation order.
	assert.Equal(t, []string{
		"1", "Send invoice", "Hours for July", "2030-07-15",
		types.StatusPending, types.PriorityHigh, "Work",
	}, rows[1])
	assert.Equal(t, []string{
		"2", "Dateless chore", "", "",
		types.StatusCompleted, types.PriorityMedium, "",
	}, rows[2])
}

func TestExportEmptyStore(t *testing.T) {
	b := setupBackend(t)

	_, _, err := Export(b, filepath.Join(t.TempDir(), "out.csv"))
	assert.ErrorIs(t, err, types.ErrNoTasks)
}

func TestExportDefaultNameInDirectory(t *testing.T) {
	b := setupBackend(t)
	_, err := b.CreateTask(types.TaskParams{Title: "Something"})
	require.NoError(t, err)

	dir := t.TempDir()
	written, n, err := Export(b, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, dir, filepath.Dir(written))

	base := filepath.Base(written)
	assert.True(t, strings.HasPrefix(base, "taskdesk_backup_"), "got %q", base)
	assert.True(t, strings.HasSuffix(base, ".csv"), "got %q", base)

	_, err = os.Stat(written)
	assert.NoError(t, err)
}

func TestExportLeavesNoTempFiles(t *testing.T) {
	b := setupBackend(t)
	_, err := b.CreateTask(types.TaskParams{Title: "Tidy"})
	require.NoError(t, err)

	dir := t.TempDir()
	_, _, err = Export(b, filepath.Join(dir, "out.csv"))
	require.NoError(t, err)

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestWriteCSVQuotesDelimiters(t *testing.T) {
	tasks := []types.Task{
		{ID: 7, Title: `review; then sign "draft"`, Status: types.StatusPending, Priority: types.PriorityLow},
	}

	path := filepath.Join(t.TempDir(), "quoted.csv")
	require.NoError(t, WriteCSV(path, tasks))

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, `review; then sign "draft"`, rows[1][1])
}

func TestWriteCSVSortsById(t *testing.T) {
	tasks := []types.Task{
		{ID: 3, Title: "c", Status: types.StatusPending, Priority: types.PriorityLow},
		{ID: 1, Title: "a", Status: types.StatusPending, Priority: types.PriorityHigh},
		{ID: 2, Title: "b", Status: types.StatusCompleted, Priority: types.PriorityMedium},
	}

	path := filepath.Join(t.TempDir(), "sorted.csv")
	require.NoError(t, WriteCSV(path, tasks))

	rows := readRows(t, path)
	require.Len(t, rows, 4)
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "3", rows[3][0])
}
