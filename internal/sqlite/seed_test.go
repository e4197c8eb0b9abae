// Unit tests for default category seeding and sample task loading.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaldon/taskdesk/pkg/types"
)

func TestDefaultCategoriesSeeded(t *testing.T) {
	b := setupBackend(t)

	cats, err := b.ListCategories()
	require.NoError(t, err)
	require.Len(t, cats, len(defaultCategories))

	byName := make(map[string]types.Category)
	for _, c := range cats {
		byName[c.Name] = c
	}

	for _, want := range defaultCategories {
		got, ok := byName[want.name]
		require.True(t, ok, "category %q should be seeded", want.name)
		assert.Equal(t, want.description, got.Description)
	}
}

func TestSeedSurvivesReattach(t *testing.T) {
	dataDir := t.TempDir()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	// Attach three times; seeding must not duplicate.
	for range 3 {
		b := NewBackend()
		require.NoError(t, b.Attach(config))
		require.NoError(t, b.Detach())
	}

	b := NewBackend()
	require.NoError(t, b.Attach(config))
	defer b.Detach()

	cats, err := b.ListCategories()
	require.NoError(t, err)
	assert.Len(t, cats, len(defaultCategories))
}

func TestSeedKeepsRenamedCategory(t *testing.T) {
	dataDir := t.TempDir()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	b := NewBackend()
	require.NoError(t, b.Attach(config))

	work, err := b.GetCategoryByName("Work")
	require.NoError(t, err)
	name := "Office"
	_, err = b.UpdateCategory(work.ID, types.CategoryPatch{Name: &name})
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	// Re-attach reseeds the missing name but keeps the renamed row.
	b2 := NewBackend()
	require.NoError(t, b2.Attach(config))
	defer b2.Detach()

	_, err = b2.GetCategoryByName("Office")
	assert.NoError(t, err)
	_, err = b2.GetCategoryByName("Work")
	assert.NoError(t, err)

	cats, err := b2.ListCategories()
	require.NoError(t, err)
	assert.Len(t, cats, len(defaultCategories)+1)
}

func TestSeedSamples(t *testing.T) {
	b := setupBackend(t)

	n, err := b.SeedSamples()
	require.NoError(t, err)
	assert.Equal(t, len(sampleTasks), n)

	tasks, err := b.ListTasks("")
	require.NoError(t, err)
	require.Len(t, tasks, len(sampleTasks))

	titles := make(map[string]types.Task)
	for _, task := range tasks {
		titles[task.Title] = task
	}

	groceries, ok := titles["Buy groceries"]
	require.True(t, ok)
	assert.Equal(t, types.StatusPending, groceries.Status)
	assert.Equal(t, types.PriorityMedium, groceries.Priority)
	assert.Equal(t, "Home", groceries.CategoryName)
	assert.NotEmpty(t, groceries.DueDate)

	doctor, ok := titles["Call the doctor"]
	require.True(t, ok)
	assert.Equal(t, types.StatusCompleted, doctor.Status)
	assert.Empty(t, doctor.DueDate)
}

func TestSeedSamplesOnlyOnEmpty(t *testing.T) {
	t.Run("second call is a no-op", func(t *testing.T) {
		b := setupBackend(t)

		n, err := b.SeedSamples()
		require.NoError(t, err)
		require.Equal(t, len(sampleTasks), n)

		n, err = b.SeedSamples()
		require.NoError(t, err)
		assert.Zero(t, n)

		tasks, err := b.ListTasks("")
		require.NoError(t, err)
		assert.Len(t, tasks, len(sampleTasks))
	})

	t.Run("skips a database with existing tasks", func(t *testing.T) {
		b := setupBackend(t)

		_, err := b.CreateTask(types.TaskParams{Title: "Already here"})
		require.NoError(t, err)

		n, err := b.SeedSamples()
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestSeedSamplesPastDueStaysCompleted(t *testing.T) {
	b := setupBackend(t)

	_, err := b.SeedSamples()
	require.NoError(t, err)

	// The weekly report sample is dated in the past but completed, so the
	// overdue sweep must leave it alone.
	_, err = b.SweepOverdue()
	require.NoError(t, err)

	tasks, err := b.ListTasks("")
	require.NoError(t, err)
	for _, task := range tasks {
		if task.Title == "Send weekly report" {
			assert.Equal(t, types.StatusCompleted, task.Status)
			return
		}
	}
	t.Fatal("sample task not found")
}
