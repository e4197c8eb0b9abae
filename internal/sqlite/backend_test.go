// Tests for backend attach and detach lifecycle.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaldon/taskdesk/pkg/types"
)

// setupBackend attaches a fresh backend over a temporary data directory
// and detaches it when the test finishes.
func setupBackend(t *testing.T) *Backend {
	t.Helper()

	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	require.NoError(t, b.Attach(config))
	t.Cleanup(func() { b.Detach() })

	return b
}

func TestBackendAttach(t *testing.T) {
	dataDir := t.TempDir()

	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	require.NoError(t, b.Attach(config))
	defer b.Detach()

	_, err := os.Stat(filepath.Join(dataDir, DBFileName))
	assert.NoError(t, err, "attach should create the database file")

	err = b.Attach(config)
	assert.ErrorIs(t, err, types.ErrAlreadyAttached)
}

func TestBackendAttachCreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")

	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	require.NoError(t, b.Attach(config))
	defer b.Detach()

	info, err := os.Stat(dataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestBackendAttachValidatesConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  types.Config
		wantErr error
	}{
		{
			name:    "empty backend",
			config:  types.Config{DataDir: "/tmp/taskdesk-test"},
			wantErr: types.ErrBackendEmpty,
		},
		{
			name:    "unknown backend",
			config:  types.Config{Backend: "postgres", DataDir: "/tmp/taskdesk-test"},
			wantErr: types.ErrBackendUnknown,
		},
		{
			name:    "empty data dir",
			config:  types.Config{Backend: types.BackendSQLite},
			wantErr: types.ErrDataDirEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBackend()
			err := b.Attach(tt.config)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBackendDetach(t *testing.T) {
	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	require.NoError(t, b.Attach(config))

	require.NoError(t, b.Detach())
	assert.NoError(t, b.Detach(), "second detach should be a no-op")

	_, err := b.ListTasks("")
	assert.ErrorIs(t, err, types.ErrNotAttached)
}

func TestBackendOperationsRequireAttach(t *testing.T) {
	b := NewBackend()

	_, err := b.CreateTask(types.TaskParams{Title: "Orphan"})
	assert.ErrorIs(t, err, types.ErrNotAttached)

	_, err = b.GetTask(1)
	assert.ErrorIs(t, err, types.ErrNotAttached)

	_, err = b.ListCategories()
	assert.ErrorIs(t, err, types.ErrNotAttached)

	_, err = b.ListTags()
	assert.ErrorIs(t, err, types.ErrNotAttached)

	_, err = b.RecentLog(0)
	assert.ErrorIs(t, err, types.ErrNotAttached)
}

func TestBackendReattachKeepsData(t *testing.T) {
	dataDir := t.TempDir()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	b := NewBackend()
	require.NoError(t, b.Attach(config))
	task, err := b.CreateTask(types.TaskParams{Title: "Survives restart"})
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	b2 := NewBackend()
	require.NoError(t, b2.Attach(config))
	defer b2.Detach()

	got, err := b2.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Survives restart", got.Title)
}
