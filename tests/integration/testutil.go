// Package integration provides CLI integration tests for taskdesk.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

var (
	// taskdeskBin is the path to the built taskdesk binary.
	taskdeskBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetTaskdeskBin sets the path to the taskdesk binary (called from TestMain).
func SetTaskdeskBin(path string) {
	taskdeskBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and data directory.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	DataDir   string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build taskdesk: %v", buildErr)
	}
	if taskdeskBin == "" {
		t.Fatal("taskdesk binary not built (taskdeskBin is empty)")
	}

	tempDir := t.TempDir()
	env := &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: filepath.Join(tempDir, "config"),
		DataDir:   filepath.Join(tempDir, "data"),
	}

	env.MustRunTaskdesk("init")
	return env
}

// CmdResult holds the result of a taskdesk command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunTaskdesk executes the taskdesk CLI with the given arguments.
// Returns stdout, stderr, and exit code.
func (e *TestEnv) RunTaskdesk(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(taskdeskBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run taskdesk: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// RunTaskdeskWithStdin executes the taskdesk CLI feeding the given text
// on standard input.
func (e *TestEnv) RunTaskdeskWithStdin(stdin string, args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(taskdeskBin, allArgs...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run taskdesk: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunTaskdesk executes the taskdesk CLI and fails the test if it returns non-zero.
func (e *TestEnv) MustRunTaskdesk(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunTaskdesk(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("taskdesk %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// formatID renders an entity id as a CLI argument.
func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Task mirrors the task entity for JSON parsing.
type Task struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	DueDate      string `json:"due_date"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	CategoryID   *int64 `json:"category_id"`
	CategoryName string `json:"category_name"`
	CreatedAt    string `json:"created_at"`
}

// Category mirrors the category entity for JSON parsing.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Tag mirrors the tag entity for JSON parsing.
type Tag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Stats mirrors the statistics record for JSON parsing.
type Stats struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
	Overdue   int64 `json:"overdue"`
}

// LogEntry mirrors the history entry for JSON parsing.
type LogEntry struct {
	ID        int64  `json:"id"`
	Action    string `json:"action"`
	TaskTitle string `json:"task_title"`
	Detail    string `json:"detail"`
	CreatedAt string `json:"created_at"`
}

// Draft mirrors the voice draft for JSON parsing.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDateText string `json:"due_date_text"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	AutoSubmit  bool   `json:"auto_submit"`
}
