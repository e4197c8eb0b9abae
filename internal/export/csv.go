// Package export serializes the task list to a spreadsheet-friendly CSV
// file: UTF-8 BOM, semicolon delimiter, one row per task in id order.
// Files land atomically via a temp file renamed into place.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/dmaldon/taskdesk/pkg/types"
)

// utf8BOM keeps spreadsheet imports from mangling accented characters.
const utf8BOM = "\uFEFF"

// fileTimestamp formats the default backup file name suffix.
const fileTimestamp = "20060102_150405"

var header = []string{"ID", "Title", "Description", "Due Date", "Status", "Priority", "Category"}

// TaskLister is the listing surface the exporter consumes.
type TaskLister interface {
	ListTasks(categoryFilter string) ([]types.Task, error)
}

// Export writes every task to a CSV file and returns the path written
// and the number of rows. A path naming a directory (or an empty path
// for the working directory) gets a timestamped default file name.
// An empty task list returns ErrNoTasks and writes nothing.
func Export(l TaskLister, path string) (string, int, error) {
	tasks, err := l.ListTasks("")
	if err != nil {
		return "", 0, err
	}
	if len(tasks) == 0 {
		return "", 0, types.ErrNoTasks
	}

	path = resolvePath(path)
	if err := WriteCSV(path, tasks); err != nil {
		return "", 0, err
	}
	return path, len(tasks), nil
}

// DefaultFileName returns the timestamped backup name used when the
// caller does not pick one.
func DefaultFileName() string {
	return "taskdesk_backup_" + time.Now().Format(fileTimestamp) + ".csv"
}

// resolvePath turns a directory or empty path into a concrete file path.
func resolvePath(path string) string {
	if path == "" {
		return DefaultFileName()
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, DefaultFileName())
	}
	return path
}

// WriteCSV writes the given tasks to path atomically, sorted by id.
func WriteCSV(path string, tasks []types.Task) error {
	rows := append([]types.Task(nil), tasks...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".csv-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(utf8BOM); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing byte order mark: %w", err)
	}

	w := csv.NewWriter(tmp)
	w.Comma = ';'
	if err := w.Write(header); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing header: %w", err)
	}
	for _, task := range rows {
		record := []string{
			strconv.FormatInt(task.ID, 10),
			task.Title,
			task.Description,
			task.DueDate,
			task.Status,
			task.Priority,
			task.CategoryName,
		}
		if err := w.Write(record); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing task %d: %w", task.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing rows: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
