// Export command for the taskdesk CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dmaldon/taskdesk/internal/export"
	"github.com/dmaldon/taskdesk/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export all tasks to a CSV file",
	Long: `Export writes every task to a semicolon-delimited CSV file that opens
cleanly in spreadsheet applications. With no path, or with a directory path,
the file name is generated from the current time.

Example:
  taskdesk export
  taskdesk export ~/backups
  taskdesk export tasks.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	backend, err := attachBackend()
	if err != nil {
		fail("export", err)
	}
	defer backend.Detach()

	dest, n, err := export.Export(backend, path)
	if err != nil {
		if errors.Is(err, types.ErrNoTasks) {
			fmt.Println("Nothing to export")
			return nil
		}
		fail("export", err)
	}

	logger.Debug("export finished", zap.String("path", dest), zap.Int("tasks", n))
	fmt.Printf("Exported %d task(s) to %s\n", n, dest)
	return nil
}
