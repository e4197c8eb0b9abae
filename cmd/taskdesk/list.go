// List command for the taskdesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in presentation order",
	Long: `List prints all tasks sorted by status (pending, overdue, completed),
priority (high, medium, low), and due date. Tasks past their due date are
marked overdue before the listing is produced.

Example:
  taskdesk list
  taskdesk list --category Work
  taskdesk list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", `filter by category name ("all" disables the filter)`)
}

func runList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		fail("list", err)
	}
	defer backend.Detach()

	tasks, err := backend.ListTasks(listCategory)
	if err != nil {
		fail("list", err)
	}

	if flagJSON {
		printJSON(tasks)
		return nil
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks")
		return nil
	}

	for _, t := range tasks {
		line := fmt.Sprintf("%4d  %-9s  %-6s  %-10s  %s",
			t.ID, t.Status, t.Priority, formatCell(t.DueDate), t.Title)
		if t.CategoryName != "" {
			line += fmt.Sprintf("  [%s]", t.CategoryName)
		}
		fmt.Println(line)
	}
	return nil
}
