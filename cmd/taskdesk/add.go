// Add command for the taskdesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dmaldon/taskdesk/pkg/types"
)

var (
	addDescription string
	addDue         string
	addPriority    string
	addCategory    string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
	Long: `Add creates a new pending task with the given title.

Example:
  taskdesk add "Buy groceries"
  taskdesk add "File taxes" --due 2026-04-15 --priority high --category Finance`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDescription, "description", "", "longer task description")
	addCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addPriority, "priority", "", "priority: high, medium, or low (default medium)")
	addCmd.Flags().StringVar(&addCategory, "category", "", "category name")
}

func runAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		fail("add", err)
	}
	defer backend.Detach()

	params := types.TaskParams{
		Title:       args[0],
		Description: addDescription,
		DueDate:     addDue,
		Priority:    addPriority,
	}
	if addCategory != "" {
		ref, err := resolveCategoryName(backend, addCategory)
		if err != nil {
			fail("add", err)
		}
		params.CategoryID = ref
	}

	task, err := backend.CreateTask(params)
	if err != nil {
		fail("add", err)
	}

	logger.Debug("task created", zap.Int64("id", task.ID), zap.String("title", task.Title))

	if flagJSON {
		printJSON(task)
		return nil
	}
	fmt.Printf("Task %d created: %s\n", task.ID, task.Title)
	return nil
}
