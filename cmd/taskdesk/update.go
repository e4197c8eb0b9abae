// Update command for the taskdesk CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmaldon/taskdesk/pkg/types"
)

var (
	updateTitle       string
	updateDescription string
	updateDue         string
	updatePriority    string
	updateStatus      string
	updateCategory    string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit task fields",
	Long: `Update changes the given fields of a task; unmentioned fields keep
their values. Passing an empty --due or --category clears that field.

Example:
  taskdesk update 12 --title "Call the dentist" --priority high
  taskdesk update 12 --due ""
  taskdesk update 12 --status pending`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "new description")
	updateCmd.Flags().StringVar(&updateDue, "due", "", "new due date (YYYY-MM-DD, empty clears it)")
	updateCmd.Flags().StringVar(&updatePriority, "priority", "", "new priority: high, medium, or low")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "new status: pending, completed, or overdue")
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "new category name (empty clears it)")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "update:", err)
		os.Exit(exitUserError)
	}

	backend, err := attachBackend()
	if err != nil {
		fail("update", err)
	}
	defer backend.Detach()

	var patch types.TaskPatch
	flags := cmd.Flags()
	if flags.Changed("title") {
		patch.Title = &updateTitle
	}
	if flags.Changed("description") {
		patch.Description = &updateDescription
	}
	if flags.Changed("due") {
		patch.DueDate = &updateDue
	}
	if flags.Changed("priority") {
		patch.Priority = &updatePriority
	}
	if flags.Changed("status") {
		patch.Status = &updateStatus
	}
	if flags.Changed("category") {
		if updateCategory == "" {
			var cleared int64
			patch.CategoryID = &cleared
		} else {
			ref, err := resolveCategoryName(backend, updateCategory)
			if err != nil {
				fail("update", err)
			}
			patch.CategoryID = ref
		}
	}

	if patch.Empty() {
		fmt.Fprintln(os.Stderr, "update: no fields given")
		os.Exit(exitUserError)
	}

	ok, err := backend.UpdateTask(id, patch)
	if err != nil {
		fail("update", err)
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "task %d not found\n", id)
		os.Exit(exitUserError)
	}

	fmt.Printf("Task %d updated\n", id)
	return nil
}
