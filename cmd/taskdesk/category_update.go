// Category update command edits category fields.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmaldon/taskdesk/pkg/types"
)

var (
	categoryUpdateName        string
	categoryUpdateDescription string
)

var categoryUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rename or redescribe a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryUpdate,
}

func init() {
	categoryUpdateCmd.Flags().StringVar(&categoryUpdateName, "name", "", "new category name")
	categoryUpdateCmd.Flags().StringVar(&categoryUpdateDescription, "description", "", "new category description")
}

func runCategoryUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "category update:", err)
		os.Exit(exitUserError)
	}

	backend, err := attachBackend()
	if err != nil {
		fail("category update", err)
	}
	defer backend.Detach()

	var patch types.CategoryPatch
	flags := cmd.Flags()
	if flags.Changed("name") {
		patch.Name = &categoryUpdateName
	}
	if flags.Changed("description") {
		patch.Description = &categoryUpdateDescription
	}

	if patch.Empty() {
		fmt.Fprintln(os.Stderr, "category update: no fields given")
		os.Exit(exitUserError)
	}

	ok, err := backend.UpdateCategory(id, patch)
	if err != nil {
		fail("category update", err)
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "category %d not found\n", id)
		os.Exit(exitUserError)
	}

	fmt.Printf("Category %d updated\n", id)
	return nil
}
