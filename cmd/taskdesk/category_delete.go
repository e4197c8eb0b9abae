// Category delete command removes an unreferenced category.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category with no tasks",
	Long: `Delete removes a category. The delete is refused while any task still
references the category; reassign or delete those tasks first.`,
	Args: cobra.ExactArgs(1),
	RunE: runCategoryDelete,
}

func runCategoryDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "category delete:", err)
		os.Exit(exitUserError)
	}

	backend, err := attachBackend()
	if err != nil {
		fail("category delete", err)
	}
	defer backend.Detach()

	ok, err := backend.DeleteCategory(id)
	if err != nil {
		fail("category delete", err)
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "category %d not found\n", id)
		os.Exit(exitUserError)
	}

	fmt.Printf("Category %d deleted\n", id)
	return nil
}
