// Category add command creates a new category.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoryAddDescription string

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryAdd,
}

func init() {
	categoryAddCmd.Flags().StringVar(&categoryAddDescription, "description", "", "category description")
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		fail("category add", err)
	}
	defer backend.Detach()

	cat, err := backend.CreateCategory(args[0], categoryAddDescription)
	if err != nil {
		fail("category add", err)
	}

	if flagJSON {
		printJSON(cat)
		return nil
	}
	fmt.Printf("Category %d created: %s\n", cat.ID, cat.Name)
	return nil
}
