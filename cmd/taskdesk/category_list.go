// Category list command prints all categories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories alphabetically",
	Args:  cobra.NoArgs,
	RunE:  runCategoryList,
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		fail("category list", err)
	}
	defer backend.Detach()

	cats, err := backend.ListCategories()
	if err != nil {
		fail("category list", err)
	}

	if flagJSON {
		printJSON(cats)
		return nil
	}

	if len(cats) == 0 {
		fmt.Println("No categories")
		return nil
	}

	for _, c := range cats {
		fmt.Printf("%4d  %-12s  %s\n", c.ID, c.Name, c.Description)
	}
	return nil
}
