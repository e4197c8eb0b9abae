// Tag add command creates a new tag.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagAddColor string

var tagAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagAdd,
}

func init() {
	tagAddCmd.Flags().StringVar(&tagAddColor, "color", "", "display color as #RRGGBB (default assigned)")
}

func runTagAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		fail("tag add", err)
	}
	defer backend.Detach()

	tag, err := backend.CreateTag(args[0], tagAddColor)
	if err != nil {
		fail("tag add", err)
	}

	if flagJSON {
		printJSON(tag)
		return nil
	}
	fmt.Printf("Tag %d created: %s %s\n", tag.ID, tag.Name, tag.Color)
	return nil
}
