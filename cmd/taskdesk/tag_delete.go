// Tag delete command removes a tag and its task links.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tagDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a tag everywhere",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagDelete,
}

func runTagDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "tag delete:", err)
		os.Exit(exitUserError)
	}

	backend, err := attachBackend()
	if err != nil {
		fail("tag delete", err)
	}
	defer backend.Detach()

	ok, err := backend.DeleteTag(id)
	if err != nil {
		fail("tag delete", err)
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "tag %d not found\n", id)
		os.Exit(exitUserError)
	}

	fmt.Printf("Tag %d deleted\n", id)
	return nil
}
