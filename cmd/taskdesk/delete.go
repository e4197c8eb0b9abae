// Delete command for the taskdesk CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task permanently",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "delete:", err)
		os.Exit(exitUserError)
	}

	backend, err := attachBackend()
	if err != nil {
		fail("delete", err)
	}
	defer backend.Detach()

	ok, err := backend.DeleteTask(id)
	if err != nil {
		fail("delete", err)
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "task %d not found\n", id)
		os.Exit(exitUserError)
	}

	fmt.Printf("Task %d deleted\n", id)
	return nil
}
