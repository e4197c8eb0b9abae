// Done command for the taskdesk CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "done:", err)
		os.Exit(exitUserError)
	}

	backend, err := attachBackend()
	if err != nil {
		fail("done", err)
	}
	defer backend.Detach()

	ok, err := backend.CompleteTask(id)
	if err != nil {
		fail("done", err)
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "task %d not found\n", id)
		os.Exit(exitUserError)
	}

	fmt.Printf("Task %d completed\n", id)
	return nil
}
