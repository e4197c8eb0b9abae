// Tag detach command unlinks a tag from a task.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tagDetachOf int64

var tagDetachCmd = &cobra.Command{
	Use:   "detach <tag-id>",
	Short: "Detach a tag from a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagDetach,
}

func init() {
	tagDetachCmd.Flags().Int64Var(&tagDetachOf, "of", 0, "task id to detach the tag from (required)")
	_ = tagDetachCmd.MarkFlagRequired("of")
}

func runTagDetach(cmd *cobra.Command, args []string) error {
	tagID, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "tag detach:", err)
		os.Exit(exitUserError)
	}

	backend, err := attachBackend()
	if err != nil {
		fail("tag detach", err)
	}
	defer backend.Detach()

	ok, err := backend.UntagTask(tagDetachOf, tagID)
	if err != nil {
		fail("tag detach", err)
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "tag %d is not attached to task %d\n", tagID, tagDetachOf)
		os.Exit(exitUserError)
	}

	fmt.Printf("Tag %d detached from task %d\n", tagID, tagDetachOf)
	return nil
}
