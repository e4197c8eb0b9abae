// Tag attach command links a tag to a task.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tagAttachOf int64

var tagAttachCmd = &cobra.Command{
	Use:   "attach <tag-id>",
	Short: "Attach a tag to a task",
	Long: `Attach links the tag to the task named by --of. Attaching a tag the
task already carries is a no-op.

Example:
  taskdesk tag attach 3 --of 12`,
	Args: cobra.ExactArgs(1),
	RunE: runTagAttach,
}

func init() {
	tagAttachCmd.Flags().Int64Var(&tagAttachOf, "of", 0, "task id to attach the tag to (required)")
	_ = tagAttachCmd.MarkFlagRequired("of")
}

func runTagAttach(cmd *cobra.Command, args []string) error {
	tagID, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "tag attach:", err)
		os.Exit(exitUserError)
	}

	backend, err := attachBackend()
	if err != nil {
		fail("tag attach", err)
	}
	defer backend.Detach()

	if err := backend.TagTask(tagAttachOf, tagID); err != nil {
		if isNotFound(err) {
			fmt.Fprintf(os.Stderr, "task %d or tag %d not found\n", tagAttachOf, tagID)
			os.Exit(exitUserError)
		}
		fail("tag attach", err)
	}

	fmt.Printf("Tag %d attached to task %d\n", tagID, tagAttachOf)
	return nil
}
