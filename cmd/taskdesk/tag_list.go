// Tag list command prints tags, optionally scoped to one task.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmaldon/taskdesk/pkg/types"
)

var tagListOf int64

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tags alphabetically",
	Long: `List prints every tag, or with --of only the tags attached to the
given task.

Example:
  taskdesk tag list
  taskdesk tag list --of 12`,
	Args: cobra.NoArgs,
	RunE: runTagList,
}

func init() {
	tagListCmd.Flags().Int64Var(&tagListOf, "of", 0, "show only tags attached to this task id")
}

func runTagList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		fail("tag list", err)
	}
	defer backend.Detach()

	var tags []types.Tag
	if cmd.Flags().Changed("of") {
		tags, err = backend.TaskTags(tagListOf)
		if isNotFound(err) {
			fmt.Fprintf(os.Stderr, "task %d not found\n", tagListOf)
			os.Exit(exitUserError)
		}
	} else {
		tags, err = backend.ListTags()
	}
	if err != nil {
		fail("tag list", err)
	}

	if flagJSON {
		printJSON(tags)
		return nil
	}

	if len(tags) == 0 {
		fmt.Println("No tags")
		return nil
	}

	for _, t := range tags {
		fmt.Printf("%4d  %-12s  %s\n", t.ID, t.Name, t.Color)
	}
	return nil
}
