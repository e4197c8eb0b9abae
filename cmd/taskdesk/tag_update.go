// Tag update command edits tag fields.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmaldon/taskdesk/pkg/types"
)

var (
	tagUpdateName  string
	tagUpdateColor string
)

var tagUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rename or recolor a tag",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagUpdate,
}

func init() {
	tagUpdateCmd.Flags().StringVar(&tagUpdateName, "name", "", "new tag name")
	tagUpdateCmd.Flags().StringVar(&tagUpdateColor, "color", "", "new display color as #RRGGBB")
}

func runTagUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "tag update:", err)
		os.Exit(exitUserError)
	}

	backend, err := attachBackend()
	if err != nil {
		fail("tag update", err)
	}
	defer backend.Detach()

	var patch types.TagPatch
	flags := cmd.Flags()
	if flags.Changed("name") {
		patch.Name = &tagUpdateName
	}
	if flags.Changed("color") {
		patch.Color = &tagUpdateColor
	}

	if patch.Empty() {
		fmt.Fprintln(os.Stderr, "tag update: no fields given")
		os.Exit(exitUserError)
	}

	ok, err := backend.UpdateTag(id, patch)
	if err != nil {
		fail("tag update", err)
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "tag %d not found\n", id)
		os.Exit(exitUserError)
	}

	fmt.Printf("Tag %d updated\n", id)
	return nil
}
