// Show command for the taskdesk CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Display a task with full details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "show:", err)
		os.Exit(exitUserError)
	}

	backend, err := attachBackend()
	if err != nil {
		fail("show", err)
	}
	defer backend.Detach()

	task, err := backend.GetTask(id)
	if err != nil {
		if isNotFound(err) {
			fmt.Fprintf(os.Stderr, "task %d not found\n", id)
			os.Exit(exitUserError)
		}
		fail("show", err)
	}

	tags, err := backend.TaskTags(id)
	if err != nil {
		fail("show", err)
	}

	if flagJSON {
		printJSON(map[string]any{
			"task": task,
			"tags": tags,
		})
		return nil
	}

	fmt.Printf("ID:        %d\n", task.ID)
	fmt.Printf("Title:     %s\n", task.Title)
	if task.Description != "" {
		fmt.Printf("Details:   %s\n", task.Description)
	}
	fmt.Printf("Status:    %s\n", task.Status)
	fmt.Printf("Priority:  %s\n", task.Priority)
	fmt.Printf("Due:       %s\n", formatCell(task.DueDate))
	fmt.Printf("Category:  %s\n", formatCell(task.CategoryName))
	fmt.Printf("Created:   %s\n", task.CreatedAt.Format("2006-01-02 15:04:05"))

	if len(tags) > 0 {
		names := make([]string, 0, len(tags))
		for _, tag := range tags {
			names = append(names, tag.Name)
		}
		fmt.Printf("Tags:      %s\n", strings.Join(names, ", "))
	}
	return nil
}
