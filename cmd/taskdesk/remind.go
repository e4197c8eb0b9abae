// Remind command for the taskdesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmaldon/taskdesk/internal/sqlite"
	"github.com/dmaldon/taskdesk/pkg/types"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Print a due-date reminder summary",
	Long: `Remind reports how many tasks are overdue and how many are due today.
It prints nothing when neither applies, so it can run from a shell profile.`,
	Args: cobra.NoArgs,
	RunE: runRemind,
}

func runRemind(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		fail("remind", err)
	}
	defer backend.Detach()

	overdue, dueToday, err := reminderCounts(backend)
	if err != nil {
		fail("remind", err)
	}

	if overdue > 0 {
		fmt.Printf("You have %d overdue task(s)\n", overdue)
	}
	if dueToday > 0 {
		fmt.Printf("You have %d task(s) due today\n", dueToday)
	}
	return nil
}

// reminderCounts returns how many tasks are overdue and how many pending
// tasks fall due on the current date.
func reminderCounts(backend *sqlite.Backend) (int64, int64, error) {
	stats, err := backend.Statistics()
	if err != nil {
		return 0, 0, err
	}

	tasks, err := backend.ListTasks("")
	if err != nil {
		return 0, 0, err
	}

	today := types.Today()
	var dueToday int64
	for _, t := range tasks {
		if t.Status == types.StatusPending && t.DueDate == today {
			dueToday++
		}
	}
	return stats.Overdue, dueToday, nil
}
