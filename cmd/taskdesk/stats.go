// Stats command for the taskdesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counters",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		fail("stats", err)
	}
	defer backend.Detach()

	stats, err := backend.Statistics()
	if err != nil {
		fail("stats", err)
	}

	if flagJSON {
		printJSON(stats)
		return nil
	}

	fmt.Printf("Total:     %d\n", stats.Total)
	fmt.Printf("Completed: %d\n", stats.Completed)
	fmt.Printf("Pending:   %d\n", stats.Pending)
	fmt.Printf("Overdue:   %d\n", stats.Overdue)
	return nil
}
