// History command for the taskdesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent task activity",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "maximum entries to show (default 50)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		fail("history", err)
	}
	defer backend.Detach()

	entries, err := backend.RecentLog(historyLimit)
	if err != nil {
		fail("history", err)
	}

	if flagJSON {
		printJSON(entries)
		return nil
	}

	if len(entries) == 0 {
		fmt.Println("No activity yet")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-8s  %-24s  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Action, e.TaskTitle, e.Detail)
	}
	return nil
}
