// Sweep command for the taskdesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Mark past-due pending tasks overdue",
	Args:  cobra.NoArgs,
	RunE:  runSweep,
}

func runSweep(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		fail("sweep", err)
	}
	defer backend.Detach()

	n, err := backend.SweepOverdue()
	if err != nil {
		fail("sweep", err)
	}

	logger.Debug("sweep finished", zap.Int64("transitioned", n))
	fmt.Printf("%d task(s) marked overdue\n", n)
	return nil
}
