// Version command for the taskdesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmaldon/taskdesk/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the taskdesk version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("taskdesk", version.Version)
	},
}
