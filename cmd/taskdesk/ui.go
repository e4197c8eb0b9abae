// UI command for the taskdesk CLI.
package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmaldon/taskdesk/internal/logging"
	"github.com/dmaldon/taskdesk/internal/ui"
)

// uiLogFileName is the default diagnostic sink while the UI owns the
// terminal.
const uiLogFileName = "taskdesk.log"

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive terminal interface",
	Args:  cobra.NoArgs,
	RunE:  runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	// Attaching first guarantees the data directory exists for the log file.
	backend, err := attachBackend()
	if err != nil {
		fail("ui", err)
	}
	defer backend.Detach()

	dataDir, err := resolveDataDir()
	if err != nil {
		fail("ui", err)
	}

	// The UI draws on the terminal, so diagnostics must go to a file
	// instead of stderr.
	logFile := configLogFile
	if logFile == "" {
		logFile = filepath.Join(dataDir, uiLogFileName)
	}
	uiLogger, err := logging.New(flagVerbose || configVerbose, logFile)
	if err != nil {
		fail("ui", err)
	}
	defer logging.Sync(uiLogger)

	if err := ui.Run(backend, uiLogger); err != nil {
		fail("ui", err)
	}
	return nil
}
