// Root command for the taskdesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dmaldon/taskdesk/internal/logging"
	"github.com/dmaldon/taskdesk/internal/paths"
	"github.com/dmaldon/taskdesk/pkg/version"
)

// Exit codes shared by all subcommands.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// Values loaded from config.yaml. Set by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir string
	configLogFile string
	configVerbose bool
)

// logger is the diagnostic channel for all subcommands. User-facing output
// goes to stdout; the logger never does.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:     "taskdesk",
	Short:   "Taskdesk is a local task organizer",
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configLogFile = cfg.GetString(cfgKeyLogFile)
		configVerbose = cfg.GetBool(cfgKeyVerbose)

		logger, err = logging.New(flagVerbose || configVerbose, configLogFile)
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.taskdesk-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(dictateCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(uiCmd)
}

// resolveDataDir returns the data directory path following the precedence
// --data-dir flag > config.yaml data-dir > TASKDESK_DATA_DIR env >
// default $(CWD)/.taskdesk-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence --config-dir flag > TASKDESK_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
