// Init command for the taskdesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagInitSamples bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize taskdesk storage",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagInitSamples, "samples", false, "seed sample tasks into an empty store")
}

func runInit(cmd *cobra.Command, args []string) error {
	// Resolve config directory (flag > env > default) and ensure it exists
	// with a default config.yaml.
	configDir, err := resolveConfigDir()
	if err != nil {
		fail("init", err)
	}
	if err := ensureConfigDir(configDir); err != nil {
		fail("init", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		fail("init", err)
	}

	// Attach backend (creates the data directory, the schema, and the
	// built-in categories).
	backend, err := attachBackend()
	if err != nil {
		fail("init", err)
	}
	defer backend.Detach()

	if flagInitSamples {
		n, err := backend.SeedSamples()
		if err != nil {
			fail("init", err)
		}
		if n > 0 {
			fmt.Printf("Seeded %d sample task(s)\n", n)
		}
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		fail("init", err)
	}

	fmt.Println("Taskdesk initialized successfully")
	fmt.Println("  config:", configDir)
	fmt.Println("  data:  ", dataDir)
	return nil
}
