// Init command: create the config directory, default config file, and
// an empty data directory so later commands find a working setup.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayboard/pkg/sqlite"
	"github.com/mesh-intelligence/dayboard/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize config and data directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}

		store := sqlite.NewStore()
		cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}
		if err := store.Attach(cfg); err != nil {
			return err
		}
		if err := store.Detach(); err != nil {
			return err
		}
		fmt.Printf("Initialized dayboard data in %s\n", dataDir)
		return nil
	},
}
