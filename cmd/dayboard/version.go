package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayboard/pkg/dayboard"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dayboard version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("dayboard %s\n", dayboard.Version)
		return nil
	},
}
