// Rollover command: pull overdue pending work into today's column.
package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayboard/pkg/types"
)

var rolloverFlagDate string

var rolloverCmd = &cobra.Command{
	Use:   "rollover",
	Short: "Move overdue todos into today's column",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		day := today()
		if rolloverFlagDate != "" {
			day, err = types.ParseDate(rolloverFlagDate)
			if err != nil {
				return err
			}
		}

		moved, err := svc.RolloverTo(day)
		if err != nil {
			return err
		}

		log.Debug().Int("moved", moved).Str("today", day.String()).Msg("rollover complete")
		fmt.Printf("Rolled over %d todo(s) to %s\n", moved, day)
		return nil
	},
}

func init() {
	rolloverCmd.Flags().StringVar(&rolloverFlagDate, "date", "", "treat this date as today (YYYY-MM-DD)")
}
