// Reopen command: revert a completed todo to pending.
package main

import (
	"github.com/spf13/cobra"
)

var reopenCmd = &cobra.Command{
	Use:   "reopen <id|title>",
	Short: "Revert a done todo to pending",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		t, err := resolveTodo(svc, args[0])
		if err != nil {
			return err
		}

		updated, err := svc.MarkPending(t.ID)
		if err != nil {
			return err
		}
		return printTodo(updated)
	},
}
