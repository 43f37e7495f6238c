// Done command: mark a todo as complete.
package main

import (
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <id|title>",
	Short: "Mark a todo as done",
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

		updated, err := svc.MarkDone(t.ID, today())
		if err != nil {
			return err
		}
		return printTodo(updated)
	},
}
