// Column command: assign a backlog lane to a todo.
package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

var columnCmd = &cobra.Command{
	Use:   "column <id|title> <lane>",
	Short: "Set the backlog lane of a todo (0-3)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lane, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}

		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		t, err := resolveTodo(svc, args[0])
		if err != nil {
			return err
		}

		updated, err := svc.SetBacklogColumn(t.ID, lane)
		if err != nil {
			return err
		}
		return printTodo(updated)
	},
}
