// Show command: display one todo by id or title.
package main

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id|title>",
	Short: "Show a todo",
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
		return printTodo(t)
	},
}
