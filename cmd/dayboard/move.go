// Move command: relocate a todo to another column.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayboard/pkg/types"
)

var moveFlagBottom bool

var moveCmd = &cobra.Command{
	Use:   "move <id|title> <scope>",
	Short: "Move a todo to another column (today, backlog, or YYYY-MM-DD)",
	Args:  cobra.ExactArgs(2),
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

		scope, err := parseScope(args[1], today())
		if err != nil {
			return err
		}

		placement := types.PlaceTop
		if moveFlagBottom {
			placement = types.PlaceBottom
		}

		updated, err := svc.MoveToScope(t.ID, scope, placement)
		if err != nil {
			return err
		}
		return printTodo(updated)
	},
}

func init() {
	moveCmd.Flags().BoolVar(&moveFlagBottom, "bottom", false, "place at the bottom of the target column")
}
