// Reorder command: move a todo one step within its column.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayboard/pkg/types"
)

var reorderCmd = &cobra.Command{
	Use:   "reorder <id|title> <up|down>",
	Short: "Move a todo one position within its column",
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

		var direction types.ReorderDirection
		switch args[1] {
		case "up":
			direction = types.ReorderUp
		case "down":
			direction = types.ReorderDown
		default:
			return fmt.Errorf("invalid direction %q, expected 'up' or 'down'", args[1])
		}

		return svc.Reorder(t.ID, direction)
	},
}
