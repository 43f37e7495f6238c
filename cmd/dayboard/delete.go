// Delete command: remove a todo, guarded against deleting epics with
// live children.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id|title>",
	Short: "Delete a todo",
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

		if err := svc.Delete(t.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted %s (%s)\n", t.Title, shortID(t.ID))
		return nil
	},
}
