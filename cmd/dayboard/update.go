// Update command: edit fields on an existing todo.
package main

import (
	"errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayboard/pkg/types"
)

var (
	updateFlagTitle   string
	updateFlagNotes   string
	updateFlagProject string
	updateFlagEpic    string
	updateFlagDate    string
)

var updateCmd = &cobra.Command{
	Use:   "update <id|title>",
	Short: "Update fields on a todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if !flags.Changed("title") && !flags.Changed("notes") &&
			!flags.Changed("project") && !flags.Changed("epic") &&
			!flags.Changed("date") {
			return errors.New("nothing to update, pass at least one of --title, --notes, --project, --epic, --date")
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

		if flags.Changed("title") {
			if t, err = svc.UpdateTitle(t.ID, updateFlagTitle); err != nil {
				return err
			}
		}
		if flags.Changed("notes") {
			if t, err = svc.UpdateNotes(t.ID, updateFlagNotes); err != nil {
				return err
			}
		}
		if flags.Changed("project") {
			if t, err = svc.UpdateProject(t.ID, updateFlagProject); err != nil {
				return err
			}
		}
		if flags.Changed("epic") {
			epicID := uuid.Nil
			if updateFlagEpic != "" {
				if epicID, err = types.ParseID(updateFlagEpic); err != nil {
					return err
				}
			}
			if t, err = svc.UpdateEpicID(t.ID, epicID); err != nil {
				return err
			}
		}
		if flags.Changed("date") {
			var scheduled *types.Date
			scope, err := parseScope(updateFlagDate, today())
			if err != nil {
				return err
			}
			if day, ok := scope.Day(); ok {
				d := day
				scheduled = &d
			}
			if t, err = svc.UpdateScheduledFor(t.ID, scheduled); err != nil {
				return err
			}
		}

		return printTodo(t)
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateFlagTitle, "title", "", "new title")
	updateCmd.Flags().StringVar(&updateFlagNotes, "notes", "", "new notes (empty clears)")
	updateCmd.Flags().StringVar(&updateFlagProject, "project", "", "new project tag (empty clears)")
	updateCmd.Flags().StringVar(&updateFlagEpic, "epic", "", "new epic id (empty clears the link)")
	updateCmd.Flags().StringVar(&updateFlagDate, "date", "", "new schedule (today, backlog, or YYYY-MM-DD)")
}
