// Add command: create a todo in a day column or the backlog.
package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayboard/pkg/todo"
	"github.com/mesh-intelligence/dayboard/pkg/types"
)

var (
	addFlagDate    string
	addFlagNotes   string
	addFlagProject string
	addFlagEpic    string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		params := todo.AddParams{
			Title:   args[0],
			Notes:   addFlagNotes,
			Project: addFlagProject,
		}

		// Default to today's column; --date backlog targets the backlog.
		scope, err := parseScope(addFlagDate, today())
		if err != nil {
			return err
		}
		if day, ok := scope.Day(); ok {
			d := day
			params.ScheduledFor = &d
		}

		if addFlagEpic != "" {
			epicID, err := types.ParseID(addFlagEpic)
			if err != nil {
				return err
			}
			params.EpicID = epicID
		}

		t, err := svc.Add(params)
		if err != nil {
			return err
		}

		log.Debug().Str("id", t.ID.String()).Str("scope", t.Scope().String()).Msg("todo added")
		return printTodo(t)
	},
}

func init() {
	addCmd.Flags().StringVar(&addFlagDate, "date", "today", "schedule date (today, backlog, or YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addFlagNotes, "notes", "", "optional notes")
	addCmd.Flags().StringVar(&addFlagProject, "project", "", "optional project tag")
	addCmd.Flags().StringVar(&addFlagEpic, "epic", "", "optional epic id to link under")
}
