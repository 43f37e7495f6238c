// List command: show a column with filters.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayboard/pkg/types"
)

var (
	listFlagScope     string
	listFlagAll       bool
	listFlagProject   string
	listFlagNoProject bool
	listFlagEpic      string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos in a column",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		scope, err := parseScope(listFlagScope, today())
		if err != nil {
			return err
		}

		opts := types.ListOptions{
			Scope:       scope,
			IncludeDone: listFlagAll,
			Project:     types.ProjectAny(),
		}
		if listFlagNoProject {
			opts.Project = types.ProjectIsNull()
		} else if listFlagProject != "" {
			opts.Project = types.ProjectEquals(listFlagProject)
		}
		if listFlagEpic != "" {
			epicID, err := types.ParseID(listFlagEpic)
			if err != nil {
				return err
			}
			opts.EpicID = epicID
		}

		todos, err := svc.List(opts)
		if err != nil {
			return err
		}
		return printTodoTable(svc, todos)
	},
}

func init() {
	listCmd.Flags().StringVar(&listFlagScope, "scope", "today", "column to list (today, backlog, or YYYY-MM-DD)")
	listCmd.Flags().BoolVar(&listFlagAll, "all", false, "include done todos")
	listCmd.Flags().StringVar(&listFlagProject, "project", "", "only todos with this project tag")
	listCmd.Flags().BoolVar(&listFlagNoProject, "no-project", false, "only todos without a project tag")
	listCmd.Flags().StringVar(&listFlagEpic, "epic", "", "only children of this epic")
}
