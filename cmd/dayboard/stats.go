// Stats command: completion counts for a project or an epic.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dayboard/pkg/todo"
)

var (
	statsFlagProject string
	statsFlagEpic    string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion stats for a project or an epic",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (statsFlagProject == "") == (statsFlagEpic == "") {
			return errors.New("pass exactly one of --project or --epic")
		}

		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		var label string
		var stats todo.Stats
		if statsFlagProject != "" {
			if stats, err = svc.ProjectStats(statsFlagProject); err != nil {
				return err
			}
			label = statsFlagProject
		} else {
			t, err := resolveTodo(svc, statsFlagEpic)
			if err != nil {
				return err
			}
			if stats, err = svc.EpicStats(t.ID); err != nil {
				return err
			}
			label = t.Title
		}

		if flagJSON {
			return printJSON(map[string]any{
				"label":     label,
				"total":     stats.Total,
				"completed": stats.Completed,
				"remaining": stats.Remaining,
			})
		}
		fmt.Printf("%s: %d/%d done, %d remaining\n", label, stats.Completed, stats.Total, stats.Remaining)
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsFlagProject, "project", "", "project tag to report on")
	statsCmd.Flags().StringVar(&statsFlagEpic, "epic", "", "epic id or title to report on")
}
