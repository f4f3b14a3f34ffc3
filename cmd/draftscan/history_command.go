package main

import (
	"errors"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent scan runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return errors.New("--limit must be positive")
			}
			history, err := ctx.openHistory()
			if err != nil {
				return err
			}
			if history == nil {
				return errors.New("run history is disabled; set [history] enabled = true in the config")
			}
			defer history.Close()

			runs, err := history.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, runs)
			}
			if len(runs) == 0 {
				cmd.PrintErrln("No runs recorded")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.StartedAt.Local().Format(time.DateTime),
					run.Kind,
					filepath.Base(filepath.Dir(run.DraftPath)),
					strconv.Itoa(run.Added),
					strconv.Itoa(run.Unchanged),
					strconv.Itoa(run.Total),
					run.StorePath,
				})
			}
			headers := []string{"Started", "Kind", "Draft", "Added", "Unchanged", "Total", "Store"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft}
			return writeRows(cmd.OutOrStdout(), headers, rows, aligns)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to show")
	return cmd
}
