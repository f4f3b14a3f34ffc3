package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"draftscan/internal/alias"
	"draftscan/internal/scan"
)

func newAliasCommand(ctx *commandContext) *cobra.Command {
	aliasCmd := &cobra.Command{
		Use:   "alias",
		Short: "Manage the animation alias map",
	}

	aliasCmd.AddCommand(newAliasScanCommand(ctx))
	aliasCmd.AddCommand(newAliasListCommand(ctx))
	aliasCmd.AddCommand(newAliasGetCommand(ctx))

	return aliasCmd
}

func newAliasScanCommand(ctx *commandContext) *cobra.Command {
	var draftPath string
	var watchDraft bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Merge animation names from a draft into the alias map",
		RunE: func(cmd *cobra.Command, args []string) error {
			draftPath = strings.TrimSpace(draftPath)
			if draftPath == "" {
				return errors.New("--draft is required")
			}
			return ctx.withRunner(func(runner *scan.Runner) error {
				return runScanCommand(cmd, ctx, draftPath, watchDraft, func(runCtx context.Context) error {
					result, err := runner.Aliases(runCtx, draftPath)
					if err != nil {
						return err
					}
					return printAliasResult(cmd, ctx, result)
				})
			})
		},
	}

	cmd.Flags().StringVarP(&draftPath, "draft", "d", "", "Path to draft_content.json")
	cmd.Flags().BoolVarP(&watchDraft, "watch", "w", false, "Re-run whenever the draft changes")
	return cmd
}

func printAliasResult(cmd *cobra.Command, ctx *commandContext, result scan.AliasResult) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, result)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Scanned material_animations.")
	fmt.Fprintf(out, "Aliases added: %d\n", result.Stats.Updated)
	fmt.Fprintf(out, "Aliases unchanged: %d\n", result.Stats.Unchanged)
	fmt.Fprintf(out, "Saved to: %s\n", result.StorePath)
	return nil
}

func newAliasListCommand(ctx *commandContext) *cobra.Command {
	var filter string
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored aliases",
		RunE: func(cmd *cobra.Command, args []string) error {
			listFmt, err := parseListFormat(format, ctx.jsonOutput())
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			m := alias.Open(cfg.AliasPath(), ctx.ensureLogger())
			match := newTextFilter(filter)
			records := make([]alias.Record, 0, m.Len())
			for _, record := range m.List() {
				if match.match(record.ID, record.Name) {
					records = append(records, record)
				}
			}
			return writeListing(cmd, listFmt, records, []string{"ID", "Name"}, func(r alias.Record) []string {
				return []string{r.ID, r.Name}
			})
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Only show aliases whose id or name contains this text")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, json or yaml")
	return cmd
}

func newAliasGetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print the name stored for an animation id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			id := strings.TrimSpace(args[0])
			m := alias.Open(cfg.AliasPath(), ctx.ensureLogger())
			name, ok := m.Lookup(id)
			if !ok {
				return fmt.Errorf("alias %s not found in %s", id, m.Path())
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, alias.Record{ID: id, Name: name})
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}
