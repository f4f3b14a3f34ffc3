package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"draftscan/internal/effects"
	"draftscan/internal/scan"
)

func newEffectsCommand(ctx *commandContext) *cobra.Command {
	effectsCmd := &cobra.Command{
		Use:   "effects",
		Short: "Manage the video effect catalog",
	}

	effectsCmd.AddCommand(newEffectsScanCommand(ctx))
	effectsCmd.AddCommand(newEffectsListCommand(ctx))
	effectsCmd.AddCommand(newEffectsShowCommand(ctx))
	effectsCmd.AddCommand(newEffectsCacheScanCommand(ctx))

	return effectsCmd
}

func newEffectsScanCommand(ctx *commandContext) *cobra.Command {
	var draftPath string
	var outPath string
	var watchDraft bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Merge video effects from a draft into the effect catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			draftPath = strings.TrimSpace(draftPath)
			if draftPath == "" {
				return errors.New("--draft is required")
			}
			return ctx.withRunner(func(runner *scan.Runner) error {
				return runScanCommand(cmd, ctx, draftPath, watchDraft, func(runCtx context.Context) error {
					result, err := runner.Effects(runCtx, draftPath, outPath)
					if err != nil {
						return err
					}
					return printEffectsResult(cmd, ctx, result)
				})
			})
		},
	}

	cmd.Flags().StringVarP(&draftPath, "draft", "d", "", "Path to draft_content.json")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Catalog file (relative names are placed in the data directory)")
	cmd.Flags().BoolVarP(&watchDraft, "watch", "w", false, "Re-run whenever the draft changes")
	return cmd
}

func printEffectsResult(cmd *cobra.Command, ctx *commandContext, result scan.EffectsResult) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, result)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Scanned video_effects.")
	fmt.Fprintf(out, "Effects added: %d\n", result.Stats.Added)
	fmt.Fprintf(out, "Effects stored: %d\n", result.Stats.Total)
	fmt.Fprintf(out, "Saved to: %s\n", result.StorePath)
	return nil
}

func newEffectsListCommand(ctx *commandContext) *cobra.Command {
	var filter string
	var format string
	var outPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogued video effects",
		RunE: func(cmd *cobra.Command, args []string) error {
			listFmt, err := parseListFormat(format, ctx.jsonOutput())
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			catalog := effects.Open(cfg.CatalogPath(outPath), ctx.ensureLogger())
			match := newTextFilter(filter)
			records := make([]effects.Record, 0, catalog.Len())
			for _, record := range catalog.List() {
				if match.match(record.ID, record.Name, record.CategoryName) {
					records = append(records, record)
				}
			}
			return writeListing(cmd, listFmt, records, []string{"ID", "Name", "Category", "Type"}, func(r effects.Record) []string {
				return []string{r.ID, r.Name, r.CategoryName, r.Type}
			})
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Only show effects whose id, name or category contains this text")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, json or yaml")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Catalog file to read")
	return cmd
}

func newEffectsShowCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one catalogued video effect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			id := strings.TrimSpace(args[0])
			catalog := effects.Open(cfg.CatalogPath(outPath), ctx.ensureLogger())
			record, ok := catalog.Lookup(id)
			if !ok {
				return fmt.Errorf("effect %s not found in %s", id, catalog.Path())
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, record)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:            %s\n", record.ID)
			fmt.Fprintf(out, "Name:          %s\n", record.Name)
			fmt.Fprintf(out, "Path:          %s\n", record.Path)
			fmt.Fprintf(out, "Category ID:   %s\n", record.CategoryID)
			fmt.Fprintf(out, "Category Name: %s\n", record.CategoryName)
			fmt.Fprintf(out, "Type:          %s\n", record.Type)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Catalog file to read")
	return cmd
}
