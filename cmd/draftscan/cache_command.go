package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"draftscan/internal/effectcache"
	"draftscan/internal/scan"
)

// cacheSampleSize caps the example names shown per effect type.
const cacheSampleSize = 3

func newEffectsCacheScanCommand(ctx *commandContext) *cobra.Command {
	var cacheDir string
	var outPath string

	cmd := &cobra.Command{
		Use:   "cache-scan",
		Short: "List the editor's downloaded effects by type",
		Long: "Reads <dir>/<effect id>/<hash>/config.json for every cached effect and\n" +
			"rewrites the cache listing (default effect_catalog.json in the data directory).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withRunner(func(runner *scan.Runner) error {
				result, err := runner.EffectCache(cmd.Context(), strings.TrimSpace(cacheDir), outPath)
				if err != nil {
					return err
				}
				return printCacheResult(cmd, ctx, result)
			})
		},
	}

	cmd.Flags().StringVar(&cacheDir, "dir", "", "Effect cache directory (defaults to [effect_cache] dir)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Listing file (relative names are placed in the data directory)")
	return cmd
}

func printCacheResult(cmd *cobra.Command, ctx *commandContext, result scan.CacheResult) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, result)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Scanned effect cache.")
	if len(result.Groups) > 0 {
		rows := make([][]string, 0, len(result.Groups))
		for _, group := range result.Groups {
			rows = append(rows, []string{group.Type, strconv.Itoa(len(group.Entries)), sampleNames(group.Entries)})
		}
		aligns := []columnAlignment{alignLeft, alignRight, alignLeft}
		if err := writeRows(out, []string{"Type", "Effects", "Examples"}, rows, aligns); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "Effects cached: %d\n", result.Total)
	fmt.Fprintf(out, "Saved to: %s\n", result.StorePath)
	return nil
}

func sampleNames(entries []effectcache.Entry) string {
	names := make([]string, 0, cacheSampleSize)
	for _, entry := range entries {
		if len(names) == cacheSampleSize {
			break
		}
		name := entry.Name
		if name == "" {
			name = "(no name)"
		}
		names = append(names, entry.ID+" "+name)
	}
	text := strings.Join(names, ", ")
	if extra := len(entries) - len(names); extra > 0 {
		text += fmt.Sprintf(", +%d more", extra)
	}
	return text
}
