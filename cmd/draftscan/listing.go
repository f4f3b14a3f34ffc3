package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
)

type listFormat string

const (
	formatTable listFormat = "table"
	formatJSON  listFormat = "json"
	formatYAML  listFormat = "yaml"
)

func parseListFormat(value string, jsonFlag bool) (listFormat, error) {
	if jsonFlag {
		return formatJSON, nil
	}
	switch listFormat(strings.ToLower(strings.TrimSpace(value))) {
	case "", formatTable:
		return formatTable, nil
	case formatJSON:
		return formatJSON, nil
	case formatYAML:
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want table, json or yaml)", value)
	}
}

// textFilter matches case-insensitively using Unicode case folding.
type textFilter struct {
	needle string
}

func newTextFilter(query string) textFilter {
	query = strings.TrimSpace(query)
	if query == "" {
		return textFilter{}
	}
	return textFilter{needle: cases.Fold().String(query)}
}

func (f textFilter) match(fields ...string) bool {
	if f.needle == "" {
		return true
	}
	folder := cases.Fold()
	for _, field := range fields {
		if strings.Contains(folder.String(field), f.needle) {
			return true
		}
	}
	return false
}

// writeListing prints records in the requested format. rows supplies the
// table cells for table output.
func writeListing[T any](cmd *cobra.Command, format listFormat, records []T, headers []string, row func(T) []string) error {
	switch format {
	case formatJSON:
		return writeJSON(cmd, records)
	case formatYAML:
		return writeYAML(cmd, records)
	}
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No entries")
		return nil
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, row(record))
	}
	return writeRows(out, headers, rows, nil)
}
