package main

import (
	"fmt"
	"io"

	"draftscan/internal/preflight"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

const (
	statusLabelWidth = 16
	statusIndent     = "  "
)

func renderCheckLine(result preflight.Result, colorize bool) string {
	label := "OK"
	color := ansiGreen
	if !result.Passed {
		label = "FAIL"
		color = ansiRed
	}
	base := fmt.Sprintf("%s%-*s [%s] %s", statusIndent, statusLabelWidth, result.Name+":", label, result.Detail)
	if colorize {
		return color + base + ansiReset
	}
	return base
}

func writeChecks(w io.Writer, results []preflight.Result) {
	colorize := isTerminal(w)
	for _, result := range results {
		fmt.Fprintln(w, renderCheckLine(result, colorize))
	}
}
