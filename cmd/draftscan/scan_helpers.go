package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"draftscan/internal/watch"
)

// runScanCommand runs once and, with --watch, again after every change to
// draftPath until interrupted. The first run must succeed; later failures are
// logged by the watcher and it keeps waiting.
func runScanCommand(cmd *cobra.Command, ctx *commandContext, draftPath string, watchDraft bool, run func(context.Context) error) error {
	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	if err := run(base); err != nil {
		return err
	}
	if !watchDraft {
		return nil
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	watchCtx, stop := signal.NotifyContext(base, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watch.File(watchCtx, draftPath, cfg.WatchDebounce(), ctx.ensureLogger(), run)
}
