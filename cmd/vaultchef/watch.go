// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/vaultchef/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [cookbook]",
	Short: "Rebuild a cookbook whenever its sources change",
	Long: `Watch keeps the cookbook note and every recipe it embeds under watch,
rebuilding the cookbook after each change. Edits arriving in a burst are
coalesced into a single rebuild. Interrupt with Ctrl-C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	debounceMS, _ := cmd.Flags().GetInt("debounce")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := watch.New(args[0], cfg, time.Duration(debounceMS)*time.Millisecond, verbose)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func init() {
	watchCmd.Flags().Int("debounce", 400, "milliseconds to wait for edits to settle before rebuilding")
	watchCmd.Flags().Bool("verbose", false, "print pandoc output during rebuilds")

	rootCmd.AddCommand(watchCmd)
}
