package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"umdproc/internal/dump"
	"umdproc/internal/logging"
	"umdproc/internal/queue"
	"umdproc/internal/watcher"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the dump directory and process dumps as they complete",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}
			store, err := queue.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			media := ctx.mediaType()
			w := watcher.New(cfg, logger)
			err = w.Run(runCtx, func(basePath string) {
				report := dump.Process(basePath, media)
				if _, recordErr := store.Record(runCtx, report); recordErr != nil {
					logger.Error("record dump", "component", "watch",
						"base_path", basePath, "error", recordErr)
					return
				}
				logger.Info("dump processed", "component", "watch",
					"base_path", basePath, "title", report.Title, "complete", report.Complete)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	return cmd
}
