package main

import (
	"context"
	"domainfinder/internal/config"
	"domainfinder/internal/worker"
	"domainfinder/pkg/logger"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func enqueueCommand(cfg *config.Config) *cobra.Command {
	var args worker.BatchArgs

	cmd := &cobra.Command{
		Use:   "enqueue",
		Short: "Queues one batch for the worker unless one is already queued or running",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			inserted, err := strg.AddJob(ctx, args, nil)
			if err != nil {
				return fmt.Errorf("could not enqueue batch: %w", err)
			}
			if !inserted {
				logger.Info(ctx, "a batch is already queued or running, nothing enqueued")

				return nil
			}
			logger.Info(ctx, "batch enqueued", zap.Int("limit", args.Limit), zap.String("sortBy", args.SortBy))

			return nil
		},
	}

	cmd.Flags().IntVar(&args.Limit, "limit", 0, "number of listing candidates (default from config)")
	cmd.Flags().StringVar(&args.SortBy, "sort-by", "", "listing sort field: price, age or backlinks")
	cmd.Flags().StringVar(&args.SortOrder, "sort-order", "", "listing sort order: asc or desc")

	return cmd
}
