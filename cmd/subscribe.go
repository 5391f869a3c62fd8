package main

import (
	"context"
	"domainfinder/internal/config"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/logger"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func subscribeCommand(cfg *config.Config) *cobra.Command {
	var sub domain.AlertSubscription

	cmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Registers an alert subscription",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			stored, err := strg.StoreSubscription(ctx, sub)
			if err != nil {
				return fmt.Errorf("could not store subscription: %w", err)
			}
			logger.Info(ctx, "subscription stored", zap.Int64("id", stored.ID))

			return nil
		},
	}

	cmd.Flags().StringVar(&sub.Email, "email", "", "email address receiving the digest")
	cmd.Flags().StringVar(&sub.WebhookURL, "webhook", "", "http(s) webhook receiving the digest")
	cmd.Flags().Float64Var(&sub.MinQualityScore, "min-score", 0, "minimum total score")
	cmd.Flags().IntVar(&sub.MinDomainAge, "min-age", 0, "minimum domain age in days")
	cmd.Flags().IntVar(&sub.MaxDomainAge, "max-age", 36500, "maximum domain age in days")
	cmd.Flags().IntVar(&sub.MinBacklinks, "min-backlinks", 0, "minimum backlink count")

	return cmd
}
