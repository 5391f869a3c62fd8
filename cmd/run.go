package main

import (
	"context"
	"domainfinder/internal/config"
	"domainfinder/internal/pipeline"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/logger"
	"domainfinder/pkg/metrics"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runCommand(cfg *config.Config) *cobra.Command {
	var (
		req pipeline.Request
		top uint
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Runs one batch synchronously and prints its summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			runner, err := newPipeline(ctx, cfg, strg, metrics.Noop())
			if err != nil {
				return fmt.Errorf("could not build pipeline: %w", err)
			}

			summary, err := runner.Run(ctx, req)
			if err != nil {
				logger.Error(ctx, "batch failed", zap.Error(err))

				return fmt.Errorf("could not run batch: %w", err)
			}
			printSummary(cmd.OutOrStdout(), summary)

			if top == 0 {
				return nil
			}
			records, err := strg.TopDomains(context.WithoutCancel(ctx), 0, top)
			if err != nil {
				return fmt.Errorf("could not load top domains: %w", err)
			}
			printRecords(cmd.OutOrStdout(), records)

			return nil
		},
	}

	cmd.Flags().IntVar(&req.Limit, "limit", 0, "number of listing candidates (default from config)")
	cmd.Flags().StringVar(&req.Sort.By, "sort-by", "", "listing sort field: price, age or backlinks")
	cmd.Flags().StringVar(&req.Sort.Order, "sort-order", "", "listing sort order: asc or desc")
	cmd.Flags().UintVar(&top, "top", 10, "print the best stored domains after the run")

	return cmd
}

func printSummary(out io.Writer, s *pipeline.Summary) {
	_, _ = fmt.Fprintf(out, "run %s: %d candidates, %d processed (%d new, %d updated), %d failed, %d skipped in %s\n",
		s.RunID, s.Candidates, s.Processed, s.Created, s.Updated, s.Failed, s.Skipped,
		s.FinishedAt.Sub(s.StartedAt).Round(time.Millisecond))
	for _, f := range s.Failures {
		_, _ = fmt.Fprintf(out, "  failed %s: %v\n", f.Key, f.Err)
	}
	_, _ = fmt.Fprintf(out, "alerts: %d emails, %d webhooks, %d errors\n",
		s.Alerts.EmailSent, s.Alerts.WebhookSent, len(s.Alerts.Errors))
}

func printRecords(out io.Writer, records []domain.DomainRecord) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DOMAIN\tSCORE\tGRADE\tVALUE\tROI\tAGE\tBACKLINKS")
	for _, r := range records {
		_, _ = fmt.Fprintf(w, "%s\t%.1f\t%s\t$%.0f-$%.0f\t%.0f%%\t%dd\t%d\n",
			r.Key, r.Score.TotalScore, r.Valuation.Grade, r.Valuation.PriceLow, r.Valuation.PriceHigh,
			r.Valuation.ROIPercent, r.Enrichment.AgeDays, r.Enrichment.BacklinkCount)
	}
	_ = w.Flush()
}
