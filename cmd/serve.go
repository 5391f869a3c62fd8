package main

import (
	"context"
	"domainfinder/internal/api"
	"domainfinder/internal/config"
	"domainfinder/internal/worker"
	"domainfinder/pkg/logger"
	"domainfinder/pkg/metrics"
	"domainfinder/pkg/storage/postgres"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) func(ctx context.Context) {
	server := api.NewServer(api.Deps{Database: strg}, api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting ops server...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start ops server", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping ops server...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop ops server", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the ops server and the worker running scheduled batches",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			otel.SetMeterProvider(mp)
			m, err := metrics.New(mp)
			if err != nil {
				logger.Fatal(ctx, "could not create metrics", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			runner, err := newPipeline(ctx, cfg, strg, m)
			if err != nil {
				logger.Fatal(ctx, "could not build pipeline", zap.Error(err))
			}

			// the worker outlives ctx so running batches can drain on shutdown
			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, runner, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start worker", zap.Error(err))
			}

			stopServer := setupServer(ctx, cfg, strg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopServer(shutdownCtx)

			logger.Info(shutdownCtx, "stopping worker...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "worker did not stop gracefully, cancelling jobs", zap.Error(err))
				if err := riverClient.StopAndCancel(context.Background()); err != nil {
					logger.Error(shutdownCtx, "could not stop worker", zap.Error(err))
				}
			}

			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
