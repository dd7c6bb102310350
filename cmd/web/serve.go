package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jammehabdou64/documentation/internal/config"
	"github.com/jammehabdou64/documentation/internal/httpserver"
	"github.com/jammehabdou64/documentation/internal/observability"
)

func newServeCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
}

// runServe listens until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down
// gracefully within the configured timeout.
func runServe(ctx context.Context, cfg config.Config) error {
	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	a, err := buildApp(cfg)
	if err != nil {
		logger.Error("startup validation failed", zap.Error(err))
		return err
	}

	srv, err := httpserver.New(httpserver.Config{
		Address:       cfg.Server.Address,
		ReadTimeout:   cfg.Server.ReadTimeout,
		WriteTimeout:  cfg.Server.WriteTimeout,
		IdleTimeout:   cfg.Server.IdleTimeout,
		Site:          a.site,
		Bridge:        a.bridge,
		Metrics:       a.metrics,
		Logger:        logger,
		AllowIndexing: cfg.IsProduction(),
	})
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("docs server listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("environment", cfg.Environment),
		zap.Bool("dev", cfg.Dev),
		zap.Int("routes", a.site.Routes().Len()),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
