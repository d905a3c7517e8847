package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	appconfig "Food-Inventory/cmd/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, opts)
		},
	}
}

func serve(ctx context.Context, opts *rootOptions) error {
	env, err := setup(opts, nil)
	if err != nil {
		return err
	}
	defer env.close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := appconfig.NewApp(env.db, appconfig.AppParams{
		Config:   env.cfg,
		Logger:   env.logg,
		Registry: registry,
	})
	if err != nil {
		return err
	}

	if env.cfg.RefreshInterval > 0 {
		refresher, cleanup, err := env.newRefresher(ctx, registry)
		if err != nil {
			return err
		}
		defer cleanup()

		// stop runs before cleanup and env.close, so no refresh pass outlives the database.
		stop := startBackground(ctx, func(runCtx context.Context) {
			_ = refresher.RunEvery(runCtx, env.cfg.RefreshInterval)
		})
		defer stop()
	}

	errCh := make(chan error, 1)
	go func() {
		env.logg.InfoFields(ctx, "http server starting", map[string]any{"port": env.cfg.AppPort})
		errCh <- app.Listen(":" + env.cfg.AppPort)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	env.logg.Info(context.Background(), "shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// startBackground runs fn in a goroutine. The returned stop cancels fn's
// context and waits for fn to return.
func startBackground(ctx context.Context, fn func(ctx context.Context)) (stop func()) {
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn(runCtx)
	}()
	return func() {
		cancel()
		<-done
	}
}
