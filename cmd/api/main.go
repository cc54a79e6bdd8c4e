package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"resistor-api/internal/colors"
	"resistor-api/internal/config"
	"resistor-api/internal/observability"
	"resistor-api/internal/server"

	"go.uber.org/zap"
)

func main() {

	if err := loadDotEnv(); err != nil {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logger
	if err := observability.InitLogger(cfg.Env); err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tracing, metrics, OTLP logs
	telemetryShutdown, err := initTelemetry(ctx, cfg.TelemetryEnabled)
	if err != nil {
		observability.Logger.Fatal("initializing telemetry", zap.Error(err))
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := telemetryShutdown(flushCtx); err != nil {
			observability.Logger.Error("flushing telemetry", zap.Error(err))
		}
	}()

	// The color table is built once here and shared read-only by every handler.
	registry := colors.NewRegistry()

	var limiter *server.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = server.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go limiter.Run(ctx, time.Minute, 5*time.Minute)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.NewRouter(registry, limiter),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       time.Minute,
		ErrorLog:          zap.NewStdLog(observability.Logger),
	}

	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", srv.Addr),
			zap.Int("colors", registry.Len()),
			zap.Bool("telemetry", cfg.TelemetryEnabled),
			zap.Float64("rate_limit_rps", cfg.RateLimitRPS),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	waitForShutdown(ctx, srv, cfg.ShutdownTimeout)
}

func waitForShutdown(ctx context.Context, srv *http.Server, timeout time.Duration) {

	<-ctx.Done()

	observability.Logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		observability.Logger.Error("server shutdown", zap.Error(err))
	}
}
