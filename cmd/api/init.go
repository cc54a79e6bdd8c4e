package main

import (
	"context"
	"errors"

	"resistor-api/internal/colors"
	"resistor-api/internal/observability"
	"resistor-api/internal/resistors"
)

type shutdownFunc func(context.Context) error

// initTelemetry starts the OTLP trace, metric and log pipelines when enabled
// and returns one function that flushes all of them.
func initTelemetry(ctx context.Context, enabled bool) (shutdownFunc, error) {
	var shutdowns []shutdownFunc
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	if enabled {
		for _, start := range []func(context.Context) (func(context.Context) error, error){
			observability.InitTracing,
			observability.InitMetrics,
			observability.InitLogging,
		} {
			stop, err := start(ctx)
			if err != nil {
				_ = shutdown(ctx)
				return nil, err
			}
			shutdowns = append(shutdowns, stop)
		}
	}

	if err := initMetrics(); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	return shutdown, nil
}

// initMetrics creates the domain metric instruments. They bind to whatever
// meter provider is global at the time, a no-op one when telemetry is off.
func initMetrics() error {
	if err := colors.InitMetrics(); err != nil {
		return err
	}
	return resistors.InitMetrics()
}
