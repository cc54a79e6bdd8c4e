package main

import (
	"context"
	"testing"
)

func TestInitTelemetryDisabledStillCreatesInstruments(t *testing.T) {
	ctx := context.Background()

	shutdown, err := initTelemetry(ctx, false)
	if err != nil {
		t.Fatalf("initializing telemetry: %v", err)
	}

	if err := shutdown(ctx); err != nil {
		t.Fatalf("expected clean shutdown, got %v", err)
	}
}
