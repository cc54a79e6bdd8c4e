package colors

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	lookupCounter metric.Int64Counter
	errorCounter  metric.Int64Counter
)

// InitMetrics registers the OTel instruments for color lookups.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("colors")

	var err error

	lookupCounter, err = meter.Int64Counter("colors.lookups.total",
		metric.WithDescription("Total number of color lookups served"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return fmt.Errorf("creating lookup counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("colors.errors.total",
		metric.WithDescription("Total number of failed color lookups"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
