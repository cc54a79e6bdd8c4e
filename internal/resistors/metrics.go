package resistors

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	decodeCounter   metric.Int64Counter
	decodeHistogram metric.Float64Histogram
	errorCounter    metric.Int64Counter
	resistanceGauge metric.Float64Gauge
)

// InitMetrics registers custom OTel metric instruments for band decoding.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("resistors")

	var err error

	decodeCounter, err = meter.Int64Counter("resistors.decodings.total",
		metric.WithDescription("Total number of resistor values decoded from bands"),
		metric.WithUnit("{decoding}"),
	)
	if err != nil {
		return fmt.Errorf("creating decode counter: %w", err)
	}

	decodeHistogram, err = meter.Float64Histogram("resistors.decoding.duration",
		metric.WithDescription("Duration of band decoding in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating decode histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("resistors.errors.total",
		metric.WithDescription("Total number of failed decodings"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	resistanceGauge, err = meter.Float64Gauge("resistors.last_resistance",
		metric.WithDescription("Resistance of the last decoded resistor"),
		metric.WithUnit("Ohm"),
	)
	if err != nil {
		return fmt.Errorf("creating resistance gauge: %w", err)
	}

	return nil
}
