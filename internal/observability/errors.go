package observability

import (
	"context"
	"net/http"

	"resistor-api/internal/handlers"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RecordError centralises error handling across all domains: records the error
// on the span, increments the provided error counter, logs with trace context,
// and writes a JSON error HTTP response. Client errors (4xx) log at warn.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName, msg string, err error, status int, w http.ResponseWriter) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	span.SetAttributes(attribute.Int("http.response.status_code", status))

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.Int("status", status),
	))

	fields := []zap.Field{
		zap.String("operation", opName),
		zap.Int("status", status),
		zap.Error(err),
		zap.String("request_id", RequestIDFromContext(ctx)),
	}
	if status >= http.StatusInternalServerError {
		logger.Error(msg, fields...)
	} else {
		logger.Warn(msg, fields...)
	}

	handlers.WriteError(w, status, msg)
}
