package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Logger is the process-wide logger. It discards everything until InitLogger
// runs so that packages can log safely from tests.
var Logger = zap.NewNop()

// InitLogger replaces Logger with a JSON production logger, or a console
// development logger when env is "development".
func InitLogger(env string) error {
	var (
		l   *zap.Logger
		err error
	)

	if env == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	Logger = l.With(zap.String("env", env))
	return nil
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger enriched with trace_id and span_id
// fields from the active OTel span in ctx.
//
// ctx is also attached as a zap.Any("context", ctx) field. The otelzap bridge
// recognises context.Context field values and emits the OTLP log record with
// that context, so the exported record carries the native TraceID/SpanID
// instead of all-zero ids. The string fields keep stdout JSON greppable.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
