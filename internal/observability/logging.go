package observability

import (
	"context"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogging ships every log line written through Logger to the OTLP log
// endpoint as well as stdout. Call it after InitLogger.
func InitLogging(ctx context.Context) (func(context.Context) error, error) {

	exporter, err := otlploghttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx)
	if err != nil {
		return nil, err
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(
			sdklog.NewBatchProcessor(exporter),
		),
	)

	Logger = teeOTel(Logger, otelzap.NewCore(ServiceName(), otelzap.WithLoggerProvider(provider)))

	return provider.Shutdown, nil
}

func teeOTel(base *zap.Logger, otelCore zapcore.Core) *zap.Logger {
	return zap.New(zapcore.NewTee(base.Core(), otelCore), zap.AddCaller())
}
