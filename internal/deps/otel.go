package deps

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/homework-evaluation/backend/internal/config"
	"github.com/homework-evaluation/backend/internal/deps/logger"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SetupOTelSDK installs the global tracer and logger providers for the
// configured exporter and bridges slog into OpenTelemetry logs. Without an
// exporter it only installs the propagator.
//
// The returned function flushes and stops every provider.
func SetupOTelSDK(ctx context.Context, cfg config.OTelConfig) (func(context.Context) error, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if cfg.Exporter == config.ExporterNone {
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		attribute.String("service.name", cfg.ServiceName),
	))
	if err != nil {
		return nil, fmt.Errorf("build otel resource: %w", err)
	}

	var shutdownFuncs []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var result error
		for _, fn := range shutdownFuncs {
			if err := fn(ctx); err != nil {
				result = multierror.Append(result, err)
			}
		}
		shutdownFuncs = nil
		return result
	}

	spanExporter, err := newSpanExporter(ctx, cfg.Exporter)
	if err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)
	shutdownFuncs = append(shutdownFuncs, tracerProvider.Shutdown)
	otel.SetTracerProvider(tracerProvider)

	logExporter, err := newLogExporter(ctx, cfg.Exporter)
	if err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}
	loggerProvider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
		sdklog.WithResource(res),
	)
	shutdownFuncs = append(shutdownFuncs, loggerProvider.Shutdown)
	global.SetLoggerProvider(loggerProvider)

	logger.Attach(otelslog.NewHandler(cfg.ServiceName, otelslog.WithLoggerProvider(loggerProvider)))
	slog.Info("opentelemetry enabled", "exporter", cfg.Exporter)

	return shutdown, nil
}

func newSpanExporter(ctx context.Context, exporter string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case config.ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case config.ExporterOTLPHTTP:
		return otlptracehttp.New(ctx)
	case config.ExporterOTLPGRPC:
		return otlptracegrpc.New(ctx)
	default:
		return nil, fmt.Errorf("unknown exporter %q", exporter)
	}
}

func newLogExporter(ctx context.Context, exporter string) (sdklog.Exporter, error) {
	switch exporter {
	case config.ExporterStdout:
		return stdoutlog.New(stdoutlog.WithPrettyPrint())
	case config.ExporterOTLPHTTP:
		return otlploghttp.New(ctx)
	case config.ExporterOTLPGRPC:
		return otlploggrpc.New(ctx)
	default:
		return nil, fmt.Errorf("unknown exporter %q", exporter)
	}
}
