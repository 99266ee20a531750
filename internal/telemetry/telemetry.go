// Package telemetry installs the OpenTelemetry tracer provider used by the
// calculator. Tracing is off unless requested, in which case spans are
// written to a writer by the stdout exporter.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Options configures Setup.
type Options struct {
	// Enabled installs an SDK provider. When false Setup is a no-op.
	Enabled bool
	// Writer receives one JSON document per ended span.
	Writer io.Writer
	// ServiceName and Version become resource attributes.
	ServiceName string
	Version     string
	// SessionID tags every span of one process run.
	SessionID string
}

// ShutdownFunc flushes pending spans and restores the previous global
// provider.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup installs a global tracer provider according to opts.
func Setup(opts Options) (ShutdownFunc, error) {
	if !opts.Enabled {
		return noopShutdown, nil
	}
	if opts.Writer == nil {
		return nil, errors.New("telemetry: tracing enabled without a writer")
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(opts.Writer))
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating stdout exporter: %w", err)
	}

	attrs := []attribute.KeyValue{attribute.String("service.name", opts.ServiceName)}
	if opts.Version != "" {
		attrs = append(attrs, attribute.String("service.version", opts.Version))
	}
	if opts.SessionID != "" {
		attrs = append(attrs, attribute.String("session.id", opts.SessionID))
	}

	// Spans are exported synchronously as they end.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attrs...)),
	)

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) error {
		otel.SetTracerProvider(previous)
		if err := tp.Shutdown(ctx); err != nil {
			return fmt.Errorf("telemetry: shutdown: %w", err)
		}
		return nil
	}, nil
}
