// Package telemetry wires OpenTelemetry tracing for the simulation.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Addison-Dalton/towder-defense-practice/internal/config"
)

const (
	serviceName    = "tower-defense"
	serviceVersion = "0.1.0"
)

// Setup exports spans over OTLP HTTP (OTEL_EXPORTER_OTLP_* variables) and
// registers the provider globally. Every span carries the board size and
// seed of the run.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, settings config.Settings) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	tp, err := newProvider(ctx, settings, sdktrace.WithBatcher(exporter))
	if err != nil {
		return nil, err
	}

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown, nil
}

func newProvider(ctx context.Context, settings config.Settings, processor sdktrace.TracerProviderOption) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(ctx, resource.WithAttributes(runAttributes(settings)...))
	if err != nil {
		return nil, err
	}
	return sdktrace.NewTracerProvider(
		processor,
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(settings.TraceSampleRatio)),
	), nil
}

func runAttributes(settings config.Settings) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("host.name", hostname()),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.version", runtime.Version()),
		attribute.Int("board.width", settings.BoardWidth),
		attribute.Int("board.height", settings.BoardHeight),
		attribute.Int64("game.seed", settings.Seed),
	}
}

// sampler keeps everything unless a ratio below 1 was configured; children
// follow their parent so edits are never split from their recompute.
func sampler(ratio float64) sdktrace.Sampler {
	if ratio <= 0 || ratio >= 1 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

// Tracer returns a named tracer from the global provider.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// NoopTracer returns a no-op tracer for use when telemetry is disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
