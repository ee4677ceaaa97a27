package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Addison-Dalton/towder-defense-practice/internal/config"
)

func TestNoopTracerDoesNotRecord(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "noop")
	defer span.End()
	if span.IsRecording() {
		t.Error("noop span should not record")
	}
}

func TestTracerUsesGlobalProvider(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	_, span := Tracer("board").Start(context.Background(), "board.edit")
	span.End()

	ended := sr.Ended()
	if len(ended) != 1 || ended[0].Name() != "board.edit" {
		t.Fatalf("unexpected spans %v", ended)
	}
	if got := ended[0].InstrumentationScope().Name; got != "tower-defense/board" {
		t.Errorf("scope = %q", got)
	}
}

func TestSpansCarryRunAttributes(t *testing.T) {
	settings := config.Defaults()
	settings.Seed = 42
	settings.BoardWidth = 7

	sr := tracetest.NewSpanRecorder()
	tp, err := newProvider(context.Background(), settings, sdktrace.WithSpanProcessor(sr))
	if err != nil {
		t.Fatal(err)
	}
	defer tp.Shutdown(context.Background())

	_, span := tp.Tracer("test").Start(context.Background(), "game.init")
	span.End()

	ended := sr.Ended()
	if len(ended) != 1 {
		t.Fatalf("got %d spans, want 1", len(ended))
	}
	res := ended[0].Resource().Set()
	if v, ok := res.Value("game.seed"); !ok || v.AsInt64() != 42 {
		t.Errorf("game.seed = %v, %v", v, ok)
	}
	if v, ok := res.Value("board.width"); !ok || v.AsInt64() != 7 {
		t.Errorf("board.width = %v, %v", v, ok)
	}
}

func TestSampler(t *testing.T) {
	for _, ratio := range []float64{0, 1, 2} {
		if got := sampler(ratio).Description(); got != sdktrace.AlwaysSample().Description() {
			t.Errorf("ratio %v: sampler = %s", ratio, got)
		}
	}
	if got := sampler(0.5).Description(); got == sdktrace.AlwaysSample().Description() {
		t.Error("ratio 0.5 should not always sample")
	}
}
