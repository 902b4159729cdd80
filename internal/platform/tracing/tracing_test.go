package tracing

import (
	"context"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func newRecorded(t *testing.T, keep func(string) bool) (Tracer, *tracetest.SpanRecorder, func(context.Context) context.Context) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	tracer := provider.Tracer("test")
	withParent := func(ctx context.Context) context.Context {
		ctx, _ = tracer.Start(ctx, "parent")
		return ctx
	}
	return WithTracer(tracer, keep), recorder, withParent
}

func TestStart_SkipsWithoutParent(t *testing.T) {
	tr, recorder, _ := newRecorded(t, nil)

	ctx := context.Background()
	got, span := tr.Start(ctx, "usecase.MatchService.List")
	span.End()

	if got != ctx {
		t.Fatalf("expected ctx unchanged")
	}
	if span.SpanContext().IsValid() {
		t.Fatalf("expected no-op span")
	}
	if n := len(recorder.Ended()); n != 0 {
		t.Fatalf("expected no recorded spans, got %d", n)
	}
}

func TestStart_ChildOfParent(t *testing.T) {
	tr, recorder, withParent := newRecorded(t, nil)

	ctx := withParent(context.Background())
	_, span := tr.Start(ctx, "usecase.GoalService.Summary", attribute.String("team", "BRA"))
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected 1 ended span, got %d", len(ended))
	}
	if ended[0].Name() != "usecase.GoalService.Summary" {
		t.Fatalf("unexpected span name %q", ended[0].Name())
	}
	if ended[0].Parent().SpanID() != trace.SpanContextFromContext(ctx).SpanID() {
		t.Fatalf("expected span to be a child of the parent")
	}
	if attrs := ended[0].Attributes(); len(attrs) != 1 || attrs[0].Value.AsString() != "BRA" {
		t.Fatalf("unexpected attributes: %+v", attrs)
	}
}

func TestStart_Filtered(t *testing.T) {
	tr, recorder, withParent := newRecorded(t, func(name string) bool {
		return strings.HasPrefix(name, "httpapi.Handler.")
	})

	ctx := withParent(context.Background())
	_, skipped := tr.Start(ctx, "httpapi.writeJSON")
	skipped.End()
	_, kept := tr.Start(ctx, "httpapi.Handler.ListTeams")
	kept.End()

	ended := recorder.Ended()
	if len(ended) != 1 || ended[0].Name() != "httpapi.Handler.ListTeams" {
		t.Fatalf("unexpected ended spans: %d", len(ended))
	}
}

func TestStart_EmptyName(t *testing.T) {
	tr, _, withParent := newRecorded(t, nil)
	ctx := withParent(context.Background())
	if _, span := tr.Start(ctx, ""); span.SpanContext().IsValid() {
		t.Fatalf("expected no-op span for empty name")
	}
}
