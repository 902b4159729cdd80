// Package tracing starts child spans for internal helpers. It never opens a
// root span: without a parent span in ctx, Start is a no-op.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var noopSpan = trace.SpanFromContext(context.Background())

// Tracer wraps an otel tracer with a name filter.
type Tracer struct {
	tracer trace.Tracer
	keep   func(name string) bool
}

// New uses the global provider. keep may be nil to allow every name.
func New(scope string, keep func(name string) bool) Tracer {
	return WithTracer(otel.Tracer(scope), keep)
}

func WithTracer(tracer trace.Tracer, keep func(name string) bool) Tracer {
	return Tracer{tracer: tracer, keep: keep}
}

// Start returns ctx unchanged with a no-op span when name is empty, filtered
// out, or ctx carries no valid parent span.
func (t Tracer) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if name == "" || t.tracer == nil {
		return ctx, noopSpan
	}
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, noopSpan
	}
	if t.keep != nil && !t.keep(name) {
		return ctx, noopSpan
	}
	if len(attrs) == 0 {
		return t.tracer.Start(ctx, name)
	}
	return t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
