package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/worldcup-analytics/internal/platform/tracing"
)

// Only handler entry points get spans; writers and middleware helpers ride
// on the otelhttp server span.
var apiSpans = tracing.New("worldcup-analytics/internal/interfaces/httpapi", isHandlerSpan)

func isHandlerSpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return apiSpans.Start(ctx, name)
}
