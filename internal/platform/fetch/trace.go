package fetch

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var fetchTracer = otel.Tracer("hekoprot2/internal/platform/fetch")
var fetchNoopSpan = trace.SpanFromContext(context.Background())

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, fetchNoopSpan
	}
	return fetchTracer.Start(ctx, name)
}
