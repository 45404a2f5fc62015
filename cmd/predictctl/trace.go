package main

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var cliTracer = otel.Tracer("hekoprot2/cmd/predictctl")

// startCommandSpan opens the root span every client and query span hangs off.
func startCommandSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return cliTracer.Start(ctx, "predictctl."+name, trace.WithSpanKind(trace.SpanKindClient))
}
