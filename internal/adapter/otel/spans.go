package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "dealflow"

// StartWinSpan starts a span for the deal-win cascade.
func StartWinSpan(ctx context.Context, dealID string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "deal.win",
		trace.WithAttributes(
			attribute.String("deal.id", dealID),
		),
	)
}
