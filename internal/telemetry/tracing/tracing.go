package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("gymlog")

// EndSpanWithErrCheck marks the span as failed if err is set, then ends it.
// Meant to be deferred with a named error return.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
	span.End()
}

// SetEntryAttributes tags the span with the entry being worked on.
func SetEntryAttributes(span trace.Span, id int64, exercise, date string) {
	span.SetAttributes(
		attribute.Int64("entry.id", id),
		attribute.String("entry.exercise", exercise),
		attribute.String("entry.date", date),
	)
}
