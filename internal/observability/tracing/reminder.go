package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const reminderTracerName = "github.com/KasumiMercury/primind-travel-reminders/internal/service/reminder"

func ReminderTracer() trace.Tracer {
	return otel.Tracer(reminderTracerName)
}

func StartPassSpan(ctx context.Context, runID string, eventCount int) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.pass",
		trace.WithAttributes(
			attribute.String("pass.run_id", runID),
			attribute.Int("pass.event_count", eventCount),
		),
	)
}

func StartCancelSpan(ctx context.Context) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.cancel_all")
}

func StartSubmitSpan(ctx context.Context, notificationID string, fireAt time.Time) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.submit",
		trace.WithAttributes(
			attribute.String("notification.id", notificationID),
			attribute.String("notification.fire_at", fireAt.Format(time.RFC3339)),
		),
	)
}

func StartRefreshSpan(ctx context.Context, trigger string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.refresh",
		trace.WithAttributes(
			attribute.String("refresh.trigger", trigger),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func StartDeliverySpan(ctx context.Context, notificationID string, tokenCount int) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.deliver",
		trace.WithAttributes(
			attribute.String("notification.id", notificationID),
			attribute.Int("delivery.token_count", tokenCount),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordPassResult(span trace.Span, candidateCount, submittedCount, skippedCount, failedCount int, err error) {
	span.SetAttributes(
		attribute.Int("pass.candidate_count", candidateCount),
		attribute.Int("pass.submitted_count", submittedCount),
		attribute.Int("pass.skipped_count", skippedCount),
		attribute.Int("pass.failed_count", failedCount),
	)
	RecordError(span, err)
}

// RecordError marks the span as failed when err is non-nil and OK otherwise.
func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
