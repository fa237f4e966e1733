package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	reminderMeterName = "reminder.service"
)

type ReminderMetrics struct {
	notifications     metric.Int64Counter
	passDuration      metric.Float64Histogram
	submitDuration    metric.Float64Histogram
	cancelFailures    metric.Int64Counter
	refreshes         metric.Int64Counter
	deliveries        metric.Int64Counter
	deliveryTokensBad metric.Int64Counter
}

func NewReminderMetrics() (*ReminderMetrics, error) {
	meter := otel.Meter(reminderMeterName)

	notifications, err := meter.Int64Counter(
		"reminder_notifications_total",
		metric.WithDescription("Total number of reminder notifications by outcome"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	passDuration, err := meter.Float64Histogram(
		"reminder_pass_duration_seconds",
		metric.WithDescription("Duration of a full scheduling pass"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
		),
	)
	if err != nil {
		return nil, err
	}

	submitDuration, err := meter.Float64Histogram(
		"reminder_submit_duration_seconds",
		metric.WithDescription("Duration of a single notification submission"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
		),
	)
	if err != nil {
		return nil, err
	}

	cancelFailures, err := meter.Int64Counter(
		"reminder_cancel_failures_total",
		metric.WithDescription("Total number of passes aborted by a cancel failure"),
		metric.WithUnit("{pass}"),
	)
	if err != nil {
		return nil, err
	}

	refreshes, err := meter.Int64Counter(
		"reminder_refresh_total",
		metric.WithDescription("Total number of refresh runs by trigger and outcome"),
		metric.WithUnit("{refresh}"),
	)
	if err != nil {
		return nil, err
	}

	deliveries, err := meter.Int64Counter(
		"reminder_deliveries_total",
		metric.WithDescription("Total number of push deliveries by outcome"),
		metric.WithUnit("{delivery}"),
	)
	if err != nil {
		return nil, err
	}

	deliveryTokensBad, err := meter.Int64Counter(
		"reminder_delivery_invalid_tokens_total",
		metric.WithDescription("Total number of device tokens removed after a failed push"),
		metric.WithUnit("{token}"),
	)
	if err != nil {
		return nil, err
	}

	return &ReminderMetrics{
		notifications:     notifications,
		passDuration:      passDuration,
		submitDuration:    submitDuration,
		cancelFailures:    cancelFailures,
		refreshes:         refreshes,
		deliveries:        deliveries,
		deliveryTokensBad: deliveryTokensBad,
	}, nil
}

// RecordNotification counts one candidate notification. outcome is one of
// submitted, failed, skipped_past, skipped_disabled.
func (m *ReminderMetrics) RecordNotification(ctx context.Context, category, offset, outcome string) {
	m.notifications.Add(ctx, 1, metric.WithAttributes(
		attribute.String("category", category),
		attribute.String("offset", offset),
		attribute.String("outcome", outcome),
	))
}

func (m *ReminderMetrics) RecordPassDuration(ctx context.Context, duration time.Duration, outcome string) {
	m.passDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *ReminderMetrics) RecordSubmitDuration(ctx context.Context, category string, duration time.Duration) {
	m.submitDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("category", category),
	))
}

func (m *ReminderMetrics) RecordCancelFailure(ctx context.Context) {
	m.cancelFailures.Add(ctx, 1)
}

func (m *ReminderMetrics) RecordRefresh(ctx context.Context, trigger, outcome string) {
	m.refreshes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("trigger", trigger),
		attribute.String("outcome", outcome),
	))
}

func (m *ReminderMetrics) RecordDelivery(ctx context.Context, category, outcome string) {
	m.deliveries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("category", category),
		attribute.String("outcome", outcome),
	))
}

func (m *ReminderMetrics) RecordInvalidTokens(ctx context.Context, count int) {
	m.deliveryTokensBad.Add(ctx, int64(count))
}
