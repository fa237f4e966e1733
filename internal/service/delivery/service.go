package delivery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
	"github.com/KasumiMercury/primind-travel-reminders/internal/observability/metrics"
	"github.com/KasumiMercury/primind-travel-reminders/internal/observability/tracing"
)

type Result struct {
	NotificationID string `json:"notification_id"`
	TokenCount     int    `json:"token_count"`
	SuccessCount   int    `json:"success_count"`
	FailureCount   int    `json:"failure_count"`
	RemovedTokens  int    `json:"removed_tokens"`
	Skipped        bool   `json:"skipped"`
	SkipReason     string `json:"skip_reason,omitempty"`
}

// Service pushes a fired notification to every registered device.
type Service struct {
	devices         domain.DeviceRepository
	sender          domain.PushSender
	reminderMetrics *metrics.ReminderMetrics
	sendTimeout     time.Duration
}

// NewService returns a delivery service. A nil sender turns every delivery
// into a skipped no-op.
func NewService(devices domain.DeviceRepository, sender domain.PushSender, reminderMetrics *metrics.ReminderMetrics) *Service {
	return &Service{
		devices:         devices,
		sender:          sender,
		reminderMetrics: reminderMetrics,
	}
}

// WithSendTimeout bounds each push request. Zero leaves it to the caller's
// context.
func (s *Service) WithSendTimeout(d time.Duration) *Service {
	s.sendTimeout = d
	return s
}

func (s *Service) Deliver(ctx context.Context, n domain.ScheduledNotification) (*Result, error) {
	result := &Result{NotificationID: n.ID}

	if s.sender == nil {
		return s.skip(ctx, n, result, "push disabled"), nil
	}

	tokens, err := s.devices.ListTokens(ctx)
	if err != nil {
		s.recordDelivery(ctx, n, "failed")
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}
	result.TokenCount = len(tokens)

	if len(tokens) == 0 {
		return s.skip(ctx, n, result, "no registered devices"), nil
	}

	ctx, span := tracing.StartDeliverySpan(ctx, n.ID, len(tokens))
	defer span.End()

	data := make(map[string]string, len(n.Payload)+1)
	for k, v := range n.Payload {
		data[k] = v
	}
	data["notification_id"] = n.ID

	sendCtx := ctx
	if s.sendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, s.sendTimeout)
		defer cancel()
	}

	pushResult, err := s.sender.Send(sendCtx, tokens, domain.PushMessage{
		Title: n.Title,
		Body:  n.Body,
		Data:  data,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to push notification",
			slog.String("notification_id", n.ID),
			slog.String("error", err.Error()),
		)
		s.recordDelivery(ctx, n, "failed")
		tracing.RecordError(span, err)
		return nil, err
	}

	result.SuccessCount = pushResult.SuccessCount
	result.FailureCount = pushResult.FailureCount

	if len(pushResult.InvalidTokens) > 0 {
		if err := s.devices.RemoveTokens(ctx, pushResult.InvalidTokens...); err != nil {
			slog.WarnContext(ctx, "failed to remove invalid device tokens",
				slog.Int("token_count", len(pushResult.InvalidTokens)),
				slog.String("error", err.Error()),
			)
		} else {
			result.RemovedTokens = len(pushResult.InvalidTokens)
			if s.reminderMetrics != nil {
				s.reminderMetrics.RecordInvalidTokens(ctx, result.RemovedTokens)
			}
		}
	}

	slog.InfoContext(ctx, "notification delivered",
		slog.String("notification_id", n.ID),
		slog.Int("success_count", result.SuccessCount),
		slog.Int("failure_count", result.FailureCount),
		slog.Int("removed_tokens", result.RemovedTokens),
	)

	s.recordDelivery(ctx, n, "delivered")
	tracing.RecordError(span, nil)
	return result, nil
}

func (s *Service) skip(ctx context.Context, n domain.ScheduledNotification, result *Result, reason string) *Result {
	slog.DebugContext(ctx, "skipping notification delivery",
		slog.String("notification_id", n.ID),
		slog.String("reason", reason),
	)
	result.Skipped = true
	result.SkipReason = reason
	s.recordDelivery(ctx, n, "skipped")
	return result
}

func (s *Service) recordDelivery(ctx context.Context, n domain.ScheduledNotification, outcome string) {
	if s.reminderMetrics != nil {
		s.reminderMetrics.RecordDelivery(ctx, n.Category.String(), outcome)
	}
}
