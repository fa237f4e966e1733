package reminder

import (
	"context"
	"time"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
)

const (
	StatusSubmitted       = "submitted"
	StatusFailed          = "failed"
	StatusSkippedPast     = "skipped_past"
	StatusSkippedDisabled = "skipped_disabled"
)

const (
	TriggerManual  = "manual"
	TriggerCron    = "cron"
	TriggerStartup = "startup"
	TriggerAsync   = "async"
	// TriggerPreferences marks a pass requested after a preference change.
	TriggerPreferences = "preferences"
)

type ItemResult struct {
	NotificationID string          `json:"notification_id"`
	Category       domain.Category `json:"category"`
	Offset         domain.Offset   `json:"offset"`
	FireAt         time.Time       `json:"fire_at"`
	Status         string          `json:"status"`
	Error          string          `json:"error,omitempty"`
}

type PassResult struct {
	RunID                string       `json:"run_id"`
	Trigger              string       `json:"trigger"`
	StartedAt            time.Time    `json:"started_at"`
	FinishedAt           time.Time    `json:"finished_at"`
	EventCount           int          `json:"event_count"`
	CandidateCount       int          `json:"candidate_count"`
	SubmittedCount       int          `json:"submitted_count"`
	SkippedPastCount     int          `json:"skipped_past_count"`
	SkippedDisabledCount int          `json:"skipped_disabled_count"`
	FailedCount          int          `json:"failed_count"`
	Results              []ItemResult `json:"results"`
}

// Plan is the outcome of the compute step of a pass.
type Plan struct {
	Retained        []domain.ScheduledNotification `json:"retained"`
	SkippedPast     []domain.ScheduledNotification `json:"skipped_past"`
	SkippedDisabled []domain.ScheduledNotification `json:"skipped_disabled"`
}

func (p *Plan) CandidateCount() int {
	return len(p.Retained) + len(p.SkippedPast) + len(p.SkippedDisabled)
}

type triggerKey struct{}

// WithTrigger tags ctx with what started the pass; it ends up in PassResult
// and the pass records.
func WithTrigger(ctx context.Context, trigger string) context.Context {
	return context.WithValue(ctx, triggerKey{}, trigger)
}

func TriggerFromContext(ctx context.Context) string {
	if trigger, ok := ctx.Value(triggerKey{}).(string); ok && trigger != "" {
		return trigger
	}
	return TriggerManual
}
