package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
	"github.com/KasumiMercury/primind-travel-reminders/internal/observability/metrics"
	"github.com/KasumiMercury/primind-travel-reminders/internal/observability/tracing"
)

const defaultSubmitTimeout = 10 * time.Second

var ErrSubmitTimeout = errors.New("notification submission timed out")

type Scheduler struct {
	mu sync.Mutex
	// inflight counts facility submissions, including those a pass stopped
	// waiting for after submitTimeout.
	inflight sync.WaitGroup
	pending  atomic.Int32

	facility        domain.NotificationFacility
	preferences     domain.PreferenceStore
	planner         *Planner
	recorder        domain.PassRecorder
	reminderMetrics *metrics.ReminderMetrics
	submitTimeout   time.Duration
	now             func() time.Time
}

func NewScheduler(
	facility domain.NotificationFacility,
	preferences domain.PreferenceStore,
	planner *Planner,
	recorder domain.PassRecorder,
	reminderMetrics *metrics.ReminderMetrics,
	submitTimeout time.Duration,
) *Scheduler {
	if submitTimeout <= 0 {
		submitTimeout = defaultSubmitTimeout
	}
	return &Scheduler{
		facility:        facility,
		preferences:     preferences,
		planner:         planner,
		recorder:        recorder,
		reminderMetrics: reminderMetrics,
		submitTimeout:   submitTimeout,
		now:             time.Now,
	}
}

// WithClock replaces the scheduler's time source.
func (s *Scheduler) WithClock(now func() time.Time) *Scheduler {
	s.now = now
	return s
}

// Reschedule replaces the whole set of scheduled notifications with the one
// derived from events. Passes never overlap; a call made while another pass
// is running waits for it to finish.
//
// Only a cancel failure is returned as an error, in which case nothing is
// submitted. Individual submission failures are reported in the result.
func (s *Scheduler) Reschedule(ctx context.Context, events []domain.DomainEvent) (*PassResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := &PassResult{
		RunID:      uuid.NewString(),
		Trigger:    TriggerFromContext(ctx),
		StartedAt:  s.now(),
		EventCount: len(events),
		Results:    []ItemResult{},
	}

	ctx, span := tracing.StartPassSpan(ctx, result.RunID, len(events))
	defer span.End()

	// A submission that outlived its timeout may still record a task. It has
	// to land before the ledger is read, or the task escapes cancellation.
	s.awaitAbandoned(ctx)

	slog.InfoContext(ctx, "starting reminder pass",
		slog.String("run_id", result.RunID),
		slog.String("trigger", result.Trigger),
		slog.Int("event_count", len(events)),
	)

	if err := s.cancelAll(ctx); err != nil {
		slog.ErrorContext(ctx, "aborting reminder pass, cancel failed",
			slog.String("run_id", result.RunID),
			slog.String("error", err.Error()),
		)
		result.FinishedAt = s.now()
		err = fmt.Errorf("%w: %w", domain.ErrCancelFailed, err)

		if s.reminderMetrics != nil {
			s.reminderMetrics.RecordCancelFailure(ctx)
			s.reminderMetrics.RecordPassDuration(ctx, result.FinishedAt.Sub(result.StartedAt), "cancel_failed")
		}
		s.recordPass(ctx, result, nil, true)
		tracing.RecordPassResult(span, 0, 0, 0, 0, err)

		return nil, err
	}

	prefs := s.preferences.GetPreferences(ctx)
	plan := s.planner.Plan(events, prefs, result.StartedAt)

	result.CandidateCount = plan.CandidateCount()
	for _, n := range plan.SkippedDisabled {
		s.addSkipped(ctx, result, n, StatusSkippedDisabled)
	}
	for _, n := range plan.SkippedPast {
		s.addSkipped(ctx, result, n, StatusSkippedPast)
	}

	for _, n := range plan.Retained {
		item := ItemResult{
			NotificationID: n.ID,
			Category:       n.Category,
			Offset:         n.Offset,
			FireAt:         n.FireAt,
			Status:         StatusSubmitted,
		}

		if err := s.submit(ctx, n); err != nil {
			slog.WarnContext(ctx, "failed to submit notification",
				slog.String("run_id", result.RunID),
				slog.String("notification_id", n.ID),
				slog.String("error", err.Error()),
			)
			item.Status = StatusFailed
			item.Error = err.Error()
			result.FailedCount++
		} else {
			result.SubmittedCount++
		}

		if s.reminderMetrics != nil {
			s.reminderMetrics.RecordNotification(ctx, n.Category.String(), n.Offset.String(), item.Status)
		}
		result.Results = append(result.Results, item)
	}

	result.FinishedAt = s.now()

	slog.InfoContext(ctx, "reminder pass completed",
		slog.String("run_id", result.RunID),
		slog.Int("candidate_count", result.CandidateCount),
		slog.Int("submitted_count", result.SubmittedCount),
		slog.Int("skipped_past_count", result.SkippedPastCount),
		slog.Int("skipped_disabled_count", result.SkippedDisabledCount),
		slog.Int("failed_count", result.FailedCount),
	)

	if s.reminderMetrics != nil {
		s.reminderMetrics.RecordPassDuration(ctx, result.FinishedAt.Sub(result.StartedAt), "completed")
	}
	s.recordPass(ctx, result, events, false)
	tracing.RecordPassResult(span, result.CandidateCount, result.SubmittedCount,
		result.SkippedPastCount+result.SkippedDisabledCount, result.FailedCount, nil)

	return result, nil
}

// Preview computes what a pass would submit right now without touching the
// notification facility.
func (s *Scheduler) Preview(ctx context.Context, events []domain.DomainEvent) *Plan {
	prefs := s.preferences.GetPreferences(ctx)
	return s.planner.Plan(events, prefs, s.now())
}

func (s *Scheduler) cancelAll(ctx context.Context) error {
	ctx, span := tracing.StartCancelSpan(ctx)
	defer span.End()

	err := s.facility.CancelAll(ctx)
	tracing.RecordError(span, err)
	return err
}

// submit hands one notification to the facility, bounded by submitTimeout.
// A facility that ignores ctx cancellation still cannot stall the pass.
func (s *Scheduler) submit(ctx context.Context, n domain.ScheduledNotification) error {
	ctx, span := tracing.StartSubmitSpan(ctx, n.ID, n.FireAt)
	defer span.End()

	submitCtx, cancel := context.WithTimeout(ctx, s.submitTimeout)
	defer cancel()

	start := time.Now()
	done := make(chan error, 1)
	s.inflight.Add(1)
	s.pending.Add(1)
	go func() {
		defer s.inflight.Done()
		defer s.pending.Add(-1)
		done <- s.facility.Schedule(submitCtx, n)
	}()

	var err error
	select {
	case err = <-done:
	case <-submitCtx.Done():
		err = fmt.Errorf("%w after %s", ErrSubmitTimeout, s.submitTimeout)
	}

	if s.reminderMetrics != nil {
		s.reminderMetrics.RecordSubmitDuration(ctx, n.Category.String(), time.Since(start))
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrSubmitFailed, err)
	}
	tracing.RecordError(span, err)
	return err
}

func (s *Scheduler) awaitAbandoned(ctx context.Context) {
	if n := s.pending.Load(); n > 0 {
		slog.WarnContext(ctx, "waiting for timed out submissions to settle",
			slog.Int("pending_count", int(n)),
		)
	}
	s.inflight.Wait()
}

func (s *Scheduler) recordPass(ctx context.Context, result *PassResult, events []domain.DomainEvent, cancelFailed bool) {
	if s.recorder == nil {
		return
	}

	records := buildPassRecords(result, events, cancelFailed)
	if err := s.recorder.RecordPass(ctx, records); err != nil {
		slog.WarnContext(ctx, "failed to record reminder pass",
			slog.String("run_id", result.RunID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Scheduler) addSkipped(ctx context.Context, result *PassResult, n domain.ScheduledNotification, status string) {
	if status == StatusSkippedPast {
		result.SkippedPastCount++
	} else {
		result.SkippedDisabledCount++
	}
	if s.reminderMetrics != nil {
		s.reminderMetrics.RecordNotification(ctx, n.Category.String(), n.Offset.String(), status)
	}
	result.Results = append(result.Results, ItemResult{
		NotificationID: n.ID,
		Category:       n.Category,
		Offset:         n.Offset,
		FireAt:         n.FireAt,
		Status:         status,
	})
}

func buildPassRecords(result *PassResult, events []domain.DomainEvent, cancelFailed bool) []domain.PassRecord {
	records := make([]domain.PassRecord, 0, len(domain.Categories))
	byCategory := make(map[domain.Category]*domain.PassRecord, len(domain.Categories))

	for _, category := range domain.Categories {
		records = append(records, domain.PassRecord{
			RunID:           result.RunID,
			Trigger:         result.Trigger,
			PassTime:        result.StartedAt,
			Category:        category.String(),
			CancelledFailed: cancelFailed,
		})
	}
	for i := range records {
		byCategory[domain.Category(records[i].Category)] = &records[i]
	}

	for _, event := range events {
		if record, ok := byCategory[event.Category]; ok {
			record.EventCount++
		}
	}

	for _, item := range result.Results {
		record, ok := byCategory[item.Category]
		if !ok {
			continue
		}
		record.CandidateCount++
		switch item.Status {
		case StatusSubmitted:
			record.SubmittedCount++
		case StatusFailed:
			record.FailedCount++
		case StatusSkippedPast:
			record.PastCount++
		case StatusSkippedDisabled:
			record.DisabledCount++
		}
	}

	return records
}
