package refresh

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
	"github.com/KasumiMercury/primind-travel-reminders/internal/observability/metrics"
	"github.com/KasumiMercury/primind-travel-reminders/internal/observability/tracing"
	"github.com/KasumiMercury/primind-travel-reminders/internal/service/aggregate"
	"github.com/KasumiMercury/primind-travel-reminders/internal/service/reminder"
)

//go:generate mockgen -source=refresher.go -destination=mock.go -package=refresh

// Rescheduler runs one reminder pass over a set of events.
type Rescheduler interface {
	Reschedule(ctx context.Context, events []domain.DomainEvent) (*reminder.PassResult, error)
}

// Refresher fetches fresh CRM data and feeds it to the scheduler. Requests
// made while a refresh is running collapse into a single follow-up refresh
// which reads the latest data.
type Refresher struct {
	source          domain.EventSource
	scheduler       Rescheduler
	location        *time.Location
	reminderMetrics *metrics.ReminderMetrics
	now             func() time.Time

	requests chan string
}

func NewRefresher(
	source domain.EventSource,
	scheduler Rescheduler,
	location *time.Location,
	reminderMetrics *metrics.ReminderMetrics,
) *Refresher {
	if location == nil {
		location = time.Local
	}
	return &Refresher{
		source:          source,
		scheduler:       scheduler,
		location:        location,
		reminderMetrics: reminderMetrics,
		now:             time.Now,
		requests:        make(chan string, 1),
	}
}

func (r *Refresher) WithClock(now func() time.Time) *Refresher {
	r.now = now
	return r
}

// Events fetches the three upcoming collections starting at the beginning of
// the current day and aggregates them.
func (r *Refresher) Events(ctx context.Context) ([]domain.DomainEvent, error) {
	since := startOfDay(r.now(), r.location)

	trips, err := r.source.UpcomingTrips(ctx, since)
	if err != nil {
		return nil, err
	}
	tasks, err := r.source.PendingTasks(ctx, since)
	if err != nil {
		return nil, err
	}
	leads, err := r.source.UpcomingLeadFollowUps(ctx, since)
	if err != nil {
		return nil, err
	}

	events := aggregate.Aggregate(trips, tasks, leads)

	slog.DebugContext(ctx, "fetched upcoming events",
		slog.Int("trip_count", len(trips)),
		slog.Int("task_count", len(tasks)),
		slog.Int("lead_count", len(leads)),
		slog.Int("event_count", len(events)),
	)

	return events, nil
}

// Refresh fetches and reschedules synchronously. A fetch failure leaves the
// current schedule untouched.
func (r *Refresher) Refresh(ctx context.Context) (*reminder.PassResult, error) {
	trigger := reminder.TriggerFromContext(ctx)

	ctx, span := tracing.StartRefreshSpan(ctx, trigger)
	defer span.End()

	events, err := r.Events(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrEventSourceFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrEventSourceFailed, err)
		}
		slog.ErrorContext(ctx, "failed to fetch upcoming events",
			slog.String("trigger", trigger),
			slog.String("error", err.Error()),
		)
		r.recordRefresh(ctx, trigger, "fetch_failed")
		tracing.RecordError(span, err)
		return nil, err
	}

	result, err := r.scheduler.Reschedule(ctx, events)
	if err != nil {
		r.recordRefresh(ctx, trigger, "pass_failed")
		tracing.RecordError(span, err)
		return nil, err
	}

	r.recordRefresh(ctx, trigger, "completed")
	tracing.RecordError(span, nil)
	return result, nil
}

// Request asks the run loop for a refresh without waiting. It reports false
// when a refresh is already pending, in which case this request is served by
// that one.
func (r *Refresher) Request(trigger string) bool {
	select {
	case r.requests <- trigger:
		return true
	default:
		slog.Debug("refresh already pending, coalescing request",
			slog.String("trigger", trigger),
		)
		return false
	}
}

// Run serves requests until ctx is done.
func (r *Refresher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case trigger := <-r.requests:
			if _, err := r.Refresh(reminder.WithTrigger(ctx, trigger)); err != nil {
				slog.WarnContext(ctx, "requested refresh failed",
					slog.String("trigger", trigger),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

func (r *Refresher) recordRefresh(ctx context.Context, trigger, outcome string) {
	if r.reminderMetrics != nil {
		r.reminderMetrics.RecordRefresh(ctx, trigger, outcome)
	}
}

func startOfDay(t time.Time, location *time.Location) time.Time {
	local := t.In(location)
	year, month, day := local.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}
