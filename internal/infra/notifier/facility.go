package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
	"github.com/KasumiMercury/primind-travel-reminders/internal/infra/taskqueue"
)

// bookkeepingTimeout bounds ledger writes and rollbacks made after a task
// was registered. They run detached from the caller's context.
const bookkeepingTimeout = 5 * time.Second

// Facility delivers scheduled notifications through a delayed task queue and
// tracks the tasks it owns in a ledger.
type Facility struct {
	queue  taskqueue.TaskQueue
	ledger domain.ScheduleLedger
}

// NewFacility returns a facility over queue. With a nil queue every call is a
// silent no-op.
func NewFacility(queue taskqueue.TaskQueue, ledger domain.ScheduleLedger) *Facility {
	return &Facility{
		queue:  queue,
		ledger: ledger,
	}
}

func (f *Facility) Enabled() bool {
	return f.queue != nil && f.ledger != nil
}

// CancelAll deletes every task recorded in the ledger. Successfully deleted
// ids are forgotten even when others fail, so a retry only revisits the
// failures.
func (f *Facility) CancelAll(ctx context.Context) error {
	if !f.Enabled() {
		return nil
	}

	entries, err := f.ledger.Entries(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schedule ledger: %w", err)
	}

	if len(entries) == 0 {
		return nil
	}

	cancelled := make([]string, 0, len(entries))
	var errs []error
	for notificationID, taskName := range entries {
		if err := f.queue.DeleteTask(ctx, taskName); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", notificationID, err))
			continue
		}
		cancelled = append(cancelled, notificationID)
	}

	if err := f.ledger.Forget(ctx, cancelled...); err != nil {
		errs = append(errs, fmt.Errorf("failed to update schedule ledger: %w", err))
	}

	slog.DebugContext(ctx, "cancelled scheduled notifications",
		slog.Int("cancelled_count", len(cancelled)),
		slog.Int("failed_count", len(entries)-len(cancelled)),
	)

	return errors.Join(errs...)
}

func (f *Facility) Schedule(ctx context.Context, n domain.ScheduledNotification) error {
	if !f.Enabled() {
		slog.DebugContext(ctx, "no task queue configured, dropping notification",
			slog.String("notification_id", n.ID),
		)
		return nil
	}

	task := &taskqueue.NotificationTask{
		// Task queues refuse to reuse a deleted task's name for a while, so
		// each registration gets a fresh suffix.
		TaskName:       taskqueue.SanitizeTaskName(n.ID) + "-" + uuid.NewString()[:8],
		ScheduleAt:     n.FireAt,
		NotificationID: n.ID,
		Category:       n.Category.String(),
		Offset:         n.Offset.String(),
		SourceID:       n.SourceID,
		Title:          n.Title,
		Body:           n.Body,
		FireAt:         n.FireAt,
		Payload:        n.Payload,
	}

	resp, err := f.queue.RegisterNotification(ctx, task)
	if err != nil {
		return err
	}

	taskName := task.TaskName
	if resp != nil && resp.Name != "" {
		taskName = resp.Name
	}

	// The task is live from here on. An expired caller context must not
	// leave it unrecorded, since an unrecorded task can never be cancelled.
	recordCtx, cancelRecord := context.WithTimeout(context.WithoutCancel(ctx), bookkeepingTimeout)
	defer cancelRecord()

	if err := f.ledger.Record(recordCtx, n.ID, taskName); err != nil {
		f.rollback(ctx, n.ID, taskName)
		return fmt.Errorf("failed to record scheduled notification: %w", err)
	}

	return nil
}

func (f *Facility) rollback(ctx context.Context, notificationID, taskName string) {
	delCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), bookkeepingTimeout)
	defer cancel()

	if err := f.queue.DeleteTask(delCtx, taskName); err != nil {
		slog.ErrorContext(ctx, "failed to roll back unrecorded task",
			slog.String("notification_id", notificationID),
			slog.String("task_name", taskName),
			slog.String("error", err.Error()),
		)
	}
}
