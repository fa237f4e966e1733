package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
	"github.com/KasumiMercury/primind-travel-reminders/internal/service/reminder"
)

//go:generate mockgen -source=reminder_handler.go -destination=reminder_handler_mock.go -package=handler

type RefreshService interface {
	Refresh(ctx context.Context) (*reminder.PassResult, error)
	Request(trigger string) bool
	Events(ctx context.Context) ([]domain.DomainEvent, error)
}

type SchedulePreviewer interface {
	Preview(ctx context.Context, events []domain.DomainEvent) *reminder.Plan
}

type ReminderHandler struct {
	refresher RefreshService
	previewer SchedulePreviewer
}

func NewReminderHandler(refresher RefreshService, previewer SchedulePreviewer) *ReminderHandler {
	return &ReminderHandler{
		refresher: refresher,
		previewer: previewer,
	}
}

// HandleRefresh runs a pass and waits for its summary.
func (h *ReminderHandler) HandleRefresh(c *gin.Context) {
	ctx := reminder.WithTrigger(c.Request.Context(), reminder.TriggerManual)

	result, err := h.refresher.Refresh(ctx)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventSourceFailed):
			respondError(c, http.StatusBadGateway, "event_source_error", "failed to fetch upcoming events")
		case errors.Is(err, domain.ErrCancelFailed):
			respondError(c, http.StatusInternalServerError, "cancel_error", "failed to cancel scheduled notifications")
		default:
			respondError(c, http.StatusInternalServerError, "processing_error", "reminder pass failed")
		}
		slog.ErrorContext(ctx, "reminder refresh failed",
			slog.String("error", err.Error()),
		)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ReminderHandler) HandleRefreshAsync(c *gin.Context) {
	queued := h.refresher.Request(reminder.TriggerAsync)

	c.JSON(http.StatusAccepted, gin.H{
		"queued":    queued,
		"coalesced": !queued,
	})
}

// HandlePreview reports what a pass would submit right now.
func (h *ReminderHandler) HandlePreview(c *gin.Context) {
	ctx := c.Request.Context()

	events, err := h.refresher.Events(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch events for preview",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadGateway, "event_source_error", "failed to fetch upcoming events")
		return
	}

	plan := h.previewer.Preview(ctx, events)

	c.JSON(http.StatusOK, gin.H{
		"event_count":     len(events),
		"candidate_count": plan.CandidateCount(),
		"plan":            plan,
	})
}
