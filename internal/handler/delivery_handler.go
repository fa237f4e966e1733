package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
	"github.com/KasumiMercury/primind-travel-reminders/internal/infra/taskqueue"
	"github.com/KasumiMercury/primind-travel-reminders/internal/service/delivery"
)

type Deliverer interface {
	Deliver(ctx context.Context, n domain.ScheduledNotification) (*delivery.Result, error)
}

// DeliveryHandler receives fired tasks from the task queue.
type DeliveryHandler struct {
	deliverer Deliverer
}

func NewDeliveryHandler(deliverer Deliverer) *DeliveryHandler {
	return &DeliveryHandler{deliverer: deliverer}
}

func (h *DeliveryHandler) HandleDeliver(c *gin.Context) {
	ctx := c.Request.Context()

	var task taskqueue.NotificationTask
	if err := c.ShouldBindJSON(&task); err != nil {
		slog.WarnContext(ctx, "invalid notification task body",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	n, err := notificationFromTask(task)
	if err != nil {
		// Not retryable; answer 4xx so the queue drops the task.
		slog.WarnContext(ctx, "notification task rejected",
			slog.String("notification_id", task.NotificationID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.deliverer.Deliver(ctx, n)
	if err != nil {
		slog.ErrorContext(ctx, "notification delivery failed",
			slog.String("notification_id", n.ID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "delivery_error", "failed to deliver notification")
		return
	}

	c.JSON(http.StatusOK, result)
}

func notificationFromTask(task taskqueue.NotificationTask) (domain.ScheduledNotification, error) {
	if task.NotificationID == "" {
		return domain.ScheduledNotification{}, errors.New("notification_id is required")
	}
	category := domain.Category(task.Category)
	if !category.IsValid() {
		return domain.ScheduledNotification{}, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, task.Category)
	}

	return domain.ScheduledNotification{
		ID:       task.NotificationID,
		Category: category,
		Offset:   domain.Offset(task.Offset),
		SourceID: task.SourceID,
		FireAt:   task.FireAt,
		Title:    task.Title,
		Body:     task.Body,
		Payload:  task.Payload,
	}, nil
}
