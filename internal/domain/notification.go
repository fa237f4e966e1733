package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=notification.go -destination=notification_mock.go -package=domain

const (
	PayloadCategory = "category"
	PayloadSourceID = "source_id"
	PayloadOffset   = "offset"
)

// ScheduledNotification is a computed local reminder. It is handed to the
// NotificationFacility and never persisted by the scheduler.
type ScheduledNotification struct {
	ID       string            `json:"id"`
	Category Category          `json:"category"`
	Offset   Offset            `json:"offset"`
	SourceID string            `json:"source_id"`
	FireAt   time.Time         `json:"fire_at"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Payload  map[string]string `json:"payload"`
}

func NewScheduledNotification(event DomainEvent, offset Offset, fireAt time.Time, title, body string) ScheduledNotification {
	return ScheduledNotification{
		ID:       NotificationID(event.ID, offset),
		Category: event.Category,
		Offset:   offset,
		SourceID: event.ID,
		FireAt:   fireAt,
		Title:    title,
		Body:     body,
		Payload: map[string]string{
			PayloadCategory: event.Category.String(),
			PayloadSourceID: event.ID,
			PayloadOffset:   offset.String(),
		},
	}
}

// NotificationID derives the stable notification identifier for an event
// and offset, e.g. "trip:c-42:before".
func NotificationID(eventID string, offset Offset) string {
	return eventID + ":" + offset.String()
}

func (n *ScheduledNotification) IsDue(now time.Time) bool {
	return !n.FireAt.After(now)
}

// NotificationFacility is the delivery side that owns scheduled
// notifications once submitted.
type NotificationFacility interface {
	CancelAll(ctx context.Context) error
	Schedule(ctx context.Context, notification ScheduledNotification) error
}
