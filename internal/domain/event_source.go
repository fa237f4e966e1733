package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=event_source.go -destination=event_source_mock.go -package=domain

// EventSource reads the upcoming collections the reminders are derived
// from. Each call is bounded to records dated on or after since.
type EventSource interface {
	UpcomingTrips(ctx context.Context, since time.Time) ([]Trip, error)
	PendingTasks(ctx context.Context, since time.Time) ([]Task, error)
	UpcomingLeadFollowUps(ctx context.Context, since time.Time) ([]LeadFollowUp, error)
}
