package repository

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
)

const (
	scheduledKey = "reminder:scheduled"
)

// scheduleLedger is a Redis hash of notification id -> task queue name.
type scheduleLedger struct {
	client *redis.Client
}

func NewScheduleLedger(client *redis.Client) domain.ScheduleLedger {
	return &scheduleLedger{
		client: client,
	}
}

func (l *scheduleLedger) Record(ctx context.Context, notificationID, taskName string) error {
	return l.client.HSet(ctx, scheduledKey, notificationID, taskName).Err()
}

func (l *scheduleLedger) Entries(ctx context.Context) (map[string]string, error) {
	return l.client.HGetAll(ctx, scheduledKey).Result()
}

func (l *scheduleLedger) Forget(ctx context.Context, notificationIDs ...string) error {
	if len(notificationIDs) == 0 {
		return nil
	}
	return l.client.HDel(ctx, scheduledKey, notificationIDs...).Err()
}
