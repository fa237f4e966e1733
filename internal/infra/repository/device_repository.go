package repository

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
)

const (
	devicesKey = "reminder:devices"
)

type deviceRepository struct {
	client *redis.Client
}

func NewDeviceRepository(client *redis.Client) domain.DeviceRepository {
	return &deviceRepository{
		client: client,
	}
}

func (r *deviceRepository) AddToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.ErrDeviceTokenEmpty
	}
	return r.client.SAdd(ctx, devicesKey, token).Err()
}

func (r *deviceRepository) RemoveTokens(ctx context.Context, tokens ...string) error {
	if len(tokens) == 0 {
		return nil
	}

	members := make([]any, 0, len(tokens))
	for _, token := range tokens {
		members = append(members, token)
	}
	return r.client.SRem(ctx, devicesKey, members...).Err()
}

func (r *deviceRepository) ListTokens(ctx context.Context) ([]string, error) {
	return r.client.SMembers(ctx, devicesKey).Result()
}
