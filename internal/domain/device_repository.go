package domain

import "context"

//go:generate mockgen -source=device_repository.go -destination=device_repository_mock.go -package=domain

// DeviceRepository stores push tokens of the devices reminders are delivered to.
type DeviceRepository interface {
	AddToken(ctx context.Context, token string) error
	RemoveTokens(ctx context.Context, tokens ...string) error
	ListTokens(ctx context.Context) ([]string, error)
}
