package config

import "errors"

var (
	ErrRedisAddrMissing   = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB     = errors.New("REDIS_DB must be a valid integer")
	ErrDatabaseURLMissing = errors.New("DATABASE_URL is required")
	ErrInvalidTimezone    = errors.New("REMINDER_TIMEZONE must be a valid IANA timezone")
	ErrInvalidHour        = errors.New("reminder hour must be an integer between 0 and 23")

	ErrInvalidSubmitTimeout = errors.New("REMINDER_SUBMIT_TIMEOUT must be a positive duration")
)
