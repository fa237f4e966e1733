package config

import (
	"os"
	"strconv"
)

const (
	databaseURLEnv      = "DATABASE_URL"
	crmPageSizeEnv      = "CRM_PAGE_SIZE"
	crmHorizonDaysEnv   = "CRM_HORIZON_DAYS"
	databaseMaxConnsEnv = "DATABASE_MAX_OPEN_CONNS"

	defaultCRMPageSize      = 1000
	defaultCRMHorizonDays   = 60
	defaultDatabaseMaxConns = 5
)

// DatabaseConfig points at the CRM backend database the upcoming events
// are read from.
type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
	PageSize     int
	HorizonDays  int
}

func LoadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		URL:          os.Getenv(databaseURLEnv),
		MaxOpenConns: positiveIntEnv(databaseMaxConnsEnv, defaultDatabaseMaxConns),
		PageSize:     positiveIntEnv(crmPageSizeEnv, defaultCRMPageSize),
		HorizonDays:  positiveIntEnv(crmHorizonDaysEnv, defaultCRMHorizonDays),
	}
}

func (c *DatabaseConfig) Validate() error {
	if c == nil || c.URL == "" {
		return ErrDatabaseURLMissing
	}
	return nil
}

func positiveIntEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}
