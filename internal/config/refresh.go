package config

import (
	"os"
)

const (
	refreshCronEnv      = "REFRESH_CRON"
	refreshOnStartupEnv = "REFRESH_ON_STARTUP"

	defaultRefreshCron = "*/15 * * * *"
)

type RefreshConfig struct {
	// Cron is a standard five-field schedule. "off" disables periodic refresh.
	Cron      string
	OnStartup bool
}

func LoadRefreshConfig() *RefreshConfig {
	cron := os.Getenv(refreshCronEnv)
	if cron == "" {
		cron = defaultRefreshCron
	}

	return &RefreshConfig{
		Cron:      cron,
		OnStartup: os.Getenv(refreshOnStartupEnv) != "false",
	}
}

func (c *RefreshConfig) Enabled() bool {
	return c != nil && c.Cron != "" && c.Cron != "off"
}
