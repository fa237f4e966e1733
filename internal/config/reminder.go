package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
)

const (
	reminderTimezoneEnv      = "REMINDER_TIMEZONE"
	reminderSubmitTimeoutEnv = "REMINDER_SUBMIT_TIMEOUT"
	reminderHoursEnvPrefix   = "REMINDER_HOURS_"

	defaultSubmitTimeout = 10 * time.Second
)

type ReminderConfig struct {
	Location      *time.Location
	Hours         domain.HourTable
	SubmitTimeout time.Duration
}

func LoadReminderConfig() (*ReminderConfig, error) {
	location := time.Local
	if tz := os.Getenv(reminderTimezoneEnv); tz != "" {
		loaded, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, tz)
		}
		location = loaded
	}

	submitTimeout := defaultSubmitTimeout
	if v := os.Getenv(reminderSubmitTimeoutEnv); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSubmitTimeout, v)
		}
		submitTimeout = parsed
	}

	hours, err := loadHourTable()
	if err != nil {
		return nil, err
	}

	return &ReminderConfig{
		Location:      location,
		Hours:         hours,
		SubmitTimeout: submitTimeout,
	}, nil
}

// loadHourTable starts from the default table and applies
// REMINDER_HOURS_<CATEGORY>_<OFFSET> overrides, e.g. REMINDER_HOURS_TRIP_BEFORE=9.
func loadHourTable() (domain.HourTable, error) {
	table := domain.DefaultHourTable()

	for _, category := range domain.Categories {
		hours := table[category]
		for _, offset := range domain.Offsets {
			key := reminderHoursEnvPrefix + strings.ToUpper(category.String()) + "_" + strings.ToUpper(offset.String())
			raw := os.Getenv(key)
			if raw == "" {
				continue
			}

			hour, err := strconv.Atoi(raw)
			if err != nil || hour < 0 || hour > 23 {
				return nil, fmt.Errorf("%w: %s=%q", ErrInvalidHour, key, raw)
			}

			if offset == domain.OffsetDayBefore {
				hours.DayBefore = hour
			} else {
				hours.DayOf = hour
			}
		}
		table[category] = hours
	}

	return table, nil
}
