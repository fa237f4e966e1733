package refresh

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KasumiMercury/primind-travel-reminders/internal/service/reminder"
)

// StartCron requests a refresh on every tick of spec, a standard five-field
// cron expression evaluated in location. The caller stops the returned cron.
func StartCron(spec string, location *time.Location, r *Refresher) (*cron.Cron, error) {
	if location == nil {
		location = time.Local
	}

	c := cron.New(cron.WithLocation(location))
	if _, err := c.AddFunc(spec, func() {
		r.Request(reminder.TriggerCron)
	}); err != nil {
		return nil, fmt.Errorf("invalid refresh cron %q: %w", spec, err)
	}

	c.Start()
	slog.Info("refresh cron started",
		slog.String("schedule", spec),
		slog.String("location", location.String()),
	)

	return c, nil
}
