//go:build !gcloud

package config

import "log/slog"

// Validate allows an empty Primind Tasks URL; submissions then become no-ops.
func (c *TaskQueueConfig) Validate() error {
	if c.PrimindTasksURL == "" {
		slog.Warn("PRIMIND_TASKS_URL not set, reminders will not be delivered")
	}
	return nil
}
