//go:build gcloud

package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate requires a complete Cloud Tasks queue and an absolute delivery
// callback URL.
func (c *TaskQueueConfig) Validate() error {
	var errs []error

	required := []struct {
		env   string
		value string
	}{
		{"GCLOUD_PROJECT_ID", c.GCloudProjectID},
		{"GCLOUD_LOCATION_ID", c.GCloudLocationID},
		{"GCLOUD_QUEUE_ID", c.GCloudQueueID},
		{"GCLOUD_TARGET_URL", c.GCloudTargetURL},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.env))
		}
	}

	if c.GCloudTargetURL != "" {
		u, err := url.Parse(c.GCloudTargetURL)
		if err != nil || !u.IsAbs() || u.Host == "" {
			errs = append(errs, fmt.Errorf("GCLOUD_TARGET_URL %q must be an absolute URL", c.GCloudTargetURL))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("task queue configuration errors: %w", errors.Join(errs...))
	}

	return nil
}
