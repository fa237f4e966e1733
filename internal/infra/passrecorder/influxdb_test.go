//go:build !gcloud

package passrecorder

import (
	"context"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
)

func TestNewRecorder_FallsBackToNoop(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "disabled", cfg: &Config{Disabled: true, InfluxDBToken: "t", InfluxDBOrg: "o"}},
		{name: "missing token", cfg: &Config{InfluxDBOrg: "o"}},
		{name: "missing org", cfg: &Config{InfluxDBToken: "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, err := NewRecorder(context.Background(), tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := recorder.(*noopRecorder); !ok {
				t.Errorf("expected noop recorder, got %T", recorder)
			}
		})
	}
}

func TestNewPassPoint(t *testing.T) {
	passTime := time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)

	point := newPassPoint(domain.PassRecord{
		RunID:          "run-1",
		Trigger:        "cron",
		PassTime:       passTime,
		Category:       "trip",
		EventCount:     2,
		SubmittedCount: 3,
		PastCount:      1,
	})

	if point.Name() != passMeasurement {
		t.Errorf("measurement: got %q", point.Name())
	}
	if !point.Time().Equal(passTime) {
		t.Errorf("time: got %v, want %v", point.Time(), passTime)
	}

	tags := make(map[string]string)
	for _, tag := range point.TagList() {
		tags[tag.Key] = tag.Value
	}
	if tags["run_id"] != "run-1" || tags["category"] != "trip" || tags["trigger"] != "cron" {
		t.Errorf("unexpected tags: %v", tags)
	}

	fields := make(map[string]any)
	for _, field := range point.FieldList() {
		fields[field.Key] = field.Value
	}
	if fields["submitted_count"] != int64(3) {
		t.Errorf("submitted_count: got %v (%T)", fields["submitted_count"], fields["submitted_count"])
	}
}
