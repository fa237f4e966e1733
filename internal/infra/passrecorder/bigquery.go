//go:build gcloud

package passrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt     time.Time `bigquery:"recorded_at"`
	PassTime       time.Time `bigquery:"pass_time"`
	RunID          string    `bigquery:"run_id"`
	Trigger        string    `bigquery:"trigger"`
	Category       string    `bigquery:"category"`
	EventCount     int64     `bigquery:"event_count"`
	CandidateCount int64     `bigquery:"candidate_count"`
	SubmittedCount int64     `bigquery:"submitted_count"`
	PastCount      int64     `bigquery:"past_count"`
	DisabledCount  int64     `bigquery:"disabled_count"`
	FailedCount    int64     `bigquery:"failed_count"`
	CancelFailed   bool      `bigquery:"cancel_failed"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.PassRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "pass result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, pass result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, pass result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	slog.InfoContext(ctx, "pass result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter(),
	}, nil
}

func (r *bigQueryRecorder) RecordPass(ctx context.Context, records []domain.PassRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]*bigQueryRecord, 0, len(records))
	for _, record := range records {
		rows = append(rows, &bigQueryRecord{
			RecordedAt:     now,
			PassTime:       record.PassTime,
			RunID:          record.RunID,
			Trigger:        record.Trigger,
			Category:       record.Category,
			EventCount:     int64(record.EventCount),
			CandidateCount: int64(record.CandidateCount),
			SubmittedCount: int64(record.SubmittedCount),
			PastCount:      int64(record.PastCount),
			DisabledCount:  int64(record.DisabledCount),
			FailedCount:    int64(record.FailedCount),
			CancelFailed:   record.CancelledFailed,
		})
	}

	if err := r.inserter.Put(ctx, rows); err != nil {
		slog.WarnContext(ctx, "failed to insert pass records to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
