package domain

import (
	"context"
	"time"
)

// PassRecord summarizes one scheduling pass for a single category.
type PassRecord struct {
	RunID           string
	Trigger         string
	PassTime        time.Time
	Category        string
	EventCount      int
	CandidateCount  int
	SubmittedCount  int
	PastCount       int
	DisabledCount   int
	FailedCount     int
	CancelledFailed bool
}

type PassRecorder interface {
	RecordPass(ctx context.Context, records []PassRecord) error
	Close() error
}
