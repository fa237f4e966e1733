package repository

import (
	"context"
	"testing"

	"github.com/KasumiMercury/primind-travel-reminders/internal/testutil"
)

func TestScheduleLedger(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	ledger := NewScheduleLedger(client)

	entries, err := ledger.Entries(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty ledger, got %v", entries)
	}

	if err := ledger.Record(ctx, "trip:c-1:before", "trip_c-1_before"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := ledger.Record(ctx, "trip:c-1:day", "trip_c-1_day"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	// Re-recording the same id replaces the task name.
	if err := ledger.Record(ctx, "trip:c-1:day", "trip_c-1_day-2"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err = ledger.Entries(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries["trip:c-1:day"] != "trip_c-1_day-2" {
		t.Errorf("expected replaced task name, got %q", entries["trip:c-1:day"])
	}

	if err := ledger.Forget(ctx, "trip:c-1:before", "unknown"); err != nil {
		t.Fatalf("Forget failed: %v", err)
	}
	if err := ledger.Forget(ctx); err != nil {
		t.Fatalf("Forget with no ids failed: %v", err)
	}

	entries, err = ledger.Entries(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := entries["trip:c-1:before"]; ok {
		t.Errorf("expected trip:c-1:before to be forgotten")
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(entries))
	}
}
