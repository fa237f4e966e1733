package domain

import "context"

//go:generate mockgen -source=schedule_ledger.go -destination=schedule_ledger_mock.go -package=domain

// ScheduleLedger remembers which delayed tasks this service registered, keyed
// by notification id, so they can be cancelled on the next pass.
type ScheduleLedger interface {
	Record(ctx context.Context, notificationID, taskName string) error
	Entries(ctx context.Context) (map[string]string, error)
	Forget(ctx context.Context, notificationIDs ...string) error
}
