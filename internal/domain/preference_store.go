package domain

import "context"

//go:generate mockgen -source=preference_store.go -destination=preference_store_mock.go -package=domain

// NotificationPreferences holds the per-category enabled flags.
type NotificationPreferences struct {
	Trips bool `json:"trips"`
	Tasks bool `json:"tasks"`
	Leads bool `json:"leads"`
}

func DefaultPreferences() NotificationPreferences {
	return NotificationPreferences{
		Trips: true,
		Tasks: true,
		Leads: true,
	}
}

func (p NotificationPreferences) Enabled(category Category) bool {
	switch category {
	case CategoryTrip:
		return p.Trips
	case CategoryTask:
		return p.Tasks
	case CategoryLead:
		return p.Leads
	}
	return false
}

// PreferenceStore persists NotificationPreferences. Implementations never
// surface read or write failures; reads fall back to DefaultPreferences.
type PreferenceStore interface {
	GetPreferences(ctx context.Context) NotificationPreferences
	SavePreferences(ctx context.Context, prefs NotificationPreferences)
}
