package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
)

const (
	preferencesKey = "reminder:preferences"
)

// preferenceRecord keeps the flags as pointers so a stored record missing a
// category leaves that category at its default.
type preferenceRecord struct {
	Trips *bool `json:"trips,omitempty"`
	Tasks *bool `json:"tasks,omitempty"`
	Leads *bool `json:"leads,omitempty"`
}

func (r preferenceRecord) toDomain() domain.NotificationPreferences {
	prefs := domain.DefaultPreferences()
	if r.Trips != nil {
		prefs.Trips = *r.Trips
	}
	if r.Tasks != nil {
		prefs.Tasks = *r.Tasks
	}
	if r.Leads != nil {
		prefs.Leads = *r.Leads
	}
	return prefs
}

func newPreferenceRecord(prefs domain.NotificationPreferences) preferenceRecord {
	return preferenceRecord{
		Trips: &prefs.Trips,
		Tasks: &prefs.Tasks,
		Leads: &prefs.Leads,
	}
}

// decodePreferences parses a stored record. A parse failure is reported as
// ErrInvalidPreferenceData together with the defaults.
func decodePreferences(data []byte) (domain.NotificationPreferences, error) {
	var record preferenceRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return domain.DefaultPreferences(), ErrInvalidPreferenceData
	}
	return record.toDomain(), nil
}

type preferenceRepository struct {
	client *redis.Client
}

func NewPreferenceRepository(client *redis.Client) domain.PreferenceStore {
	return &preferenceRepository{
		client: client,
	}
}

func (r *preferenceRepository) GetPreferences(ctx context.Context) domain.NotificationPreferences {
	data, err := r.client.Get(ctx, preferencesKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "failed to read preferences, using defaults",
				slog.String("key", preferencesKey),
				slog.String("error", err.Error()),
			)
		}
		return domain.DefaultPreferences()
	}

	prefs, err := decodePreferences(data)
	if err != nil {
		slog.WarnContext(ctx, "stored preferences are unreadable, using defaults",
			slog.String("key", preferencesKey),
			slog.String("error", err.Error()),
		)
	}
	return prefs
}

func (r *preferenceRepository) SavePreferences(ctx context.Context, prefs domain.NotificationPreferences) {
	data, err := json.Marshal(newPreferenceRecord(prefs))
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode preferences",
			slog.String("error", err.Error()),
		)
		return
	}

	if err := r.client.Set(ctx, preferencesKey, data, 0).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to save preferences",
			slog.String("key", preferencesKey),
			slog.String("error", err.Error()),
		)
	}
}
