package repository

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
	"github.com/KasumiMercury/primind-travel-reminders/internal/testutil"
)

func TestGetPreferencesSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewPreferenceRepository(client)

	tests := []struct {
		name     string
		stored   string
		expected domain.NotificationPreferences
	}{
		{
			name:     "absent record returns all enabled",
			stored:   "",
			expected: domain.DefaultPreferences(),
		},
		{
			name:     "full record",
			stored:   `{"trips":false,"tasks":true,"leads":false}`,
			expected: domain.NotificationPreferences{Trips: false, Tasks: true, Leads: false},
		},
		{
			name:     "missing field keeps default",
			stored:   `{"trips":false}`,
			expected: domain.NotificationPreferences{Trips: false, Tasks: true, Leads: true},
		},
		{
			name:     "unparseable record returns defaults",
			stored:   `{"trips":`,
			expected: domain.DefaultPreferences(),
		},
		{
			name:     "wrong type returns defaults",
			stored:   `{"trips":"no"}`,
			expected: domain.DefaultPreferences(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := client.Del(ctx, preferencesKey).Err(); err != nil {
				t.Fatalf("failed to reset test data: %v", err)
			}
			if tt.stored != "" {
				if err := client.Set(ctx, preferencesKey, tt.stored, 0).Err(); err != nil {
					t.Fatalf("failed to set up test data: %v", err)
				}
			}

			got := repo.GetPreferences(ctx)
			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestSavePreferencesOverwrites(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewPreferenceRepository(client)

	repo.SavePreferences(ctx, domain.NotificationPreferences{Trips: false, Tasks: false, Leads: false})
	repo.SavePreferences(ctx, domain.NotificationPreferences{Trips: true, Tasks: false, Leads: true})

	got := repo.GetPreferences(ctx)
	want := domain.NotificationPreferences{Trips: true, Tasks: false, Leads: true}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	raw, err := client.Get(ctx, preferencesKey).Result()
	if err != nil {
		t.Fatalf("failed to read stored record: %v", err)
	}
	if raw != `{"trips":true,"tasks":false,"leads":true}` {
		t.Errorf("unexpected stored record: %s", raw)
	}
}

func TestPreferencesUnavailableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	repo := NewPreferenceRepository(client)
	ctx := context.Background()

	// Write failures are swallowed; reads fall back to defaults.
	repo.SavePreferences(ctx, domain.NotificationPreferences{})

	if got := repo.GetPreferences(ctx); got != domain.DefaultPreferences() {
		t.Errorf("expected defaults, got %+v", got)
	}
}
