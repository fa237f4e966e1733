package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
)

func TestMemoryPreferenceStore(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(s *MemoryPreferenceStore)
		expected domain.NotificationPreferences
	}{
		{
			name:     "empty store returns defaults",
			setup:    func(s *MemoryPreferenceStore) {},
			expected: domain.DefaultPreferences(),
		},
		{
			name: "saved value is returned",
			setup: func(s *MemoryPreferenceStore) {
				s.SavePreferences(ctx, domain.NotificationPreferences{Trips: true})
			},
			expected: domain.NotificationPreferences{Trips: true},
		},
		{
			name: "corrupt record returns defaults",
			setup: func(s *MemoryPreferenceStore) {
				s.setRaw([]byte("not json"))
			},
			expected: domain.DefaultPreferences(),
		},
		{
			name: "partial record keeps defaults",
			setup: func(s *MemoryPreferenceStore) {
				s.setRaw([]byte(`{"leads":false}`))
			},
			expected: domain.NotificationPreferences{Trips: true, Tasks: true, Leads: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryPreferenceStore()
			tt.setup(store)

			if got := store.GetPreferences(ctx); got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestMemoryPreferenceStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryPreferenceStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(enabled bool) {
			defer wg.Done()
			store.SavePreferences(ctx, domain.NotificationPreferences{Trips: enabled, Tasks: enabled, Leads: enabled})
		}(i%2 == 0)
		go func() {
			defer wg.Done()
			prefs := store.GetPreferences(ctx)
			if prefs.Trips != prefs.Tasks || prefs.Tasks != prefs.Leads {
				t.Errorf("observed torn write: %+v", prefs)
			}
		}()
	}
	wg.Wait()
}

// setRaw replaces the stored record with arbitrary bytes.
func (s *MemoryPreferenceStore) setRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = data
}
