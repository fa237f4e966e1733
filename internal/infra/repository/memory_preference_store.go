package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
)

// MemoryPreferenceStore keeps the encoded record in process memory. Nothing
// survives a restart, so it only backs tests and embedders that supply their
// own persistence.
type MemoryPreferenceStore struct {
	mu   sync.RWMutex
	data []byte
}

func NewMemoryPreferenceStore() *MemoryPreferenceStore {
	return &MemoryPreferenceStore{}
}

func (s *MemoryPreferenceStore) GetPreferences(ctx context.Context) domain.NotificationPreferences {
	s.mu.RLock()
	data := s.data
	s.mu.RUnlock()

	if data == nil {
		return domain.DefaultPreferences()
	}

	prefs, err := decodePreferences(data)
	if err != nil {
		slog.WarnContext(ctx, "stored preferences are unreadable, using defaults",
			slog.String("error", err.Error()),
		)
	}
	return prefs
}

func (s *MemoryPreferenceStore) SavePreferences(ctx context.Context, prefs domain.NotificationPreferences) {
	data, err := json.Marshal(newPreferenceRecord(prefs))
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode preferences",
			slog.String("error", err.Error()),
		)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = data
}
