package repository

import (
	"context"
	"sync"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

// memorySettingsRepository keeps settings in-process. It is the fallback when
// no database is configured or the configured one is unreachable; records do
// not survive restarts.
type memorySettingsRepository struct {
	mu       sync.RWMutex
	settings map[int64]domain.UserSettings
}

func NewMemorySettingsRepository() *memorySettingsRepository {
	return &memorySettingsRepository{
		settings: make(map[int64]domain.UserSettings),
	}
}

func (m *memorySettingsRepository) Kind() string { return "in-memory" }

func (m *memorySettingsRepository) Save(_ context.Context, settings domain.UserSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings[settings.ChatID] = settings
	return nil
}

func (m *memorySettingsRepository) Get(_ context.Context, chatID int64) (domain.UserSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if settings, ok := m.settings[chatID]; ok {
		return settings, nil
	}
	return domain.DefaultSettings(chatID), nil
}

func (m *memorySettingsRepository) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.settings), nil
}
