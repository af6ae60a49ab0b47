package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

type settingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository returns a Postgres-backed settings store.
func NewSettingsRepository(db *sql.DB) *settingsRepository {
	return &settingsRepository{db: db}
}

func (s *settingsRepository) Kind() string { return "postgres" }

func (s *settingsRepository) Save(ctx context.Context, settings domain.UserSettings) error {
	const query = `
		INSERT INTO user_settings (
			chat_id, speech_language, detect_language, speech_model,
			ti_language, summarize, topics, intents, sentiment, ui_language
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (chat_id)
		DO UPDATE SET
			speech_language = EXCLUDED.speech_language,
			detect_language = EXCLUDED.detect_language,
			speech_model    = EXCLUDED.speech_model,
			ti_language     = EXCLUDED.ti_language,
			summarize       = EXCLUDED.summarize,
			topics          = EXCLUDED.topics,
			intents         = EXCLUDED.intents,
			sentiment       = EXCLUDED.sentiment,
			ui_language     = EXCLUDED.ui_language,
			updated_at      = now()
	`

	_, err := s.db.ExecContext(ctx, query,
		settings.ChatID,
		settings.Speech.Language,
		settings.Speech.DetectLanguage,
		settings.Speech.Model,
		settings.TI.Language,
		settings.TI.Summarize,
		settings.TI.Topics,
		settings.TI.Intents,
		settings.TI.Sentiment,
		settings.UILanguage,
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	return nil
}

// Get returns the stored settings for chatID, or the documented defaults when
// no record exists yet.
func (s *settingsRepository) Get(ctx context.Context, chatID int64) (domain.UserSettings, error) {
	const query = `
		SELECT chat_id, speech_language, detect_language, speech_model,
		       ti_language, summarize, topics, intents, sentiment, ui_language
		FROM user_settings
		WHERE chat_id = $1
	`

	var settings domain.UserSettings
	err := s.db.QueryRowContext(ctx, query, chatID).Scan(
		&settings.ChatID,
		&settings.Speech.Language,
		&settings.Speech.DetectLanguage,
		&settings.Speech.Model,
		&settings.TI.Language,
		&settings.TI.Summarize,
		&settings.TI.Topics,
		&settings.TI.Intents,
		&settings.TI.Sentiment,
		&settings.UILanguage,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultSettings(chatID), nil
		}
		return domain.UserSettings{}, fmt.Errorf("fetching settings by chatID: %w", err)
	}

	return settings, nil
}

func (s *settingsRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT count(*) FROM user_settings").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting settings rows: %w", err)
	}
	return count, nil
}
