package command

import (
	"context"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context, chatID int64) (domain.UserSettings, error)
	Save(ctx context.Context, settings domain.UserSettings) error
}

type SettingsCounter interface {
	Count(ctx context.Context) (int, error)
	Kind() string
}

type Authenticator interface {
	IsAdmin(userID int64) bool
}

type TextAnalyzer interface {
	AnalyzeText(ctx context.Context, chatID int64, messageID int, text string)
}
