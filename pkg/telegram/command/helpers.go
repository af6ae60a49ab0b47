package command

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

// isCommand reports whether the update carries the named slash command.
// Matching is case-insensitive and tolerates the @botname suffix.
func isCommand(update *tgbotapi.Update, name string) bool {
	return update.Message != nil &&
		update.Message.IsCommand() &&
		strings.EqualFold(update.Message.Command(), name)
}

// uiLanguage resolves the chat's interface language, defaulting to English
// when the settings cannot be read.
func uiLanguage(ctx context.Context, repo SettingsRepository, chatID int64) string {
	settings, err := repo.Get(ctx, chatID)
	if err != nil {
		return domain.UILanguageEN
	}
	return settings.UILanguage
}
