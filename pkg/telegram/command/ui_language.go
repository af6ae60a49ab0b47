package command

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
	"github.com/dskvich/deepgram-telegram-bot/pkg/i18n"
)

// uiLanguageCmd switches the interface language only; vendor requests are
// unaffected.
type uiLanguageCmd struct {
	repo  SettingsRepository
	outCh chan<- domain.Response
}

func NewUILanguage(repo SettingsRepository, outCh chan<- domain.Response) *uiLanguageCmd {
	return &uiLanguageCmd{repo: repo, outCh: outCh}
}

func (u *uiLanguageCmd) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "language")
}

func (u *uiLanguageCmd) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	current := uiLanguage(ctx, u.repo, chatID)

	parsed, err := domain.ParseUILanguage(update.Message.CommandArguments())
	if err != nil {
		u.outCh <- domain.Response{ChatID: chatID, Text: i18n.Message(current, "language_usage")}
		return
	}

	settings, err := u.repo.Get(ctx, chatID)
	if err != nil {
		u.outCh <- domain.Response{ChatID: chatID, Text: "Failed to fetch settings.", Err: err}
		return
	}

	settings.UILanguage = parsed

	if err := u.repo.Save(ctx, settings); err != nil {
		u.outCh <- domain.Response{ChatID: chatID, Text: "Failed to save settings.", Err: err}
		return
	}

	replyKey := "ui_lang_set_en"
	if parsed == domain.UILanguageVI {
		replyKey = "ui_lang_set_vi"
	}
	u.outCh <- domain.Response{ChatID: chatID, Text: i18n.Message(parsed, replyKey)}
}
