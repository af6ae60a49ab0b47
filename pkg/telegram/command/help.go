package command

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
	"github.com/dskvich/deepgram-telegram-bot/pkg/i18n"
)

type help struct {
	repo  SettingsRepository
	outCh chan<- domain.Response
}

func NewHelp(repo SettingsRepository, outCh chan<- domain.Response) *help {
	return &help{repo: repo, outCh: outCh}
}

func (h *help) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "help")
}

func (h *help) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	h.outCh <- domain.Response{
		ChatID: chatID,
		Text:   i18n.Message(uiLanguage(ctx, h.repo, chatID), "help_message"),
	}
}
