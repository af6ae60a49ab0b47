package command

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
	"github.com/dskvich/deepgram-telegram-bot/pkg/i18n"
)

type start struct {
	repo  SettingsRepository
	outCh chan<- domain.Response
}

func NewStart(repo SettingsRepository, outCh chan<- domain.Response) *start {
	return &start{repo: repo, outCh: outCh}
}

func (s *start) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "start")
}

func (s *start) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	s.outCh <- domain.Response{
		ChatID: chatID,
		Text:   i18n.Message(uiLanguage(ctx, s.repo, chatID), "start_message"),
	}
}
