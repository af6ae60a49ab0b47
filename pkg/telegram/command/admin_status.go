package command

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

type adminStatus struct {
	authenticator Authenticator
	counter       SettingsCounter
	outCh         chan<- domain.Response
}

func NewAdminStatus(authenticator Authenticator, counter SettingsCounter, outCh chan<- domain.Response) *adminStatus {
	return &adminStatus{authenticator: authenticator, counter: counter, outCh: outCh}
}

func (a *adminStatus) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "adminstatus")
}

func (a *adminStatus) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	if !a.authenticator.IsAdmin(update.Message.From.ID) {
		a.outCh <- domain.Response{ChatID: chatID, Text: notAllowedReply}
		return
	}

	countText := "(unknown)"
	if count, err := a.counter.Count(ctx); err == nil {
		countText = fmt.Sprint(count)
	}

	a.outCh <- domain.Response{
		ChatID: chatID,
		Text:   fmt.Sprintf("Settings backend: %s\nuser_settings records: %s", a.counter.Kind(), countText),
	}
}
