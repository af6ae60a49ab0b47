package command

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

const notAllowedReply = "Not allowed."

type admin struct {
	authenticator Authenticator
	outCh         chan<- domain.Response
}

func NewAdmin(authenticator Authenticator, outCh chan<- domain.Response) *admin {
	return &admin{authenticator: authenticator, outCh: outCh}
}

func (a *admin) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "admin")
}

func (a *admin) Handle(_ context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	if !a.authenticator.IsAdmin(update.Message.From.ID) {
		a.outCh <- domain.Response{ChatID: chatID, Text: notAllowedReply}
		return
	}

	a.outCh <- domain.Response{
		ChatID: chatID,
		Text: "Admin commands:\n" +
			"/adminstatus — backend type and record count\n" +
			"/adminget [chat_id] — show stored settings\n" +
			"/adminset <chat_id> <stt|ti|ui>.<field> <value> — update a setting",
	}
}
