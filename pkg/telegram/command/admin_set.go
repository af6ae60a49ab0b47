package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

const adminSetUsage = "Usage: /adminset <chat_id> <stt|ti|ui>.<field> <value>"

type adminSet struct {
	authenticator Authenticator
	repo          SettingsRepository
	outCh         chan<- domain.Response
}

func NewAdminSet(authenticator Authenticator, repo SettingsRepository, outCh chan<- domain.Response) *adminSet {
	return &adminSet{authenticator: authenticator, repo: repo, outCh: outCh}
}

func (a *adminSet) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "adminset")
}

// Handle mutates a single field of an arbitrary chat's settings, with the
// same validation as the per-chat setters.
func (a *adminSet) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	if !a.authenticator.IsAdmin(update.Message.From.ID) {
		a.outCh <- domain.Response{ChatID: chatID, Text: notAllowedReply}
		return
	}

	parts := strings.Fields(update.Message.CommandArguments())
	if len(parts) < 3 {
		a.outCh <- domain.Response{ChatID: chatID, Text: adminSetUsage}
		return
	}

	targetID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		a.outCh <- domain.Response{ChatID: chatID, Text: "Invalid chat_id"}
		return
	}

	field, err := domain.ParseField(parts[1])
	if err != nil {
		a.outCh <- domain.Response{ChatID: chatID, Text: adminSetUsage}
		return
	}

	value := strings.Join(parts[2:], " ")

	settings, err := a.repo.Get(ctx, targetID)
	if err != nil {
		a.outCh <- domain.Response{ChatID: chatID, Text: "Failed to fetch settings.", Err: err}
		return
	}

	if err := field.Apply(&settings, value); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			a.outCh <- domain.Response{ChatID: chatID, Text: fmt.Sprintf("Invalid value for %s: %s", field, value)}
			return
		}
		a.outCh <- domain.Response{ChatID: chatID, Text: "Failed to update setting.", Err: err}
		return
	}

	if err := a.repo.Save(ctx, settings); err != nil {
		a.outCh <- domain.Response{ChatID: chatID, Text: "Failed to update setting.", Err: err}
		return
	}

	a.outCh <- domain.Response{ChatID: chatID, Text: fmt.Sprintf("Updated %s for chat %d.", field, targetID)}
}
