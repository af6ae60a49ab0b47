package command

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

type anLang struct {
	repo  SettingsRepository
	outCh chan<- domain.Response
}

func NewAnLang(repo SettingsRepository, outCh chan<- domain.Response) *anLang {
	return &anLang{repo: repo, outCh: outCh}
}

func (a *anLang) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "anlang")
}

func (a *anLang) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	code := strings.TrimSpace(update.Message.CommandArguments())
	if code == "" {
		a.outCh <- domain.Response{ChatID: chatID, Text: "Usage: /anlang <code> (e.g. en, vi, ja)"}
		return
	}
	// Only the first token counts.
	code = strings.Fields(code)[0]

	settings, err := a.repo.Get(ctx, chatID)
	if err != nil {
		a.outCh <- domain.Response{ChatID: chatID, Text: "Failed to fetch settings.", Err: err}
		return
	}

	settings.TI.Language = code

	if err := a.repo.Save(ctx, settings); err != nil {
		a.outCh <- domain.Response{ChatID: chatID, Text: "Failed to save settings.", Err: err}
		return
	}

	a.outCh <- domain.Response{ChatID: chatID, Text: fmt.Sprintf("analysis language set to %s", code)}
}
