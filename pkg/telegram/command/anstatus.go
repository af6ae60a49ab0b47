package command

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

type anStatus struct {
	repo  SettingsRepository
	outCh chan<- domain.Response
}

func NewAnStatus(repo SettingsRepository, outCh chan<- domain.Response) *anStatus {
	return &anStatus{repo: repo, outCh: outCh}
}

func (a *anStatus) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "anstatus")
}

func (a *anStatus) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	settings, err := a.repo.Get(ctx, chatID)
	if err != nil {
		a.outCh <- domain.Response{ChatID: chatID, Text: "Failed to fetch settings.", Err: err}
		return
	}

	a.outCh <- domain.Response{
		ChatID: chatID,
		Text:   FormatTISettings(settings.TI),
	}
}

// FormatTISettings renders the /anstatus reply.
func FormatTISettings(ti domain.TISettings) string {
	return fmt.Sprintf(
		"Text Intelligence settings:\nlanguage: %s\nsummarize: %s\ntopics: %t\nintents: %t\nsentiment: %t",
		ti.Language, ti.Summarize, ti.Topics, ti.Intents, ti.Sentiment)
}
