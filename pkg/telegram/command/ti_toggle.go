package command

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

// tiToggle backs the three boolean text intelligence commands: /topics,
// /intents and /sentiment.
type tiToggle struct {
	name  string
	field domain.Field
	repo  SettingsRepository
	outCh chan<- domain.Response
}

func NewTopics(repo SettingsRepository, outCh chan<- domain.Response) *tiToggle {
	return &tiToggle{name: "topics", field: domain.FieldTITopics, repo: repo, outCh: outCh}
}

func NewIntents(repo SettingsRepository, outCh chan<- domain.Response) *tiToggle {
	return &tiToggle{name: "intents", field: domain.FieldTIIntents, repo: repo, outCh: outCh}
}

func NewSentiment(repo SettingsRepository, outCh chan<- domain.Response) *tiToggle {
	return &tiToggle{name: "sentiment", field: domain.FieldTISentiment, repo: repo, outCh: outCh}
}

func (t *tiToggle) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, t.name)
}

func (t *tiToggle) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	arg := update.Message.CommandArguments()

	settings, err := t.repo.Get(ctx, chatID)
	if err != nil {
		t.outCh <- domain.Response{ChatID: chatID, Text: "Failed to fetch settings.", Err: err}
		return
	}

	if err := t.field.Apply(&settings, arg); err != nil {
		t.outCh <- domain.Response{ChatID: chatID, Text: fmt.Sprintf("Usage: /%s <on|off>", t.name)}
		return
	}

	if err := t.repo.Save(ctx, settings); err != nil {
		t.outCh <- domain.Response{ChatID: chatID, Text: "Failed to save settings.", Err: err}
		return
	}

	value, _ := domain.ParseBool(strings.TrimSpace(arg))
	t.outCh <- domain.Response{ChatID: chatID, Text: fmt.Sprintf("%s set to %t", t.name, value)}
}
