package command

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

type model struct {
	repo  SettingsRepository
	outCh chan<- domain.Response
}

func NewModel(repo SettingsRepository, outCh chan<- domain.Response) *model {
	return &model{repo: repo, outCh: outCh}
}

func (m *model) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "model")
}

func (m *model) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	name := strings.TrimSpace(update.Message.CommandArguments())

	settings, err := m.repo.Get(ctx, chatID)
	if err != nil {
		m.outCh <- domain.Response{ChatID: chatID, Text: "Failed to fetch settings.", Err: err}
		return
	}

	settings.Speech.Model = name

	if err := m.repo.Save(ctx, settings); err != nil {
		m.outCh <- domain.Response{ChatID: chatID, Text: "Failed to save settings.", Err: err}
		return
	}

	reply := fmt.Sprintf("Model set to %s.", name)
	if name == "" {
		reply = "Model reset to default."
	}
	m.outCh <- domain.Response{ChatID: chatID, Text: reply}
}
