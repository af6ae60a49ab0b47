package command

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

type summarize struct {
	repo  SettingsRepository
	outCh chan<- domain.Response
}

func NewSummarize(repo SettingsRepository, outCh chan<- domain.Response) *summarize {
	return &summarize{repo: repo, outCh: outCh}
}

func (s *summarize) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "summarize")
}

func (s *summarize) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	settings, err := s.repo.Get(ctx, chatID)
	if err != nil {
		s.outCh <- domain.Response{ChatID: chatID, Text: "Failed to fetch settings.", Err: err}
		return
	}

	if err := domain.FieldTISummarize.Apply(&settings, update.Message.CommandArguments()); err != nil {
		s.outCh <- domain.Response{ChatID: chatID, Text: "Usage: /summarize <off|v2>"}
		return
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		s.outCh <- domain.Response{ChatID: chatID, Text: "Failed to save settings.", Err: err}
		return
	}

	s.outCh <- domain.Response{ChatID: chatID, Text: fmt.Sprintf("summarize set to %s", settings.TI.Summarize)}
}
