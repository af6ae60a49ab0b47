package command

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

type status struct {
	repo  SettingsRepository
	outCh chan<- domain.Response
}

func NewStatus(repo SettingsRepository, outCh chan<- domain.Response) *status {
	return &status{repo: repo, outCh: outCh}
}

func (s *status) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "status")
}

func (s *status) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	settings, err := s.repo.Get(ctx, chatID)
	if err != nil {
		s.outCh <- domain.Response{ChatID: chatID, Text: "Failed to fetch settings.", Err: err}
		return
	}

	s.outCh <- domain.Response{
		ChatID: chatID,
		Text:   FormatSpeechSettings(settings.Speech),
	}
}

// FormatSpeechSettings renders the /status reply.
func FormatSpeechSettings(speech domain.SpeechSettings) string {
	model := speech.Model
	if model == "" {
		model = "(default)"
	}
	return fmt.Sprintf("language: %s\ndetect_language: %t\nmodel: %s",
		speech.Language, speech.DetectLanguage, model)
}
