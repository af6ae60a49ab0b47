package command

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

type analyze struct {
	repo     SettingsRepository
	analyzer TextAnalyzer
	outCh    chan<- domain.Response
}

func NewAnalyze(repo SettingsRepository, analyzer TextAnalyzer, outCh chan<- domain.Response) *analyze {
	return &analyze{repo: repo, analyzer: analyzer, outCh: outCh}
}

func (a *analyze) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "analyze")
}

func (a *analyze) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	text := strings.TrimSpace(update.Message.CommandArguments())
	if text == "" {
		a.outCh <- domain.Response{
			ChatID: chatID,
			Text:   "Usage: /analyze <text> or upload a .txt/.md/.srt/.vtt file",
		}
		return
	}

	a.analyzer.AnalyzeText(ctx, chatID, update.Message.MessageID, text)
}
