package command

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

type lang struct {
	repo  SettingsRepository
	outCh chan<- domain.Response
}

func NewLang(repo SettingsRepository, outCh chan<- domain.Response) *lang {
	return &lang{repo: repo, outCh: outCh}
}

func (l *lang) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "lang")
}

func (l *lang) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	arg := strings.TrimSpace(update.Message.CommandArguments())

	if arg == "" {
		l.outCh <- domain.Response{ChatID: chatID, Text: "Usage: /lang <code|auto>"}
		return
	}

	settings, err := l.repo.Get(ctx, chatID)
	if err != nil {
		l.outCh <- domain.Response{ChatID: chatID, Text: "Failed to fetch settings.", Err: err}
		return
	}

	var reply string
	if strings.EqualFold(arg, "auto") {
		// Auto replaces any previously fixed code.
		settings.Speech.DetectLanguage = true
		settings.Speech.Language = domain.DefaultSpeechLanguage
		reply = "Language detection enabled."
	} else {
		settings.Speech.Language = arg
		settings.Speech.DetectLanguage = false
		reply = fmt.Sprintf("Language set to %s.", arg)
	}

	if err := l.repo.Save(ctx, settings); err != nil {
		l.outCh <- domain.Response{ChatID: chatID, Text: "Failed to save settings.", Err: err}
		return
	}

	l.outCh <- domain.Response{ChatID: chatID, Text: reply}
}
