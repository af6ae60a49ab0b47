package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

type adminGet struct {
	authenticator Authenticator
	repo          SettingsRepository
	outCh         chan<- domain.Response
}

func NewAdminGet(authenticator Authenticator, repo SettingsRepository, outCh chan<- domain.Response) *adminGet {
	return &adminGet{authenticator: authenticator, repo: repo, outCh: outCh}
}

func (a *adminGet) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "adminget")
}

func (a *adminGet) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	if !a.authenticator.IsAdmin(update.Message.From.ID) {
		a.outCh <- domain.Response{ChatID: chatID, Text: notAllowedReply}
		return
	}

	targetID := chatID
	if arg := strings.TrimSpace(update.Message.CommandArguments()); arg != "" {
		parsed, err := strconv.ParseInt(strings.Fields(arg)[0], 10, 64)
		if err != nil {
			a.outCh <- domain.Response{ChatID: chatID, Text: "Usage: /adminget [chat_id]"}
			return
		}
		targetID = parsed
	}

	settings, err := a.repo.Get(ctx, targetID)
	if err != nil {
		a.outCh <- domain.Response{ChatID: chatID, Text: "Failed to fetch settings.", Err: err}
		return
	}

	a.outCh <- domain.Response{ChatID: chatID, Text: formatAdminSettings(settings)}
}

func formatAdminSettings(s domain.UserSettings) string {
	model := s.Speech.Model
	if model == "" {
		model = "(default)"
	}
	return fmt.Sprintf(
		"chat_id: %d\n"+
			"stt.language: %s\n"+
			"stt.detect_language: %t\n"+
			"stt.model: %s\n"+
			"ti.language: %s\n"+
			"ti.summarize: %s\n"+
			"ti.topics: %t\n"+
			"ti.intents: %t\n"+
			"ti.sentiment: %t\n"+
			"ui.language: %s",
		s.ChatID,
		s.Speech.Language, s.Speech.DetectLanguage, model,
		s.TI.Language, s.TI.Summarize, s.TI.Topics, s.TI.Intents, s.TI.Sentiment,
		s.UILanguage,
	)
}
