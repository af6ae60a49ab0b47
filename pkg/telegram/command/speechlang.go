package command

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
	"github.com/dskvich/deepgram-telegram-bot/pkg/i18n"
)

// speechlang is the friendly-name variant of /lang: it accepts language
// names, maps them onto concrete codes, and supports auto-detection.
type speechlang struct {
	repo  SettingsRepository
	outCh chan<- domain.Response
}

func NewSpeechLang(repo SettingsRepository, outCh chan<- domain.Response) *speechlang {
	return &speechlang{repo: repo, outCh: outCh}
}

func (s *speechlang) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "speechlang")
}

func (s *speechlang) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	arg := strings.TrimSpace(update.Message.CommandArguments())
	lang := uiLanguage(ctx, s.repo, chatID)

	if arg == "" {
		s.outCh <- domain.Response{ChatID: chatID, Text: i18n.Message(lang, "speechlang_usage")}
		return
	}

	settings, err := s.repo.Get(ctx, chatID)
	if err != nil {
		s.outCh <- domain.Response{ChatID: chatID, Text: "Failed to fetch settings.", Err: err}
		return
	}

	var replyKey string
	switch {
	case strings.EqualFold(arg, "auto") || strings.EqualFold(arg, "detect"):
		settings.Speech.DetectLanguage = true
		replyKey = "speechlang_set_auto"
	default:
		parsed, err := domain.ParseUILanguage(arg)
		if err != nil {
			s.outCh <- domain.Response{ChatID: chatID, Text: i18n.Message(lang, "speechlang_usage")}
			return
		}
		settings.Speech.DetectLanguage = false
		if parsed == domain.UILanguageVI {
			settings.Speech.Language = "vi"
			replyKey = "speechlang_set_vi"
		} else {
			settings.Speech.Language = "en-US"
			replyKey = "speechlang_set_en"
		}
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		s.outCh <- domain.Response{ChatID: chatID, Text: "Failed to save settings.", Err: err}
		return
	}

	s.outCh <- domain.Response{ChatID: chatID, Text: i18n.Message(lang, replyKey)}
}
