package command

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

type detect struct {
	repo  SettingsRepository
	outCh chan<- domain.Response
}

func NewDetect(repo SettingsRepository, outCh chan<- domain.Response) *detect {
	return &detect{repo: repo, outCh: outCh}
}

func (d *detect) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "detect")
}

func (d *detect) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	value, err := domain.ParseBool(update.Message.CommandArguments())
	if err != nil {
		d.outCh <- domain.Response{ChatID: chatID, Text: "Usage: /detect <on|off>"}
		return
	}

	settings, err := d.repo.Get(ctx, chatID)
	if err != nil {
		d.outCh <- domain.Response{ChatID: chatID, Text: "Failed to fetch settings.", Err: err}
		return
	}

	settings.Speech.DetectLanguage = value

	if err := d.repo.Save(ctx, settings); err != nil {
		d.outCh <- domain.Response{ChatID: chatID, Text: "Failed to save settings.", Err: err}
		return
	}

	d.outCh <- domain.Response{ChatID: chatID, Text: fmt.Sprintf("detect_language set to %t", value)}
}
