package telegram

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
	"github.com/dskvich/deepgram-telegram-bot/pkg/i18n"
)

type CommandDispatcher interface {
	Handle(ctx context.Context, update *tgbotapi.Update)
}

type TranscribeService interface {
	Transcribe(ctx context.Context, chatID int64, messageID int, attachment domain.Attachment)
}

type AnalyzeService interface {
	AnalyzeDocument(ctx context.Context, chatID int64, messageID int, attachment domain.Attachment)
}

type SettingsReader interface {
	Get(ctx context.Context, chatID int64) (domain.UserSettings, error)
}

type handler struct {
	commands   CommandDispatcher
	transcribe TranscribeService
	analyze    AnalyzeService
	settings   SettingsReader
	responseCh chan<- domain.Response
}

func NewHandler(
	commands CommandDispatcher,
	transcribe TranscribeService,
	analyze AnalyzeService,
	settings SettingsReader,
	responseCh chan<- domain.Response,
) *handler {
	return &handler{
		commands:   commands,
		transcribe: transcribe,
		analyze:    analyze,
		settings:   settings,
		responseCh: responseCh,
	}
}

// HandleUpdate routes one update: slash commands to the dispatcher, uploads
// to the matching vendor flow. Plain text without a command is ignored.
func (h *handler) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	message := update.Message
	if message == nil {
		return
	}

	if message.IsCommand() {
		h.commands.Handle(ctx, update)
		return
	}

	chatID := message.Chat.ID
	attachment := ClassifyMessage(message)

	switch attachment.Kind {
	case domain.AttachmentAudio:
		h.transcribe.Transcribe(ctx, chatID, message.MessageID, attachment)
	case domain.AttachmentText:
		h.analyze.AnalyzeDocument(ctx, chatID, message.MessageID, attachment)
	case domain.AttachmentUnsupported:
		slog.InfoContext(ctx, "rejecting unsupported upload",
			"chatID", chatID, "fileName", attachment.FileName, "mimeType", attachment.MimeType)
		h.responseCh <- domain.Response{
			ChatID:           chatID,
			ReplyToMessageID: message.MessageID,
			Text:             i18n.Message(h.uiLanguage(ctx, chatID), "unsupported_upload"),
		}
	}
}

func (h *handler) uiLanguage(ctx context.Context, chatID int64) string {
	settings, err := h.settings.Get(ctx, chatID)
	if err != nil {
		return domain.UILanguageEN
	}
	return settings.UILanguage
}
