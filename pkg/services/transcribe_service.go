package services

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/deepgram"
	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
	"github.com/dskvich/deepgram-telegram-bot/pkg/i18n"
)

const fallbackMimeType = "audio/ogg"

type FileDownloader interface {
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}

type ChatActionSender interface {
	SendChatAction(ctx context.Context, chatID int64, action string)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string, opts domain.SpeechSettings) (string, error)
}

type SettingsProvider interface {
	Get(ctx context.Context, chatID int64) (domain.UserSettings, error)
}

type transcribeService struct {
	downloader  FileDownloader
	actions     ChatActionSender
	transcriber Transcriber
	settings    SettingsProvider
	responseCh  chan<- domain.Response
}

func NewTranscribeService(
	downloader FileDownloader,
	actions ChatActionSender,
	transcriber Transcriber,
	settings SettingsProvider,
	responseCh chan<- domain.Response,
) *transcribeService {
	return &transcribeService{
		downloader:  downloader,
		actions:     actions,
		transcriber: transcriber,
		settings:    settings,
		responseCh:  responseCh,
	}
}

// Transcribe downloads an audio attachment, sends it to the vendor with the
// chat's speech settings, and replies with the transcript as a .txt document.
func (s *transcribeService) Transcribe(ctx context.Context, chatID int64, messageID int, attachment domain.Attachment) {
	settings, err := s.settings.Get(ctx, chatID)
	if err != nil {
		settings = domain.DefaultSettings(chatID)
	}
	lang := settings.UILanguage

	s.actions.SendChatAction(ctx, chatID, tgbotapi.ChatTyping)
	s.responseCh <- domain.Response{ChatID: chatID, Text: i18n.Message(lang, "transcribing")}

	audio, err := s.downloader.DownloadFile(ctx, attachment.FileID)
	if err != nil {
		s.responseCh <- domain.Response{
			ChatID:           chatID,
			ReplyToMessageID: messageID,
			Text:             i18n.Message(lang, "couldnt_download"),
			Err:              fmt.Errorf("downloading audio file: %w", err),
		}
		return
	}

	opts := speechOptions(settings.Speech)

	text, err := s.transcriber.Transcribe(ctx, audio, mimeType(attachment), opts)
	if err != nil {
		s.responseCh <- transcribeFailure(chatID, messageID, lang, opts, err)
		return
	}

	text = strings.TrimSpace(text)
	if text == "" {
		s.responseCh <- domain.Response{
			ChatID:           chatID,
			ReplyToMessageID: messageID,
			Text:             i18n.Message(lang, "transcription_empty"),
		}
		return
	}

	s.actions.SendChatAction(ctx, chatID, tgbotapi.ChatUploadDocument)
	s.responseCh <- domain.Response{
		ChatID:           chatID,
		ReplyToMessageID: messageID,
		File: &domain.File{
			Name:    transcriptFileName(attachment.FileName),
			Caption: i18n.Message(lang, "transcription_ready"),
			Data:    []byte(text),
		},
	}
}

// speechOptions applies the Vietnamese default: Deepgram serves vi only on
// nova-2, so an unset model is filled in rather than 400ing.
func speechOptions(opts domain.SpeechSettings) domain.SpeechSettings {
	if !opts.DetectLanguage && opts.Model == "" {
		if opts.Language == "vi" || opts.Language == "vi-VN" {
			opts.Model = "nova-2"
		}
	}
	return opts
}

func transcribeFailure(chatID int64, messageID int, lang string, opts domain.SpeechSettings, err error) domain.Response {
	key := "transcribe_failed"
	if deepgram.IsBadRequest(err) && !opts.DetectLanguage {
		key = "language_model_quirk"
	}
	return domain.Response{
		ChatID:           chatID,
		ReplyToMessageID: messageID,
		Text:             i18n.Message(lang, key),
		Err:              fmt.Errorf("transcribing audio: %w", err),
	}
}

func mimeType(attachment domain.Attachment) string {
	if attachment.MimeType != "" {
		return attachment.MimeType
	}
	if t := mime.TypeByExtension(filepath.Ext(attachment.FileName)); t != "" {
		return t
	}
	return fallbackMimeType
}

func transcriptFileName(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if base == "" || base == "." {
		base = "transcription"
	}
	return base + ".txt"
}
