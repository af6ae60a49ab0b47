package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/deepgram"
	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
	"github.com/dskvich/deepgram-telegram-bot/pkg/i18n"
)

type Analyzer interface {
	Analyze(ctx context.Context, text string, opts domain.TISettings) (*deepgram.Analysis, error)
}

type analyzeService struct {
	downloader FileDownloader
	actions    ChatActionSender
	analyzer   Analyzer
	settings   SettingsProvider
	responseCh chan<- domain.Response
}

func NewAnalyzeService(
	downloader FileDownloader,
	actions ChatActionSender,
	analyzer Analyzer,
	settings SettingsProvider,
	responseCh chan<- domain.Response,
) *analyzeService {
	return &analyzeService{
		downloader: downloader,
		actions:    actions,
		analyzer:   analyzer,
		settings:   settings,
		responseCh: responseCh,
	}
}

// AnalyzeText runs text intelligence over literal text with the chat's TI
// settings and replies with a sectioned report.
func (s *analyzeService) AnalyzeText(ctx context.Context, chatID int64, messageID int, text string) {
	settings, err := s.settings.Get(ctx, chatID)
	if err != nil {
		settings = domain.DefaultSettings(chatID)
	}

	s.actions.SendChatAction(ctx, chatID, tgbotapi.ChatTyping)
	s.responseCh <- domain.Response{ChatID: chatID, Text: i18n.Message(settings.UILanguage, "analyzing_text")}

	s.analyze(ctx, chatID, messageID, text, settings)
}

// AnalyzeDocument downloads a text attachment and analyzes its contents.
func (s *analyzeService) AnalyzeDocument(ctx context.Context, chatID int64, messageID int, attachment domain.Attachment) {
	settings, err := s.settings.Get(ctx, chatID)
	if err != nil {
		settings = domain.DefaultSettings(chatID)
	}
	lang := settings.UILanguage

	data, err := s.downloader.DownloadFile(ctx, attachment.FileID)
	if err != nil {
		s.responseCh <- domain.Response{
			ChatID:           chatID,
			ReplyToMessageID: messageID,
			Text:             i18n.Message(lang, "couldnt_download"),
			Err:              fmt.Errorf("downloading text file: %w", err),
		}
		return
	}

	s.actions.SendChatAction(ctx, chatID, tgbotapi.ChatTyping)
	s.responseCh <- domain.Response{ChatID: chatID, Text: i18n.Message(lang, "analyzing_file")}

	s.analyze(ctx, chatID, messageID, decodeText(data), settings)
}

func (s *analyzeService) analyze(ctx context.Context, chatID int64, messageID int, text string, settings domain.UserSettings) {
	analysis, err := s.analyzer.Analyze(ctx, text, settings.TI)
	if err != nil {
		s.responseCh <- domain.Response{
			ChatID:           chatID,
			ReplyToMessageID: messageID,
			Text:             i18n.Message(settings.UILanguage, "analyze_failed"),
			Err:              fmt.Errorf("analyzing text: %w", err),
		}
		return
	}

	s.responseCh <- domain.Response{
		ChatID:           chatID,
		ReplyToMessageID: messageID,
		Text:             deepgram.FormatAnalysis(analysis, settings.TI),
	}
}

// decodeText treats the payload as UTF-8 and falls back to Latin-1 for files
// that are not valid UTF-8.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
