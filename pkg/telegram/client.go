package telegram

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
	"github.com/dskvich/deepgram-telegram-bot/pkg/logger"
	"github.com/dskvich/deepgram-telegram-bot/pkg/render"
)

type client struct {
	token     string
	bot       *tgbotapi.BotAPI
	updatesCh tgbotapi.UpdatesChannel
}

func NewClient(token string) (*client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating bot api instance: %w", err)
	}

	slog.Info("authorized on telegram", "account", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	return &client{
		token:     token,
		bot:       bot,
		updatesCh: bot.GetUpdatesChan(u),
	}, nil
}

func (c *client) GetUpdates() tgbotapi.UpdatesChannel {
	return c.updatesCh
}

// SendResponse delivers a response to its chat. A response with a File is
// sent as a document upload, otherwise Text is rendered to Telegram HTML.
func (c *client) SendResponse(ctx context.Context, response *domain.Response) {
	if response.Err != nil {
		slog.ErrorContext(ctx, "handling update failed", "chatID", response.ChatID, logger.Err(response.Err))
	}
	if response.Text == "" && response.File == nil {
		return
	}

	if response.File != nil {
		doc := tgbotapi.NewDocument(response.ChatID, tgbotapi.FileBytes{
			Name:  response.File.Name,
			Bytes: response.File.Data,
		})
		doc.Caption = response.File.Caption
		doc.ReplyToMessageID = response.ReplyToMessageID
		if _, err := c.bot.Send(doc); err != nil {
			slog.ErrorContext(ctx, "sending document", "chatID", response.ChatID, logger.Err(err))
		}
		return
	}

	msg := tgbotapi.NewMessage(response.ChatID, render.ToHTML(response.Text))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyToMessageID = response.ReplyToMessageID
	if _, err := c.bot.Send(msg); err != nil {
		// HTML parse failures fall back to the raw text.
		plain := tgbotapi.NewMessage(response.ChatID, response.Text)
		plain.ReplyToMessageID = response.ReplyToMessageID
		if _, err := c.bot.Send(plain); err != nil {
			slog.ErrorContext(ctx, "sending message", "chatID", response.ChatID, logger.Err(err))
		}
	}
}

// DownloadFile fetches the attachment bytes for fileID.
func (c *client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := c.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("getting file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(c.token), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.bot.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func(body io.ReadCloser) {
		if closeErr := body.Close(); closeErr != nil {
			slog.Error("closing body", logger.Err(closeErr))
		}
	}(resp.Body)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return data, nil
}

func (c *client) SendChatAction(ctx context.Context, chatID int64, action string) {
	if _, err := c.bot.Request(tgbotapi.NewChatAction(chatID, action)); err != nil {
		slog.WarnContext(ctx, "sending chat action", "chatID", chatID, logger.Err(err))
	}
}
