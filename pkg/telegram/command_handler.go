package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Command interface {
	CanHandle(update *tgbotapi.Update) bool
	Handle(ctx context.Context, update *tgbotapi.Update)
}

type commandHandler struct {
	commands []Command
}

func NewCommandHandler(commands []Command) *commandHandler {
	return &commandHandler{
		commands: commands,
	}
}

// Handle dispatches to the first matching command. Unknown commands produce
// no reply.
func (c *commandHandler) Handle(ctx context.Context, update *tgbotapi.Update) {
	for _, command := range c.commands {
		if command.CanHandle(update) {
			command.Handle(ctx, update)
			return
		}
	}
}
