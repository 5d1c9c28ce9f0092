package systemnotifier

import (
	"context"
	"errors"
	"fmt"
	"healthmate/internal/core/domain/channel"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/notification"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramBot is the part of *tgbotapi.BotAPI used for delivery.
type TelegramBot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Telegram struct {
	bot TelegramBot
}

func NewTelegram(bot TelegramBot) *Telegram {
	if bot == nil {
		panic(e.NewNilArgumentError("bot"))
	}
	return &Telegram{bot: bot}
}

func (t *Telegram) Send(ctx context.Context, chatID channel.TelegramChatID, n notification.Notification) error {
	msg := tgbotapi.NewMessage(int64(chatID), fmt.Sprintf("%s\n%s", n.Title, n.Body))
	_, err := t.bot.Send(msg)
	if err == nil {
		return nil
	}

	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusForbidden || apiErr.Code == http.StatusBadRequest) {
		// Blocked bot, deleted account or a chat the bot was never added to.
		return fmt.Errorf("%w: %s", channel.ErrDeliveryRefused, apiErr.Message)
	}
	return err
}
