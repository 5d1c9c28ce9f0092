package response

import (
	"healthmate/internal/core/domain/channel"
)

type Channel struct {
	Type           string `json:"type"`
	Email          string `json:"email,omitempty"`
	TelegramChatID int64  `json:"telegramChatId,omitempty"`
}

func (c *Channel) FromDomainType(settings channel.Settings) {
	c.Type = settings.Type().String()
	switch s := settings.(type) {
	case *channel.EmailSettings:
		c.Email = string(s.Email)
	case *channel.TelegramSettings:
		c.TelegramChatID = int64(s.ChatID)
	}
}
