package channel

import (
	"encoding/json"
	"fmt"

	c "healthmate/internal/core/domain/common"
)

type record struct {
	Type           string `json:"type"`
	Email          string `json:"email,omitempty"`
	TelegramChatID int64  `json:"telegramChatId,omitempty"`
}

func Marshal(s Settings) ([]byte, error) {
	r := record{Type: s.Type().String()}
	switch settings := s.(type) {
	case *EmailSettings:
		r.Email = string(settings.Email)
	case *TelegramSettings:
		r.TelegramChatID = int64(settings.ChatID)
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidSettings, s)
	}
	return json.Marshal(r)
}

func Unmarshal(data []byte) (Settings, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	t, err := ParseType(r.Type)
	if err != nil {
		return nil, err
	}
	switch t {
	case EMAIL:
		if r.Email == "" {
			return nil, ErrInvalidSettings
		}
		return NewEmailSettings(c.NewEmail(r.Email)), nil
	case TELEGRAM:
		if r.TelegramChatID == 0 {
			return nil, ErrInvalidSettings
		}
		return NewTelegramSettings(TelegramChatID(r.TelegramChatID)), nil
	default:
		return nil, ErrParseType
	}
}
