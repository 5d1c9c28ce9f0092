package channel

import (
	c "healthmate/internal/core/domain/common"
)

type Settings interface {
	Type() Type
	Accept(visitor SettingsVisitor) error
}

type SettingsVisitor interface {
	VisitEmail(s *EmailSettings) error
	VisitTelegram(s *TelegramSettings) error
}

type EmailSettings struct {
	Email c.Email
}

func NewEmailSettings(email c.Email) *EmailSettings {
	return &EmailSettings{Email: email}
}

func (s *EmailSettings) Type() Type {
	return EMAIL
}

func (s *EmailSettings) Accept(v SettingsVisitor) error {
	return v.VisitEmail(s)
}

type TelegramChatID int64

type TelegramSettings struct {
	ChatID TelegramChatID
}

func NewTelegramSettings(chatID TelegramChatID) *TelegramSettings {
	return &TelegramSettings{ChatID: chatID}
}

func (s *TelegramSettings) Type() Type {
	return TELEGRAM
}

func (s *TelegramSettings) Accept(v SettingsVisitor) error {
	return v.VisitTelegram(s)
}
