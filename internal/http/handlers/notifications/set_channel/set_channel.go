package setchannel

import (
	"encoding/json"
	"errors"
	"healthmate/internal/core/domain/channel"
	c "healthmate/internal/core/domain/common"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/user"
	"healthmate/internal/core/services"
	service "healthmate/internal/core/services/set_notification_channel"
	"healthmate/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Type           string `json:"type"`
	Email          string `json:"email"`
	TelegramChatID int64  `json:"telegramChatId"`
}

type Result struct {
	Channel    response.Channel    `json:"channel"`
	Permission response.Permission `json:"permission"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	emailRules := []validation.Rule{validation.Length(0, 512)}
	chatRules := []validation.Rule{}
	switch i.Type {
	case channel.EMAIL.String():
		emailRules = append(emailRules, validation.Required, is.Email)
	case channel.TELEGRAM.String():
		chatRules = append(chatRules, validation.Required)
	}
	return validation.ValidateStruct(&i,
		validation.Field(&i.Type, validation.Required, validation.In(channel.EMAIL.String(), channel.TELEGRAM.String())),
		validation.Field(&i.Email, emailRules...),
		validation.Field(&i.TelegramChatID, chatRules...),
	)
}

func (i Input) Settings() (channel.Settings, error) {
	t, err := channel.ParseType(i.Type)
	if err != nil {
		return nil, err
	}
	switch t {
	case channel.EMAIL:
		return channel.NewEmailSettings(c.NewEmail(i.Email)), nil
	case channel.TELEGRAM:
		return channel.NewTelegramSettings(channel.TelegramChatID(i.TelegramChatID)), nil
	default:
		return nil, channel.ErrParseType
	}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderBadRequest(rw)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}
	settings, err := input.Settings()
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Settings: settings})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotAuthenticated):
			response.RenderUnauthorized(rw)
		case errors.Is(err, channel.ErrInvalidSettings):
			response.RenderRejected(rw, err)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	res := Result{}
	res.Channel.FromDomainType(result.Settings)
	res.Permission.FromDomainType(result.Permission)
	response.Render(rw, res, http.StatusOK)
}
