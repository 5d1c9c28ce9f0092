package channel

import "errors"

var (
	ErrChannelNotSet   = errors.New("notification channel is not set")
	ErrDeliveryRefused = errors.New("notification channel refused delivery")
	ErrParseType       = errors.New("invalid channel type")
	ErrInvalidSettings = errors.New("invalid channel settings")
)
