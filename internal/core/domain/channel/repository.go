package channel

import (
	"context"
	"healthmate/internal/core/domain/user"
)

// Repository stores the single notification channel of a user. Get returns
// ErrChannelNotSet when nothing is registered.
type Repository interface {
	Get(ctx context.Context, userID user.ID) (Settings, error)
	Set(ctx context.Context, userID user.ID, settings Settings) error
}
