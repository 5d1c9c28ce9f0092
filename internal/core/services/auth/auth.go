package auth

import (
	"context"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/user"
	"healthmate/internal/core/services"
)

type contextUserID string

const CONTEXT_USER_ID_KEY = contextUserID("userID")

// WithUserID stores the identity asserted by the upstream identity provider.
func WithUserID(ctx context.Context, userID user.ID) context.Context {
	return context.WithValue(ctx, CONTEXT_USER_ID_KEY, userID)
}

func UserIDFromContext(ctx context.Context) (user.ID, bool) {
	userID, ok := ctx.Value(CONTEXT_USER_ID_KEY).(user.ID)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

type Input interface {
	WithAuthenticatedUser(userID user.ID) Input
}

type service[T Input, S any] struct {
	inner services.Service[T, S]
}

func WithAuthentication[T Input, S any](inner services.Service[T, S]) services.Service[T, S] {
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{inner: inner}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return result, user.ErrUserNotAuthenticated
	}
	return s.inner.Run(ctx, input.WithAuthenticatedUser(userID).(T))
}
