package user

import "errors"

var ErrUserNotAuthenticated = errors.New("user is not authenticated")

// ID identifies a user issued by the external identity provider.
type ID string
