package notification

import "errors"

var ErrParsePermission = errors.New("invalid notification permission")

// Permission mirrors the browser notification permission model.
type Permission struct {
	v string
}

func (p Permission) String() string {
	return p.v
}

var (
	PermissionDefault = Permission{v: "default"}
	PermissionGranted = Permission{v: "granted"}
	PermissionDenied  = Permission{v: "denied"}
)

func ParsePermission(value string) (Permission, error) {
	switch value {
	case PermissionDefault.v:
		return PermissionDefault, nil
	case PermissionGranted.v:
		return PermissionGranted, nil
	case PermissionDenied.v:
		return PermissionDenied, nil
	default:
		return PermissionDefault, ErrParsePermission
	}
}

// RequestResult is the outcome of asking the user to enable notifications.
type RequestResult struct {
	v string
}

func (r RequestResult) String() string {
	return r.v
}

var (
	RequestGranted     = RequestResult{v: "granted"}
	RequestDenied      = RequestResult{v: "denied"}
	RequestUnavailable = RequestResult{v: "unavailable"}
)

// Permission maps a request outcome onto the stored permission. Unavailable
// keeps the current state.
func (r RequestResult) Permission(current Permission) Permission {
	switch r {
	case RequestGranted:
		return PermissionGranted
	case RequestDenied:
		return PermissionDenied
	default:
		return current
	}
}
