package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

type Interval struct {
	d time.Duration
}

var (
	Minute = Interval{d: time.Minute}
	Hour   = Interval{d: time.Hour}
)

func (i Interval) Duration() time.Duration {
	return i.d
}

// Window returns the counter key for the fixed window containing now.
func (i Interval) Window(key string, now time.Time) string {
	switch i {
	case Hour:
		return fmt.Sprintf("%s::h%d", key, now.Hour())
	case Minute:
		return fmt.Sprintf("%s::m%d", key, now.Minute())
	default:
		panic("invalid rate limiting interval")
	}
}

type Limit struct {
	Value    uint16
	Interval Interval
}

type Result struct {
	IsAllowed bool
}

func Allowed() Result {
	return Result{IsAllowed: true}
}

func NotAllowed() Result {
	return Result{IsAllowed: false}
}

type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit Limit) Result
}
