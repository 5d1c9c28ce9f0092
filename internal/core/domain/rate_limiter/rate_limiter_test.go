package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntervalWindow(t *testing.T) {
	now := time.Date(2024, 3, 4, 15, 42, 10, 0, time.UTC)

	assert.Equal(t, "user::h15", Hour.Window("user", now))
	assert.Equal(t, "user::m42", Minute.Window("user", now))
	assert.Equal(t, time.Hour, Hour.Duration())
	assert.Equal(t, time.Minute, Minute.Duration())
	assert.Panics(t, func() { Interval{}.Window("user", now) })
}
