package firelog

import (
	"healthmate/internal/core/domain/reminder"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMarkFired(t *testing.T) {
	log := NewMemory()
	owner := reminder.NewOwner("u-1", "p-1")
	at := time.Date(2024, 3, 4, 8, 0, 5, 0, time.UTC)

	assert.True(t, log.MarkFired(owner, "1", at))
	assert.False(t, log.MarkFired(owner, "1", at.Add(50*time.Second)))
	assert.True(t, log.MarkFired(owner, "2", at))
	assert.True(t, log.MarkFired(reminder.NewOwner("u-1", "p-2"), "1", at))

	assert.True(t, log.MarkFired(owner, "1", at.Add(24*time.Hour)))
	assert.Len(t, log.fired, 1)
}
