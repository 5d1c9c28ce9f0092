package idgenerator

import (
	"healthmate/internal/core/domain/reminder"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateIDFromClock(t *testing.T) {
	now := time.UnixMilli(1709539200123)
	generator := NewMillis(func() time.Time { return now })

	assert.Equal(t, reminder.ID("1709539200123"), generator.GenerateID())
	assert.Equal(t, reminder.ID("1709539200124"), generator.GenerateID())

	now = now.Add(-time.Second)
	assert.Equal(t, reminder.ID("1709539200125"), generator.GenerateID())

	now = time.UnixMilli(1709539300000)
	assert.Equal(t, reminder.ID("1709539300000"), generator.GenerateID())
}

func TestGenerateIDUnique(t *testing.T) {
	generator := NewMillis(time.Now)
	ids := make(map[reminder.ID]struct{})
	for i := 0; i < 1000; i++ {
		id := generator.GenerateID()
		if _, ok := ids[id]; ok {
			t.Fatalf("id %v already exists", id)
		}
		ids[id] = struct{}{}
	}
}
