package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalInt := NewOptional(42, true)
	assert.Equal(42, optionalInt.Value)
	assert.True(optionalInt.IsPresent)

	optionalString := NewOptional("foo", false)
	assert.Equal("foo", optionalString.Value)
	assert.False(optionalString.IsPresent)
}

func TestOptionalMarshalJSON(t *testing.T) {
	assert := require.New(t)

	at := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	content, err := json.Marshal(struct {
		Present Optional[time.Time] `json:"present"`
		Absent  Optional[time.Time] `json:"absent"`
	}{
		Present: NewOptional(at, true),
	})
	assert.Nil(err)
	assert.JSONEq(`{"present": "2024-03-04T08:00:00Z", "absent": null}`, string(content))
}

func TestNewEmail(t *testing.T) {
	assert := require.New(t)
	assert.Equal(Email("mom@example.com"), NewEmail("  Mom@Example.COM "))
}
