package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()

	require.Nil(t, err)
	assert.Equal(t, uint16(8000), cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, STORE_BACKEND_REDIS, cfg.StoreBackend)
	assert.Equal(t, "healthMate", cfg.StoreNamespace)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, 8*time.Second, cfg.BannerDuration)
	assert.Equal(t, DELIVERY_DIRECT, cfg.NotificationDelivery)
	assert.Nil(t, cfg.SentryDsn)
	assert.False(t, cfg.IsEmailEnabled())
	assert.False(t, cfg.IsTelegramEnabled())
}

func TestLoad(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("POLL_INTERVAL", "5s")
	t.Setenv("SENTRY_DSN", "https://key@sentry.example/1")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")

	cfg, err := Load()

	require.Nil(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, "sentry.example", cfg.SentryDsn.Host)
	assert.True(t, cfg.IsTelegramEnabled())
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		id  string
		env map[string]string
	}{
		{id: "redis url missing", env: map[string]string{}},
		{
			id:  "unknown store backend",
			env: map[string]string{"REDIS_URL": "redis://r", "STORE_BACKEND": "mongo"},
		},
		{
			id:  "postgres without url",
			env: map[string]string{"REDIS_URL": "redis://r", "STORE_BACKEND": "postgres"},
		},
		{
			id:  "queue without rabbitmq",
			env: map[string]string{"REDIS_URL": "redis://r", "NOTIFICATION_DELIVERY": "queue"},
		},
		{
			id:  "zero poll interval",
			env: map[string]string{"REDIS_URL": "redis://r", "POLL_INTERVAL": "0s"},
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			t.Setenv("REDIS_URL", "")
			for k, v := range testcase.env {
				t.Setenv(k, v)
			}

			_, err := Load()

			assert.NotNil(t, err)
		})
	}
}
