package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	STORE_BACKEND_REDIS    = "redis"
	STORE_BACKEND_POSTGRES = "postgres"

	DELIVERY_DIRECT = "direct"
	DELIVERY_QUEUE  = "queue"
)

type Config struct {
	IsTestMode     bool     `env:"TEST_MODE" envDefault:"false"`
	Port           uint16   `env:"PORT" envDefault:"8000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	StoreBackend   string `env:"STORE_BACKEND" envDefault:"redis"`
	StoreNamespace string `env:"STORE_NAMESPACE" envDefault:"healthMate"`
	RedisURL       string `env:"REDIS_URL,notEmpty"`
	PostgresqlURL  string `env:"POSTGRESQL_URL"`

	PollInterval   time.Duration `env:"POLL_INTERVAL" envDefault:"10s"`
	BannerDuration time.Duration `env:"BANNER_DURATION" envDefault:"8s"`

	NotificationDelivery string `env:"NOTIFICATION_DELIVERY" envDefault:"direct"`
	TelegramBotToken     string `env:"TELEGRAM_BOT_TOKEN"`

	AwsRegion      string `env:"AWS_REGION" envDefault:"eu-central-1"`
	AwsAccessKey   string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey   string `env:"AWS_SECRET_KEY"`
	AwsEmailSender string `env:"AWS_EMAIL_SENDER"`

	RabbitmqURL                     string `env:"RABBITMQ_URL"`
	RabbitmqSystemNotificationQueue string `env:"RABBITMQ_SYSTEM_NOTIFICATION_QUEUE" envDefault:"system-notifications"`

	SentryDsn *url.URL `env:"SENTRY_DSN"`
}

// Load reads the configuration from the environment. Variables from a .env
// file in the working directory are applied first when the file exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case STORE_BACKEND_REDIS:
	case STORE_BACKEND_POSTGRES:
		if c.PostgresqlURL == "" {
			return fmt.Errorf("POSTGRESQL_URL must be set for STORE_BACKEND=%s", c.StoreBackend)
		}
	default:
		return fmt.Errorf("invalid STORE_BACKEND value: %q", c.StoreBackend)
	}

	switch c.NotificationDelivery {
	case DELIVERY_DIRECT:
	case DELIVERY_QUEUE:
		if c.RabbitmqURL == "" {
			return fmt.Errorf("RABBITMQ_URL must be set for NOTIFICATION_DELIVERY=%s", c.NotificationDelivery)
		}
	default:
		return fmt.Errorf("invalid NOTIFICATION_DELIVERY value: %q", c.NotificationDelivery)
	}

	if c.PollInterval <= 0 {
		return fmt.Errorf("POLL_INTERVAL must be positive")
	}
	if c.BannerDuration <= 0 {
		return fmt.Errorf("BANNER_DURATION must be positive")
	}
	return nil
}

func (c *Config) IsEmailEnabled() bool {
	return c.AwsAccessKey != "" && c.AwsSecretKey != "" && c.AwsEmailSender != ""
}

func (c *Config) IsTelegramEnabled() bool {
	return c.TelegramBotToken != ""
}
