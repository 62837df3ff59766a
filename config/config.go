package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port       int    `env:"PORT" envDefault:"3000"`
	PgURL      string `env:"PG_URL,required"`
	PgPoolMax  int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogConsole bool   `env:"LOG_CONSOLE" envDefault:"false"`

	// PayMee API credentials and environment.
	PayMeeAPIKey   string `env:"PAYMEE_API_KEY,required"`
	PayMeeAPIToken string `env:"PAYMEE_API_TOKEN,required"`
	PayMeeSandbox  bool   `env:"PAYMEE_SANDBOX" envDefault:"true"`
	// Optional base URL override for tests and local mocks; when empty the
	// sandbox flag selects the official hostname.
	PayMeeBaseURL           string        `env:"PAYMEE_BASE_URL"`
	HTTPPayMeeClientTimeout time.Duration `env:"HTTP_PAYMEE_CLIENT_TIMEOUT" envDefault:"60s"`
	// Debug enables per-branch request/response logging in the PayMee client.
	PayMeeDebug bool `env:"PAYMEE_DEBUG" envDefault:"false"`

	// Checkout behavior.
	InvoicePrefix string `env:"INVOICE_PREFIX" envDefault:"WC-"`
	SendOnlyTotal bool   `env:"SEND_ONLY_TOTAL" envDefault:"false"`
	// Public URL PayMee calls back with IPN notifications.
	IPNCallbackURL string `env:"IPN_CALLBACK_URL,required"`

	// Host commerce platform notification endpoint.
	HostBaseURL        string        `env:"HOST_BASE_URL,required"`
	HostClientTimeout  time.Duration `env:"HOST_CLIENT_TIMEOUT" envDefault:"10s"`
	HostRetryAttempts  int           `env:"HOST_RETRY_ATTEMPTS" envDefault:"3"`
	HostRetryBaseDelay time.Duration `env:"HOST_RETRY_BASE_DELAY" envDefault:"100ms"`
	HostRetryMaxDelay  time.Duration `env:"HOST_RETRY_MAX_DELAY" envDefault:"5s"`

	// IPN processing mode: "sync" (direct) or "kafka" (async via Kafka)
	WebhookMode string `env:"WEBHOOK_MODE" envDefault:"sync"`

	// Kafka configuration
	KafkaBrokers            []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaNotificationsTopic string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"paymee.notifications"`
	KafkaConsumerGroup      string   `env:"KAFKA_CONSUMER_GROUP" envDefault:"paymee-bridge"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
