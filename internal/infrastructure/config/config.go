package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	Production = "production"

	StoreBackendDynamoDB = "dynamodb"
	StoreBackendMemory   = "memory"
)

// DynamoDBOptions configures the AWS client. Local DynamoDB does not
// validate credentials, but the SDK requires them, hence the defaults.
type DynamoDBOptions struct {
	Region             string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID        string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey    string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint           string `env:"DYNAMODB_ENDPOINT"`
	ServiceOrdersTable string `env:"SERVICE_ORDERS_TABLE" envDefault:"service_orders"`
	StatusIndex        string `env:"SERVICE_ORDERS_STATUS_INDEX" envDefault:"status-index"`
}

type Config struct {
	Port                int           `env:"PORT" envDefault:"8080"`
	GoAppEnvironment    string        `env:"GO_APP_ENV" envDefault:"development"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	StoreBackend        string        `env:"STORE_BACKEND" envDefault:"dynamodb"`
	HourlyRate          float64       `env:"HH_RATE" envDefault:"95"`
	SessionTTL          time.Duration `env:"SESSION_TTL" envDefault:"8h"`
	NotificationHistory int           `env:"NOTIFICATION_HISTORY" envDefault:"50"`
	DynamoDB            DynamoDBOptions
}

// Load parses the process environment into a Config.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be in 1..65535, got %d", c.Port)
	}
	if c.HourlyRate <= 0 {
		return fmt.Errorf("HH_RATE must be positive, got %v", c.HourlyRate)
	}
	if c.StoreBackend != StoreBackendDynamoDB && c.StoreBackend != StoreBackendMemory {
		return fmt.Errorf("STORE_BACKEND must be '%s' or '%s', got '%s'", StoreBackendDynamoDB, StoreBackendMemory, c.StoreBackend)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.GoAppEnvironment == Production
}
