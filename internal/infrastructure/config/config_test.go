package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "GO_APP_ENV", "LOG_LEVEL", "STORE_BACKEND", "HH_RATE", "SESSION_TTL", "NOTIFICATION_HISTORY", "SERVICE_ORDERS_TABLE", "DYNAMODB_ENDPOINT", "AWS_REGION"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Port != 8080 || c.StoreBackend != StoreBackendDynamoDB || c.HourlyRate != 95 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.SessionTTL != 8*time.Hour || c.NotificationHistory != 50 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.DynamoDB.ServiceOrdersTable != "service_orders" || c.DynamoDB.StatusIndex != "status-index" || c.DynamoDB.Region != "us-east-1" {
		t.Fatalf("unexpected dynamodb defaults: %+v", c.DynamoDB)
	}
	if c.IsProduction() {
		t.Fatalf("default environment should not be production")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("HH_RATE", "120.5")
	t.Setenv("GO_APP_ENV", "production")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Port != 9090 || c.StoreBackend != StoreBackendMemory || c.HourlyRate != 120.5 || !c.IsProduction() {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.DynamoDB.Endpoint != "http://dynamodb:8000" {
		t.Fatalf("unexpected endpoint: %q", c.DynamoDB.Endpoint)
	}
}

func TestValidate(t *testing.T) {
	base := Config{Port: 8080, HourlyRate: 95, StoreBackend: StoreBackendMemory}
	if err := base.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]func(c *Config){
		"port":    func(c *Config) { c.Port = 0 },
		"rate":    func(c *Config) { c.HourlyRate = 0 },
		"backend": func(c *Config) { c.StoreBackend = "postgres" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
