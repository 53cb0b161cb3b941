// Package config reads process configuration from the environment.
//
// A .env file is loaded by cmd/api through godotenv/autoload before Load runs.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port int

	BackendBaseURL  string
	BackendAPIToken string

	// EventBus selects the provisioning event transport: "redis" or "memory".
	EventBus      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AWSRegion              string
	DynamoDBEndpoint       string
	OrderSummariesTable    string
	ProvisioningStepsTable string
	// StepStore selects where merged step lists live: "dynamodb" or "memory".
	StepStore string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	// SessionIdleTTL is how long an untouched order session is kept in memory.
	SessionIdleTTL time.Duration

	LogLevel  string
	LogFormat string
}

func Load() Config {
	return Config{
		Port:                   getenvInt("PORT", 8080),
		BackendBaseURL:         strings.TrimRight(getenvDefault("BACKEND_BASE_URL", "http://localhost:8000"), "/"),
		BackendAPIToken:        os.Getenv("BACKEND_API_TOKEN"),
		EventBus:               strings.ToLower(getenvDefault("EVENT_BUS", "redis")),
		RedisAddr:              getenvDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getenvInt("REDIS_DB", 0),
		AWSRegion:              getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:       os.Getenv("DYNAMODB_ENDPOINT"),
		OrderSummariesTable:    getenvDefault("ORDER_SUMMARIES_TABLE", "order_summaries"),
		ProvisioningStepsTable: getenvDefault("PROVISIONING_STEPS_TABLE", "provisioning_steps"),
		StepStore:              strings.ToLower(getenvDefault("STEP_STORE", "dynamodb")),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     IsTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || IsTruthy(os.Getenv("MERCADOPAGO_MOCK")),
		SessionIdleTTL:         getenvDuration("SESSION_IDLE_TTL", 2*time.Hour),
		LogLevel:               getenvDefault("LOG_LEVEL", "info"),
		LogFormat:              getenvDefault("LOG_FORMAT", "json"),
	}
}

// IsTruthy reports whether an env flag is switched on.
func IsTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
