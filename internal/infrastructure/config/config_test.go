package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "BACKEND_BASE_URL", "EVENT_BUS", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "ORDER_SUMMARIES_TABLE", "STEP_STORE", "SESSION_IDLE_TTL"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://localhost:8000", cfg.BackendBaseURL)
	assert.Equal(t, "redis", cfg.EventBus)
	assert.Equal(t, "order_summaries", cfg.OrderSummariesTable)
	assert.Equal(t, "dynamodb", cfg.StepStore)
	assert.Equal(t, 2*time.Hour, cfg.SessionIdleTTL)
	assert.False(t, cfg.PaymentGatewayMock)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BACKEND_BASE_URL", "https://api.example.test/")
	t.Setenv("EVENT_BUS", "MEMORY")
	t.Setenv("MERCADOPAGO_MOCK", "on")
	t.Setenv("SESSION_IDLE_TTL", "15m")

	cfg := Load()
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "https://api.example.test", cfg.BackendBaseURL)
	assert.Equal(t, "memory", cfg.EventBus)
	assert.True(t, cfg.PaymentGatewayMock)
	assert.Equal(t, 15*time.Minute, cfg.SessionIdleTTL)
}

func TestLoad_BadPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "eighty")
	assert.Equal(t, 8080, Load().Port)
}
