package events

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRedisBus skips unless a Redis server answers on REDIS_ADDR.
func newTestRedisBus(t *testing.T) *RedisBus {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	bus, err := NewRedisBus(ctx, RedisOptions{Addr: addr, Password: os.Getenv("REDIS_PASSWORD"), DB: 14})
	if err != nil {
		t.Skipf("redis not reachable at %s: %v", addr, err)
	}
	t.Cleanup(func() { _ = bus.Close() })
	return bus
}

func TestRedisBus_RoundTrip(t *testing.T) {
	bus := newTestRedisBus(t)
	ctx := context.Background()
	channel := "object-storage.test-" + time.Now().Format("150405.000000")

	sub, err := bus.Subscribe(ctx, channel)
	require.NoError(t, err)
	defer sub.Close()

	ev := entities.ProvisioningEvent{
		Step:      &entities.ProvisioningStep{ID: entities.StepIDFinalize, Status: entities.StepCompleted},
		AccountID: "acc-1",
	}
	require.NoError(t, bus.Publish(ctx, channel, ev))

	select {
	case got := <-sub.Events():
		require.NotNil(t, got.Step)
		assert.Equal(t, entities.StepIDFinalize, got.Step.ID)
		assert.Equal(t, entities.FlexString("acc-1"), got.AccountID)
	case <-time.After(3 * time.Second):
		t.Fatal("event not delivered")
	}

	require.NoError(t, sub.Close())
	_, open := <-sub.Events()
	assert.False(t, open)
}

func TestRedisBus_NotConfigured(t *testing.T) {
	var bus *RedisBus
	_, err := bus.Subscribe(context.Background(), "users.u-1")
	assert.ErrorIs(t, err, ErrRedisNotConfigured)
	assert.ErrorIs(t, bus.Publish(context.Background(), "users.u-1", entities.ProvisioningEvent{}), ErrRedisNotConfigured)
}
