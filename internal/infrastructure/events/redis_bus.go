// Package events carries provisioning step events between the ingest endpoint, the
// backend and the reconciler.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/logging"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrRedisNotConfigured = errors.New("redis client not configured")

const subscriptionBuffer = 32

// RedisBus publishes events as JSON on Redis pub/sub channels named "<kind>.<id>".
type RedisBus struct {
	client *redis.Client
}

var _ interfaces.IEventBus = (*RedisBus)(nil)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisBus connects and pings the server. A failed ping is returned so the caller
// can fall back to the in-memory bus.
func NewRedisBus(ctx context.Context, opts RedisOptions) (*RedisBus, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logging.L().Warn("[events][redis] ping failed", zap.String("addr", opts.Addr), zap.Error(err))
		_ = client.Close()
		return nil, err
	}
	logging.L().Info("[events][redis] connected", zap.String("addr", opts.Addr))
	return &RedisBus{client: client}, nil
}

func NewRedisBusFromClient(client *redis.Client) *RedisBus {
	return &RedisBus{client: client}
}

func (b *RedisBus) Publish(ctx context.Context, channel string, event entities.ProvisioningEvent) error {
	if b == nil || b.client == nil {
		return ErrRedisNotConfigured
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, channel, payload).Err()
}

// Subscribe waits for the subscription to be confirmed before returning.
func (b *RedisBus) Subscribe(ctx context.Context, channel string) (interfaces.ISubscription, error) {
	if b == nil || b.client == nil {
		return nil, ErrRedisNotConfigured
	}
	ps := b.client.Subscribe(ctx, channel)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, err
	}
	sub := &redisSubscription{
		channel: channel,
		ps:      ps,
		out:     make(chan entities.ProvisioningEvent, subscriptionBuffer),
		done:    make(chan struct{}),
	}
	go sub.run()
	return sub, nil
}

func (b *RedisBus) Close() error {
	if b == nil || b.client == nil {
		return nil
	}
	return b.client.Close()
}

type redisSubscription struct {
	channel string
	ps      *redis.PubSub
	out     chan entities.ProvisioningEvent
	done    chan struct{}
	once    sync.Once
}

func (s *redisSubscription) run() {
	defer close(s.out)
	for msg := range s.ps.Channel() {
		var ev entities.ProvisioningEvent
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			logging.L().Warn("[events][redis] dropping malformed event", zap.String("channel", s.channel), zap.Error(err))
			continue
		}
		select {
		case s.out <- ev:
		case <-s.done:
			return
		}
	}
}

func (s *redisSubscription) Events() <-chan entities.ProvisioningEvent {
	return s.out
}

func (s *redisSubscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.ps.Close()
	})
	return err
}
