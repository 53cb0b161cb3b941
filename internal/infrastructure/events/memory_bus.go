package events

import (
	"context"
	"sync"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"
)

// MemoryBus is an in-process IEventBus for single-instance deployments and tests.
type MemoryBus struct {
	mu   sync.RWMutex
	subs map[string]map[*memorySubscription]struct{}
}

var _ interfaces.IEventBus = (*MemoryBus)(nil)

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: map[string]map[*memorySubscription]struct{}{}}
}

func (b *MemoryBus) Subscribe(_ context.Context, channel string) (interfaces.ISubscription, error) {
	sub := &memorySubscription{
		bus:     b,
		channel: channel,
		out:     make(chan entities.ProvisioningEvent, subscriptionBuffer),
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[channel] == nil {
		b.subs[channel] = map[*memorySubscription]struct{}{}
	}
	b.subs[channel][sub] = struct{}{}
	return sub, nil
}

// Publish delivers to every current subscriber of channel, blocking while a
// subscriber's buffer is full until ctx is done.
func (b *MemoryBus) Publish(ctx context.Context, channel string, event entities.ProvisioningEvent) error {
	b.mu.RLock()
	targets := make([]*memorySubscription, 0, len(b.subs[channel]))
	for sub := range b.subs[channel] {
		targets = append(targets, sub)
	}
	b.mu.RUnlock()

	for _, sub := range targets {
		if err := sub.deliver(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// Subscribers returns the number of open subscriptions on channel.
func (b *MemoryBus) Subscribers(channel string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[channel])
}

func (b *MemoryBus) remove(sub *memorySubscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs[sub.channel], sub)
	if len(b.subs[sub.channel]) == 0 {
		delete(b.subs, sub.channel)
	}
}

type memorySubscription struct {
	bus     *MemoryBus
	channel string
	out     chan entities.ProvisioningEvent

	mu     sync.Mutex
	closed bool
}

func (s *memorySubscription) deliver(ctx context.Context, ev entities.ProvisioningEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	select {
	case s.out <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *memorySubscription) Events() <-chan entities.ProvisioningEvent {
	return s.out
}

func (s *memorySubscription) Close() error {
	s.bus.remove(s)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.out)
	return nil
}
