package interfaces

import (
	"context"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
)

//go:generate mockgen -source=provisioning_interfaces.go -destination=mocks/provisioning_interfaces_mock.go -package=mock_interfaces

// IEventBus delivers provisioning events on named channels ("<kind>.<id>").
type IEventBus interface {
	Subscribe(ctx context.Context, channel string) (ISubscription, error)
	Publish(ctx context.Context, channel string, event entities.ProvisioningEvent) error
}

// ISubscription is one open channel. Events is closed after Close returns.
type ISubscription interface {
	Events() <-chan entities.ProvisioningEvent
	Close() error
}

// IStepStore caches the merged step list of each tracked entity.
type IStepStore interface {
	Get(ctx context.Context, ref entities.EntityRef) ([]entities.ProvisioningStep, error)
	Put(ctx context.Context, ref entities.EntityRef, steps []entities.ProvisioningStep) error
}
