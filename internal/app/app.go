// Package app assembles the service from configuration.
package app

import (
	"context"
	"fmt"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/adapter/backend"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/adapter/http/routes"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/adapter/persistence/repository"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/config"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/database"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/events"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/logging"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/payments"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

var orderContexts = []entities.OrderContext{entities.ContextAdmin, entities.ContextTenant, entities.ContextClient}

// Capabilities builds one backend client per order context. The admin client is
// also returned as the provisioning fetcher.
func Capabilities(cfg config.Config) (map[entities.OrderContext]usecase.Capabilities, interfaces.IProvisioningFetcher, error) {
	caps := make(map[entities.OrderContext]usecase.Capabilities, len(orderContexts))
	var fetcher interfaces.IProvisioningFetcher
	for _, octx := range orderContexts {
		client, err := backend.NewClient(cfg.BackendBaseURL, cfg.BackendAPIToken, octx)
		if err != nil {
			return nil, nil, fmt.Errorf("backend client for %s: %w", octx, err)
		}
		caps[octx] = usecase.Capabilities{
			Regions:     client,
			Countries:   client,
			Pricing:     client,
			Submitter:   client,
			Credentials: client,
		}
		if octx == entities.ContextAdmin {
			fetcher = client
		}
	}
	return caps, fetcher, nil
}

// EventBus prefers Redis and falls back to the in-process bus when Redis is
// unreachable or EVENT_BUS=memory.
func EventBus(ctx context.Context, cfg config.Config) (interfaces.IEventBus, func()) {
	if cfg.EventBus != "memory" {
		bus, err := events.NewRedisBus(ctx, events.RedisOptions{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err == nil {
			return bus, func() { _ = bus.Close() }
		}
		logging.L().Warn("[app][wiring] redis unavailable, using in-memory event bus", zap.Error(err))
	}
	return events.NewMemoryBus(), func() {}
}

func StepStore(ddb *dynamodb.Client, cfg config.Config) interfaces.IStepStore {
	if cfg.StepStore == "memory" || ddb == nil {
		return repository.NewMemoryStepStore()
	}
	return repository.NewProvisioningStepDynamoRepository(ddb, cfg.ProvisioningStepsTable)
}

func PaymentGateways(cfg config.Config) []interfaces.IPaymentGateway {
	var gateways []interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		logging.L().Warn("[app][wiring] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		gateways = append(gateways, mp)
	}
	return gateways
}

// Build wires every dependency of the HTTP server. The returned func releases
// the reconciler and the event bus.
func Build(ctx context.Context, cfg config.Config) (routes.Dependencies, func(), error) {
	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{Region: cfg.AWSRegion, Endpoint: cfg.DynamoDBEndpoint})
	if err != nil {
		return routes.Dependencies{}, nil, err
	}

	caps, fetcher, err := Capabilities(cfg)
	if err != nil {
		return routes.Dependencies{}, nil, err
	}

	bus, closeBus := EventBus(ctx, cfg)
	reconciler := usecase.NewReconciler(bus, StepStore(ddb, cfg), fetcher)
	reconciler.Start(ctx)

	tracker := usecase.NewPaymentTracker(PaymentGateways(cfg)...)
	summaries := repository.NewOrderSummaryDynamoRepository(ddb, cfg.OrderSummariesTable)
	sessions := usecase.NewOrderSessionUseCase(caps, summaries, reconciler, tracker, usecase.WithSessionIdleTTL(cfg.SessionIdleTTL))
	go sessions.RunSweeper(ctx, 0)

	closeFn := func() {
		reconciler.Stop()
		closeBus()
	}
	return routes.Dependencies{Sessions: sessions, Reconciler: reconciler, Bus: bus}, closeFn, nil
}
