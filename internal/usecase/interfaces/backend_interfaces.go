package interfaces

import (
	"context"
	"encoding/json"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
)

// The capability interfaces below are implemented once per order context
// (admin, tenant, client) and injected into the order session at construction.

//go:generate mockgen -source=backend_interfaces.go -destination=mocks/backend_interfaces_mock.go -package=mock_interfaces

type IRegionsProvider interface {
	ListRegions(ctx context.Context) ([]entities.Region, error)
}

type ICountriesProvider interface {
	ListCountries(ctx context.Context) ([]entities.Country, error)
}

// IPricingProvider runs the pricing query for one region and product type.
type IPricingProvider interface {
	ListPricing(ctx context.Context, region, productType string) ([]entities.PricingRow, error)
}

// IOrderSubmitter posts an order and returns the raw, not yet normalized, response.
type IOrderSubmitter interface {
	SubmitOrder(ctx context.Context, payload entities.OrderPayload) (json.RawMessage, error)
}

// IProvisioningFetcher loads the full step list of an entity (used for refreshes).
type IProvisioningFetcher interface {
	FetchSteps(ctx context.Context, ref entities.EntityRef) ([]entities.ProvisioningStep, error)
}

type ICredentialsProvider interface {
	FetchCredential(ctx context.Context, accountID string) (entities.Credential, error)
}
