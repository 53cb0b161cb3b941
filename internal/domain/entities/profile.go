package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MinProfiles = 1
	MaxProfiles = 10

	MinStorageGB = 1
	MaxStorageGB = 100000
)

// ServiceProfile is one user-configured storage line of an order.
//
// StorageGB == 0 means "use the tier quota". UnitPriceOverride is free text and only
// takes effect when it parses to a positive number.
type ServiceProfile struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Region            string `json:"region"`
	TierKey           string `json:"tier_key"`
	StorageGB         int    `json:"storage_gb"`
	Months            int    `json:"months"`
	UnitPriceOverride string `json:"unit_price_override,omitempty"`
}

func NewServiceProfile() ServiceProfile {
	return ServiceProfile{
		ID:     uuid.NewString(),
		Months: 1,
	}
}

// ResolvedProfile is a ServiceProfile projected against the catalog. It is never
// persisted; it is recomputed whenever the profile, catalog or currency changes.
type ResolvedProfile struct {
	Profile              ServiceProfile  `json:"profile"`
	RegionKey            string          `json:"region_key"`
	UsingFallbackCatalog bool            `json:"using_fallback_catalog"`
	Tier                 *TierOption     `json:"tier,omitempty"`
	TierRow              *PricingRow     `json:"-"`
	QuotaGB              decimal.Decimal `json:"quota_gb"`
	FallbackUnitPrice    decimal.Decimal `json:"fallback_unit_price"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	UnitPriceOverridden  bool            `json:"unit_price_overridden"`
	StorageGB            decimal.Decimal `json:"storage_gb"`
	Months               int             `json:"months"`
	Quantity             int             `json:"quantity"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	Currency             string          `json:"currency"`
	HasTierData          bool            `json:"has_tier_data"`
}
