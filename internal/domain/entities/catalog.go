package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// GlobalRegionKey is the reserved bucket for pricing rows without a region and the
// fallback bucket for regions that have no rows of their own.
const GlobalRegionKey = "__global__"

// PricingRow is one row of the upstream pricing query.
type PricingRow struct {
	Region  string         `json:"region,omitempty"`
	Product PricingProduct `json:"product"`
	Pricing PricingInfo    `json:"pricing"`
}

type PricingProduct struct {
	ProductableID FlexString         `json:"productable_id"`
	Name          string             `json:"name"`
	Region        string             `json:"region,omitempty"`
	QuotaGB       FlexDecimal        `json:"quota_gb"`
	StorageGB     FlexDecimal        `json:"storage_gb"`
	ObjectStorage *ObjectStorageMeta `json:"object_storage,omitempty"`
}

type ObjectStorageMeta struct {
	QuotaGB   FlexDecimal `json:"quota_gb"`
	StorageGB FlexDecimal `json:"storage_gb"`
}

type PricingInfo struct {
	Effective EffectivePrice `json:"effective"`
}

type EffectivePrice struct {
	PriceLocal FlexDecimal `json:"price_local"`
	Currency   string      `json:"currency"`
}

// TierOption is a selectable tier as shown in the wizard.
type TierOption struct {
	Key             string          `json:"key"`
	RegionKey       string          `json:"region_key"`
	ProductableID   string          `json:"productable_id"`
	Name            string          `json:"name"`
	Label           string          `json:"label"`
	Currency        string          `json:"currency"`
	QuotaGB         decimal.Decimal `json:"quota_gb"`
	PricePerGBMonth decimal.Decimal `json:"price_per_gb_month"`
}

// CatalogEntry is one region bucket: ordered options plus the raw row per tier key.
type CatalogEntry struct {
	RegionKey string                `json:"region_key"`
	Options   []TierOption          `json:"options"`
	Tiers     map[string]PricingRow `json:"-"`
}

// Catalog is the region-keyed lookup built from a flat list of pricing rows.
type Catalog struct {
	DisplayCurrency string                   `json:"display_currency"`
	Buckets         map[string]*CatalogEntry `json:"buckets"`
}

// NormalizeRegion lower-cases and trims a region code; an empty region is global.
func NormalizeRegion(region string) string {
	key := strings.ToLower(strings.TrimSpace(region))
	if key == "" {
		return GlobalRegionKey
	}
	return key
}

// Bucket returns the bucket for region. The global bucket is used only when no
// region-specific bucket exists; usingFallback reports that case.
func (c Catalog) Bucket(region string) (entry *CatalogEntry, usingFallback bool, ok bool) {
	key := NormalizeRegion(region)
	if entry, ok := c.Buckets[key]; ok {
		return entry, false, true
	}
	if entry, ok := c.Buckets[GlobalRegionKey]; ok {
		return entry, key != GlobalRegionKey, true
	}
	return nil, false, false
}
