package usecase

import (
	"fmt"
	"strings"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const tierKeySeparator = "::"

// RegionKey normalizes the region of a pricing row. Rows without a region (on the row
// or on its product) belong to the global bucket.
func RegionKey(row entities.PricingRow) string {
	region := row.Region
	if strings.TrimSpace(region) == "" {
		region = row.Product.Region
	}
	return NormalizeRegion(region)
}

func NormalizeRegion(region string) string {
	return entities.NormalizeRegion(region)
}

// TierKey builds the composite "<region>::<productable id>" key.
func TierKey(regionKey, productableID string) string {
	return regionKey + tierKeySeparator + strings.TrimSpace(productableID)
}

// SplitTierKey is the inverse of TierKey.
func SplitTierKey(key string) (regionKey, productableID string, ok bool) {
	i := strings.LastIndex(key, tierKeySeparator)
	if i <= 0 {
		return "", "", false
	}
	return key[:i], key[i+len(tierKeySeparator):], true
}

// BuildCatalog partitions pricing rows by region. Every row is also inserted in the
// global bucket under a global-scoped key so lookups for regions without their own
// bucket can fall back transparently.
func BuildCatalog(rows []entities.PricingRow, displayCurrency string) entities.Catalog {
	displayCurrency = strings.ToUpper(strings.TrimSpace(displayCurrency))
	cat := entities.Catalog{
		DisplayCurrency: displayCurrency,
		Buckets:         map[string]*entities.CatalogEntry{},
	}

	for _, row := range rows {
		productableID := strings.TrimSpace(row.Product.ProductableID.String())
		if productableID == "" {
			continue
		}
		regionKey := RegionKey(row)

		insertTier(ensureBucket(cat, regionKey), TierKey(regionKey, productableID), regionKey, productableID, row, displayCurrency)
		if regionKey != entities.GlobalRegionKey {
			insertTier(ensureBucket(cat, entities.GlobalRegionKey), TierKey(entities.GlobalRegionKey, productableID), regionKey, productableID, row, displayCurrency)
		}
	}
	return cat
}

func insertTier(entry *entities.CatalogEntry, key, regionKey, productableID string, row entities.PricingRow, displayCurrency string) {
	if _, exists := entry.Tiers[key]; exists {
		return
	}
	entry.Tiers[key] = row
	entry.Options = append(entry.Options, buildTierOption(key, regionKey, productableID, row, displayCurrency))
}

func buildTierOption(key, regionKey, productableID string, row entities.PricingRow, displayCurrency string) entities.TierOption {
	quota := TierQuotaGB(row)
	currency := resolveCurrency(row, displayCurrency)
	perGB := fallbackUnitPrice(row, quota)

	return entities.TierOption{
		Key:             key,
		RegionKey:       regionKey,
		ProductableID:   productableID,
		Name:            strings.TrimSpace(row.Product.Name),
		Label:           tierLabel(row, quota, perGB, currency, displayCurrency),
		Currency:        currency,
		QuotaGB:         quota,
		PricePerGBMonth: perGB,
	}
}

func tierLabel(row entities.PricingRow, quota, perGB decimal.Decimal, currency, displayCurrency string) string {
	name := strings.TrimSpace(row.Product.Name)
	if name == "" {
		name = "Product " + row.Product.ProductableID.String()
	}
	parts := []string{name}
	if quota.IsPositive() {
		parts = append(parts, fmt.Sprintf("%s GiB", quota.String()))
	}
	price := fmt.Sprintf("%s %s/GiB/mo", currency, perGB.StringFixed(4))
	rowCurrency := strings.ToUpper(strings.TrimSpace(row.Pricing.Effective.Currency))
	if displayCurrency != "" && rowCurrency != "" && displayCurrency != rowCurrency {
		price += fmt.Sprintf(" (billed in %s, display %s)", rowCurrency, displayCurrency)
	}
	parts = append(parts, price)
	return strings.Join(parts, " • ")
}

func ensureBucket(cat entities.Catalog, regionKey string) *entities.CatalogEntry {
	entry, ok := cat.Buckets[regionKey]
	if !ok {
		entry = &entities.CatalogEntry{RegionKey: regionKey, Tiers: map[string]entities.PricingRow{}}
		cat.Buckets[regionKey] = entry
	}
	return entry
}
