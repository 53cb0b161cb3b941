package usecase

import (
	"errors"
	"strings"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const defaultCurrency = "USD"

var (
	ErrTooManyProfiles = errors.New("maximum number of service profiles reached")
	ErrTooFewProfiles  = errors.New("at least one service profile is required")
	ErrProfileNotFound = errors.New("service profile not found")
)

// ResolveProfile projects a profile against the catalog. It never fails: a profile
// whose tier cannot be found resolves with HasTierData=false, which blocks submission.
func ResolveProfile(p entities.ServiceProfile, cat entities.Catalog, displayCurrency string) entities.ResolvedProfile {
	months := p.Months
	if months < 1 {
		months = 1
	}
	r := entities.ResolvedProfile{
		Profile:   p,
		RegionKey: NormalizeRegion(p.Region),
		Months:    months,
		Quantity:  1,
	}

	var row *entities.PricingRow
	if entry, fallback, ok := cat.Bucket(p.Region); ok {
		r.UsingFallbackCatalog = fallback
		if tierRow, found := entry.Tiers[p.TierKey]; found && strings.TrimSpace(p.TierKey) != "" {
			row = &tierRow
			for i := range entry.Options {
				if entry.Options[i].Key == p.TierKey {
					opt := entry.Options[i]
					r.Tier = &opt
					break
				}
			}
		}
	}

	if row != nil {
		r.TierRow = row
		r.HasTierData = true
		r.QuotaGB = TierQuotaGB(*row)
		r.FallbackUnitPrice = fallbackUnitPrice(*row, r.QuotaGB)
		r.Currency = resolveCurrency(*row, displayCurrency)
	} else {
		r.Currency = resolveCurrency(entities.PricingRow{}, displayCurrency)
	}

	r.UnitPrice = r.FallbackUnitPrice
	if override, ok := parsePositiveDecimal(p.UnitPriceOverride); ok {
		r.UnitPrice = override
		r.UnitPriceOverridden = true
	}

	switch {
	case p.StorageGB > 0:
		r.StorageGB = decimal.NewFromInt(int64(p.StorageGB))
	case r.QuotaGB.IsPositive():
		r.StorageGB = r.QuotaGB
	default:
		r.StorageGB = decimal.Zero
	}

	r.Subtotal = decimal.NewFromInt(int64(r.Quantity)).
		Mul(decimal.NewFromInt(int64(months))).
		Mul(r.StorageGB).
		Mul(r.UnitPrice)
	return r
}

// ResolveProfiles resolves every profile in order.
func ResolveProfiles(profiles []entities.ServiceProfile, cat entities.Catalog, displayCurrency string) []entities.ResolvedProfile {
	out := make([]entities.ResolvedProfile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, ResolveProfile(p, cat, displayCurrency))
	}
	return out
}

// TierQuotaGB returns the first positive quota among the known metadata fields.
func TierQuotaGB(row entities.PricingRow) decimal.Decimal {
	candidates := make([]entities.FlexDecimal, 0, 4)
	if meta := row.Product.ObjectStorage; meta != nil {
		candidates = append(candidates, meta.QuotaGB, meta.StorageGB)
	}
	candidates = append(candidates, row.Product.QuotaGB, row.Product.StorageGB)
	for _, c := range candidates {
		if c.Positive() {
			return c.Value
		}
	}
	return decimal.Zero
}

// fallbackUnitPrice is the per-GB monthly price derived from the tier total.
func fallbackUnitPrice(row entities.PricingRow, quota decimal.Decimal) decimal.Decimal {
	total := row.Pricing.Effective.PriceLocal.Or(decimal.Zero)
	if quota.IsPositive() {
		return total.Div(quota)
	}
	return total
}

// resolveCurrency: tier row currency, then display currency, then USD.
func resolveCurrency(row entities.PricingRow, displayCurrency string) string {
	if c := strings.ToUpper(strings.TrimSpace(row.Pricing.Effective.Currency)); c != "" {
		return c
	}
	if c := strings.ToUpper(strings.TrimSpace(displayCurrency)); c != "" {
		return c
	}
	return defaultCurrency
}

func parsePositiveDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}

// AddProfile appends a default profile, honoring the maximum.
func AddProfile(profiles []entities.ServiceProfile) ([]entities.ServiceProfile, entities.ServiceProfile, error) {
	if len(profiles) >= entities.MaxProfiles {
		return profiles, entities.ServiceProfile{}, ErrTooManyProfiles
	}
	p := entities.NewServiceProfile()
	return append(profiles, p), p, nil
}

// RemoveProfile deletes the profile with id, keeping at least one.
func RemoveProfile(profiles []entities.ServiceProfile, id string) ([]entities.ServiceProfile, error) {
	idx := indexOfProfile(profiles, id)
	if idx < 0 {
		return profiles, ErrProfileNotFound
	}
	if len(profiles) <= entities.MinProfiles {
		return profiles, ErrTooFewProfiles
	}
	out := make([]entities.ServiceProfile, 0, len(profiles)-1)
	out = append(out, profiles[:idx]...)
	return append(out, profiles[idx+1:]...), nil
}

// ProfilePatch carries the fields a caller wants to change; nil fields are untouched.
type ProfilePatch struct {
	Name              *string
	Region            *string
	TierKey           *string
	StorageGB         *int
	Months            *int
	UnitPriceOverride *string
}

// UpdateProfile mutates one profile in place by field.
func UpdateProfile(profiles []entities.ServiceProfile, id string, patch ProfilePatch) error {
	idx := indexOfProfile(profiles, id)
	if idx < 0 {
		return ErrProfileNotFound
	}
	p := &profiles[idx]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Region != nil {
		if !strings.EqualFold(strings.TrimSpace(*patch.Region), strings.TrimSpace(p.Region)) {
			// a tier belongs to one region bucket
			p.TierKey = ""
		}
		p.Region = strings.TrimSpace(*patch.Region)
	}
	if patch.TierKey != nil {
		p.TierKey = strings.TrimSpace(*patch.TierKey)
	}
	if patch.StorageGB != nil {
		p.StorageGB = *patch.StorageGB
	}
	if patch.Months != nil {
		p.Months = *patch.Months
	}
	if patch.UnitPriceOverride != nil {
		p.UnitPriceOverride = *patch.UnitPriceOverride
	}
	return nil
}

func indexOfProfile(profiles []entities.ServiceProfile, id string) int {
	for i := range profiles {
		if profiles[i].ID == id {
			return i
		}
	}
	return -1
}
