package usecase

import (
	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is a percentage. It stays at 0 until finance exposes per-country
// tax rates; callers should not infer a tax policy from it.
var DefaultTaxRate = decimal.Zero

const (
	TotalsSourceLocal   = "local"
	TotalsSourceBackend = "backend"
)

// Aggregate sums resolved profiles into display totals. When the backend reported a
// pricing breakdown for a created order, that breakdown replaces the local numbers.
func Aggregate(resolved []entities.ResolvedProfile, displayCurrency string, breakdown *entities.PricingBreakdown) entities.SummaryTotals {
	currency := aggregateCurrency(resolved, displayCurrency)

	subtotal := decimal.Zero
	mismatch := false
	for _, r := range resolved {
		subtotal = subtotal.Add(r.Subtotal)
		if r.HasTierData && r.Currency != currency {
			mismatch = true
		}
	}
	tax := subtotal.Mul(DefaultTaxRate).Div(decimal.NewFromInt(100))

	totals := entities.SummaryTotals{
		Subtotal:         subtotal,
		Tax:              tax,
		Total:            subtotal.Add(tax),
		TaxRate:          DefaultTaxRate,
		Currency:         currency,
		CurrencyMismatch: mismatch,
		Source:           TotalsSourceLocal,
	}

	if !hasBackendTotals(breakdown) {
		return totals
	}

	totals.Subtotal = breakdown.Subtotal.Or(totals.Subtotal)
	totals.Tax = breakdown.Tax.Or(decimal.Zero)
	totals.TaxRate = breakdown.TaxRate.Or(decimal.Zero)
	totals.Total = breakdown.Total.Or(totals.Subtotal.Add(totals.Tax))
	if breakdown.Currency != "" {
		totals.Currency = breakdown.Currency
	}
	totals.Lines = breakdown.Lines
	totals.Source = TotalsSourceBackend
	return totals
}

func hasBackendTotals(b *entities.PricingBreakdown) bool {
	return b != nil && (b.Subtotal.Valid || b.Total.Valid)
}

// aggregateCurrency is the currency of the first priced line, then the display
// currency, then USD. Amounts are never converted.
func aggregateCurrency(resolved []entities.ResolvedProfile, displayCurrency string) string {
	for _, r := range resolved {
		if r.HasTierData && r.Currency != "" {
			return r.Currency
		}
	}
	return resolveCurrency(entities.PricingRow{}, displayCurrency)
}

// GatewayFee is read from the selected option's fee breakdown, then from the
// transaction fee fields, defaulting to 0.
func GatewayFee(summary *entities.OrderSummary) decimal.Decimal {
	if summary == nil {
		return decimal.Zero
	}
	if opt, ok := SelectedGateway(summary); ok && opt.FeeBreakdown != nil {
		for _, f := range []entities.FlexDecimal{opt.FeeBreakdown.TotalFee, opt.FeeBreakdown.GatewayFee} {
			if f.Valid {
				return f.Value
			}
		}
	}
	if tx := summary.Transaction; tx != nil {
		for _, f := range []entities.FlexDecimal{tx.GatewayFee, tx.TransactionFee, tx.Fee} {
			if f.Valid {
				return f.Value
			}
		}
	}
	return decimal.Zero
}

// GrandTotalWithFees is the displayed total plus the gateway fee.
func GrandTotalWithFees(totals entities.SummaryTotals, summary *entities.OrderSummary) decimal.Decimal {
	return totals.Total.Add(GatewayFee(summary))
}
