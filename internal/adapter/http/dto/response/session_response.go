package response

import (
	"time"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase"

	"github.com/shopspring/decimal"
)

// Money is rendered with two decimals as a string so clients never see float noise.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type TotalsResponse struct {
	Subtotal         string `json:"subtotal"`
	Tax              string `json:"tax"`
	TaxRate          string `json:"tax_rate"`
	Total            string `json:"total"`
	GatewayFee       string `json:"gateway_fee"`
	GrandTotal       string `json:"grand_total"`
	Currency         string `json:"currency"`
	CurrencyMismatch bool   `json:"currency_mismatch"`
	Source           string `json:"source"`
}

type ProfileResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Region               string `json:"region"`
	TierKey              string `json:"tier_key"`
	TierLabel            string `json:"tier_label,omitempty"`
	StorageGB            string `json:"storage_gb"`
	Months               int    `json:"months"`
	UnitPrice            string `json:"unit_price"`
	UnitPriceOverridden  bool   `json:"unit_price_overridden"`
	Subtotal             string `json:"subtotal"`
	Currency             string `json:"currency"`
	HasTierData          bool   `json:"has_tier_data"`
	UsingFallbackCatalog bool   `json:"using_fallback_catalog"`
}

type GatewayOptionResponse struct {
	Reference  string `json:"reference"`
	Gateway    string `json:"gateway"`
	Name       string `json:"name,omitempty"`
	PaymentURL string `json:"payment_url,omitempty"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency,omitempty"`
	Selected   bool   `json:"selected"`
}

type SummaryResponse struct {
	ID                string                  `json:"id"`
	FastTrack         bool                    `json:"fast_track"`
	TransactionID     string                  `json:"transaction_id,omitempty"`
	TransactionStatus string                  `json:"transaction_status,omitempty"`
	OrderID           string                  `json:"order_id,omitempty"`
	AccountIDs        []string                `json:"account_ids"`
	GatewayOptions    []GatewayOptionResponse `json:"gateway_options"`
	CreatedAt         time.Time               `json:"created_at"`
}

type SessionResponse struct {
	ID                   string                           `json:"id"`
	Context              string                           `json:"context"`
	Mode                 string                           `json:"mode"`
	Stages               []string                         `json:"stages"`
	ActiveStep           int                              `json:"active_step"`
	Stage                string                           `json:"stage"`
	BillingCountry       string                           `json:"billing_country"`
	DisplayCurrency      string                           `json:"display_currency"`
	TenantID             string                           `json:"tenant_id,omitempty"`
	Profiles             []ProfileResponse                `json:"profiles"`
	Tiers                map[string][]entities.TierOption `json:"tiers"`
	Totals               TotalsResponse                   `json:"totals"`
	Summary              *SummaryResponse                 `json:"summary,omitempty"`
	PaymentComplete      bool                             `json:"payment_complete"`
	PaymentFailed        bool                             `json:"payment_failed"`
	ProvisioningComplete bool                             `json:"provisioning_complete"`
	Credentials          []entities.CredentialEntry       `json:"credentials"`
	UpdatedAt            time.Time                        `json:"updated_at"`
}

func FromSessionView(v usecase.SessionView) SessionResponse {
	res := SessionResponse{
		ID:                   v.ID,
		Context:              string(v.Context),
		Mode:                 string(v.Mode),
		Stages:               make([]string, 0, len(v.Stages)),
		ActiveStep:           v.ActiveStep,
		Stage:                string(v.Stage),
		BillingCountry:       v.BillingCountry,
		DisplayCurrency:      v.DisplayCurrency,
		TenantID:             v.TenantID,
		Profiles:             make([]ProfileResponse, 0, len(v.Profiles)),
		Tiers:                map[string][]entities.TierOption{},
		PaymentComplete:      v.PaymentComplete,
		PaymentFailed:        v.PaymentFailed,
		ProvisioningComplete: v.ProvisioningComplete,
		Credentials:          v.Credentials,
		UpdatedAt:            v.UpdatedAt,
	}
	res.Totals = TotalsResponse{
		Subtotal:         Money(v.Totals.Subtotal),
		Tax:              Money(v.Totals.Tax),
		TaxRate:          v.Totals.TaxRate.String(),
		Total:            Money(v.Totals.Total),
		GatewayFee:       Money(v.GatewayFee),
		GrandTotal:       Money(v.GrandTotal),
		Currency:         v.Totals.Currency,
		CurrencyMismatch: v.Totals.CurrencyMismatch,
		Source:           v.Totals.Source,
	}
	if res.Credentials == nil {
		res.Credentials = []entities.CredentialEntry{}
	}
	for _, s := range v.Stages {
		res.Stages = append(res.Stages, string(s))
	}
	for _, p := range v.Profiles {
		res.Profiles = append(res.Profiles, FromResolvedProfile(p))
	}
	for key, entry := range v.Catalog.Buckets {
		if entry != nil {
			res.Tiers[key] = entry.Options
		}
	}
	if v.Summary != nil {
		s := FromOrderSummary(*v.Summary)
		res.Summary = &s
	}
	return res
}

func FromResolvedProfile(p entities.ResolvedProfile) ProfileResponse {
	out := ProfileResponse{
		ID:                   p.Profile.ID,
		Name:                 p.Profile.Name,
		Region:               p.Profile.Region,
		TierKey:              p.Profile.TierKey,
		StorageGB:            p.StorageGB.String(),
		Months:               p.Months,
		UnitPrice:            p.UnitPrice.String(),
		UnitPriceOverridden:  p.UnitPriceOverridden,
		Subtotal:             Money(p.Subtotal),
		Currency:             p.Currency,
		HasTierData:          p.HasTierData,
		UsingFallbackCatalog: p.UsingFallbackCatalog,
	}
	if p.Tier != nil {
		out.TierLabel = p.Tier.Label
	}
	return out
}

func FromOrderSummary(s entities.OrderSummary) SummaryResponse {
	out := SummaryResponse{
		ID:             s.ID,
		FastTrack:      s.FastTrack,
		AccountIDs:     s.AccountIDs,
		GatewayOptions: make([]GatewayOptionResponse, 0, len(s.GatewayOptions)),
		CreatedAt:      s.CreatedAt,
	}
	if out.AccountIDs == nil {
		out.AccountIDs = []string{}
	}
	if s.Transaction != nil {
		out.TransactionID = s.Transaction.ID.String()
		out.TransactionStatus = s.Transaction.Status
	}
	if s.Order != nil {
		out.OrderID = s.Order.ID.String()
	}
	selected, hasSelected := usecase.SelectedGateway(&s)
	for _, opt := range s.GatewayOptions {
		url := opt.PaymentURL
		if url == "" {
			url = opt.AuthorizationURL
		}
		out.GatewayOptions = append(out.GatewayOptions, GatewayOptionResponse{
			Reference:  opt.Reference(),
			Gateway:    opt.Gateway,
			Name:       opt.Name,
			PaymentURL: url,
			Amount:     Money(opt.Amount.Or(decimal.Zero)),
			Currency:   opt.Currency,
			Selected:   hasSelected && selected.Reference() == opt.Reference(),
		})
	}
	return out
}

func FromOrderSummaries(items []entities.OrderSummary) []SummaryResponse {
	out := make([]SummaryResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromOrderSummary(s))
	}
	return out
}
