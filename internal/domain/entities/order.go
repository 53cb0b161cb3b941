package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkflowMode selects the stage sequence of the order wizard.
type WorkflowMode string

const (
	ModeStandard  WorkflowMode = "standard"
	ModeFastTrack WorkflowMode = "fast-track"
)

// OrderContext identifies who is placing the order.
type OrderContext string

const (
	ContextAdmin  OrderContext = "admin"
	ContextTenant OrderContext = "tenant"
	ContextClient OrderContext = "client"
)

// SummaryTotals are the totals shown to the user. Source is "local" when computed
// from resolved profiles and "backend" when a pricing breakdown replaced them.
type SummaryTotals struct {
	Subtotal         decimal.Decimal `json:"subtotal"`
	Tax              decimal.Decimal `json:"tax"`
	Total            decimal.Decimal `json:"total"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
	Currency         string          `json:"currency"`
	CurrencyMismatch bool            `json:"currency_mismatch"`
	Source           string          `json:"source"`
	Lines            []BreakdownLine `json:"lines,omitempty"`
}

type PricingBreakdown struct {
	Subtotal FlexDecimal     `json:"subtotal"`
	Tax      FlexDecimal     `json:"tax"`
	Total    FlexDecimal     `json:"total"`
	TaxRate  FlexDecimal     `json:"tax_rate"`
	Currency string          `json:"currency"`
	Lines    []BreakdownLine `json:"breakdown,omitempty"`
}

type BreakdownLine struct {
	Label    string      `json:"label"`
	Quantity FlexDecimal `json:"quantity"`
	Amount   FlexDecimal `json:"amount"`
}

type FeeBreakdown struct {
	TotalFee   FlexDecimal `json:"total_fee"`
	GatewayFee FlexDecimal `json:"gateway_fee"`
}

// GatewayOption is one way the user can pay for a created order.
type GatewayOption struct {
	ID                   FlexString    `json:"id"`
	Gateway              string        `json:"gateway"`
	Name                 string        `json:"name,omitempty"`
	TransactionReference FlexString    `json:"transaction_reference"`
	PaymentURL           string        `json:"payment_url,omitempty"`
	AuthorizationURL     string        `json:"authorization_url,omitempty"`
	Amount               FlexDecimal   `json:"amount"`
	Currency             string        `json:"currency,omitempty"`
	FeeBreakdown         *FeeBreakdown `json:"fee_breakdown,omitempty"`
}

// Reference is the identifier used to match options across refreshes.
func (o GatewayOption) Reference() string {
	if o.TransactionReference != "" {
		return o.TransactionReference.String()
	}
	return o.ID.String()
}

type Transaction struct {
	ID                    FlexString        `json:"id"`
	Identifier            FlexString        `json:"identifier,omitempty"`
	Reference             FlexString        `json:"reference,omitempty"`
	Status                string            `json:"status"`
	Amount                FlexDecimal       `json:"amount"`
	Currency              string            `json:"currency,omitempty"`
	TransactionFee        FlexDecimal       `json:"transaction_fee"`
	GatewayFee            FlexDecimal       `json:"gateway_fee"`
	Fee                   FlexDecimal       `json:"fee"`
	PricingBreakdown      *PricingBreakdown `json:"pricing_breakdown,omitempty"`
	PaymentGatewayOptions []GatewayOption   `json:"payment_gateway_options,omitempty"`
}

type Order struct {
	ID               FlexString        `json:"id"`
	Identifier       FlexString        `json:"identifier,omitempty"`
	Status           string            `json:"status,omitempty"`
	PricingBreakdown *PricingBreakdown `json:"pricing_breakdown,omitempty"`
}

type Payment struct {
	Required              *bool           `json:"required,omitempty"`
	Status                string          `json:"status,omitempty"`
	GatewayOptions        []GatewayOption `json:"gateway_options,omitempty"`
	Options               []GatewayOption `json:"options,omitempty"`
	PaymentGatewayOptions []GatewayOption `json:"payment_gateway_options,omitempty"`
}

type Account struct {
	ID     FlexString `json:"id"`
	Name   string     `json:"name,omitempty"`
	Region string     `json:"region,omitempty"`
	Status string     `json:"status,omitempty"`
}

type OrderItem struct {
	ID                     FlexString  `json:"id"`
	Region                 string      `json:"region,omitempty"`
	ObjectStorageAccountID FlexString  `json:"object_storage_account_id,omitempty"`
	AccountID              FlexString  `json:"account_id,omitempty"`
	Account                *Account    `json:"account,omitempty"`
	Months                 int         `json:"months,omitempty"`
	StorageGB              FlexDecimal `json:"storage_gb"`
}

// OrderSummary is the canonical in-memory representation of a created order.
type OrderSummary struct {
	ID                 string             `json:"id"`
	SessionID          string             `json:"session_id"`
	FastTrack          bool               `json:"fast_track"`
	Transaction        *Transaction       `json:"transaction,omitempty"`
	Order              *Order             `json:"order,omitempty"`
	Payment            *Payment           `json:"payment,omitempty"`
	GatewayOptions     []GatewayOption    `json:"gateway_options"`
	SelectedGatewayRef string             `json:"selected_gateway_ref,omitempty"`
	PricingBreakdown   *PricingBreakdown  `json:"pricing_breakdown,omitempty"`
	Accounts           []Account          `json:"accounts"`
	AccountIDs         []string           `json:"account_ids"`
	OrderItems         []OrderItem        `json:"order_items"`
	Profiles           []ResolvedProfile  `json:"profiles"`
	SubmittedItems     []OrderPayloadItem `json:"submitted_items"`
	CreatedAt          time.Time          `json:"created_at"`
}

// OrderPayload is the body of the order submission request.
type OrderPayload struct {
	Items      []OrderPayloadItem `json:"object_storage_items"`
	FastTrack  bool               `json:"fast_track"`
	CountryISO string             `json:"country_iso"`
	TenantID   string             `json:"tenant_id,omitempty"`
	UserID     string             `json:"user_id,omitempty"`
}

type OrderPayloadItem struct {
	Region        string            `json:"region"`
	ProductableID int               `json:"productable_id"`
	StorageGB     int64             `json:"storage_gb"`
	Quantity      int               `json:"quantity"`
	Months        int               `json:"months"`
	Name          string            `json:"name"`
	Metadata      OrderItemMetadata `json:"metadata"`
}

// OrderItemMetadata echoes the UI-side pricing inputs for auditability.
type OrderItemMetadata struct {
	TierKey   string          `json:"tier_key"`
	TierName  string          `json:"tier_name"`
	Currency  string          `json:"currency"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	LineIndex int             `json:"line_index"`
}
