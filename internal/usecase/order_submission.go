package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/logging"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/metrics"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrUnresolvableProduct   = errors.New("unable to resolve product for storage tier")
	ErrNoProfilesToSubmit    = errors.New("no service profiles to submit")
	ErrInvalidOrderResponse  = errors.New("invalid order response")
	ErrOrderSubmitterMissing = errors.New("order submitter not configured")
)

const minProfileNameLength = 3

// SubmissionOptions carries the order-level fields of the payload.
type SubmissionOptions struct {
	FastTrack  bool
	CountryISO string
	TenantID   string
	UserID     string
}

// BuildOrderPayload turns resolved profiles into the submission body. It fails on the
// first profile whose tier has no integer product id; nothing is submitted then.
func BuildOrderPayload(octx entities.OrderContext, resolved []entities.ResolvedProfile, opts SubmissionOptions) (entities.OrderPayload, error) {
	if len(resolved) == 0 {
		return entities.OrderPayload{}, ErrNoProfilesToSubmit
	}
	items := make([]entities.OrderPayloadItem, 0, len(resolved))
	for i, r := range resolved {
		productID, ok := productableID(r)
		if !ok {
			return entities.OrderPayload{}, fmt.Errorf("%w: profile %d (tier %q)", ErrUnresolvableProduct, i+1, r.Profile.TierKey)
		}
		region := strings.TrimSpace(r.Profile.Region)
		item := entities.OrderPayloadItem{
			Region:        region,
			ProductableID: productID,
			StorageGB:     r.StorageGB.IntPart(),
			Quantity:      1,
			Months:        r.Months,
			Name:          profileDisplayName(r.Profile.Name, region),
			Metadata: entities.OrderItemMetadata{
				TierKey:   r.Profile.TierKey,
				Currency:  r.Currency,
				UnitPrice: r.UnitPrice,
				Subtotal:  r.Subtotal,
				LineIndex: i,
			},
		}
		if r.Tier != nil {
			item.Metadata.TierName = r.Tier.Name
		} else if r.TierRow != nil {
			item.Metadata.TierName = r.TierRow.Product.Name
		}
		items = append(items, item)
	}

	payload := entities.OrderPayload{
		Items:      items,
		FastTrack:  opts.FastTrack,
		CountryISO: strings.ToUpper(strings.TrimSpace(opts.CountryISO)),
		TenantID:   strings.TrimSpace(opts.TenantID),
	}
	if userID := strings.TrimSpace(opts.UserID); userID != "" && octx != entities.ContextClient {
		if _, err := uuid.Parse(userID); err == nil {
			payload.UserID = userID
		}
	}
	return payload, nil
}

func productableID(r entities.ResolvedProfile) (int, bool) {
	candidates := make([]string, 0, 2)
	if r.TierRow != nil {
		candidates = append(candidates, r.TierRow.Product.ProductableID.String())
	}
	if r.Tier != nil {
		candidates = append(candidates, r.Tier.ProductableID)
	}
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if id, err := strconv.Atoi(c); err == nil && id > 0 {
			return id, true
		}
		if d, err := decimal.NewFromString(c); err == nil && d.IsInteger() && d.IsPositive() {
			return int(d.IntPart()), true
		}
	}
	return 0, false
}

func profileDisplayName(name, region string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < minProfileNameLength {
		return strings.TrimSpace("Silo Storage " + region)
	}
	return name
}

type orderResponseBody struct {
	Transaction            *entities.Transaction      `json:"transaction"`
	Order                  *entities.Order            `json:"order"`
	Payment                *entities.Payment          `json:"payment"`
	Account                *entities.Account          `json:"account"`
	Accounts               []entities.Account         `json:"accounts"`
	OrderItems             []entities.OrderItem       `json:"order_items"`
	ObjectStorageAccountID entities.FlexString        `json:"object_storage_account_id"`
	PaymentGatewayOptions  []entities.GatewayOption   `json:"payment_gateway_options"`
	PricingBreakdown       *entities.PricingBreakdown `json:"pricing_breakdown"`
}

var orderResponseKeys = []string{"transaction", "order", "payment", "account", "accounts", "order_items", "object_storage_account_id"}

// NormalizeOrderResponse folds the heterogeneous submission response into one
// OrderSummary. Both `{"data": {...}}` and the bare object are accepted.
func NormalizeOrderResponse(raw json.RawMessage, resolved []entities.ResolvedProfile, items []entities.OrderPayloadItem) (*entities.OrderSummary, error) {
	body, err := unwrapDataEnvelope(raw)
	if err != nil {
		return nil, err
	}
	var resp orderResponseBody
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOrderResponse, err)
	}

	summary := &entities.OrderSummary{
		ID:             uuid.NewString(),
		Transaction:    resp.Transaction,
		Order:          resp.Order,
		Payment:        resp.Payment,
		OrderItems:     resp.OrderItems,
		Profiles:       resolved,
		SubmittedItems: items,
		CreatedAt:      time.Now().UTC(),
	}
	summary.GatewayOptions = collectGatewayOptions(resp)
	if opt, ok := SelectedGateway(summary); ok {
		summary.SelectedGatewayRef = opt.Reference()
	}
	summary.Accounts, summary.AccountIDs = collectAccounts(resp)
	switch {
	case resp.Transaction != nil && resp.Transaction.PricingBreakdown != nil:
		summary.PricingBreakdown = resp.Transaction.PricingBreakdown
	case resp.Order != nil && resp.Order.PricingBreakdown != nil:
		summary.PricingBreakdown = resp.Order.PricingBreakdown
	default:
		summary.PricingBreakdown = resp.PricingBreakdown
	}
	return summary, nil
}

func unwrapDataEnvelope(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrInvalidOrderResponse
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOrderResponse, err)
	}
	for _, k := range orderResponseKeys {
		if _, ok := top[k]; ok {
			return trimmed, nil
		}
	}
	if data := bytes.TrimSpace(top["data"]); len(data) > 0 && data[0] == '{' {
		return data, nil
	}
	return trimmed, nil
}

func collectGatewayOptions(resp orderResponseBody) []entities.GatewayOption {
	var sources [][]entities.GatewayOption
	if p := resp.Payment; p != nil {
		sources = append(sources, p.GatewayOptions, p.Options, p.PaymentGatewayOptions)
	}
	if tx := resp.Transaction; tx != nil {
		sources = append(sources, tx.PaymentGatewayOptions)
	}
	sources = append(sources, resp.PaymentGatewayOptions)

	out := make([]entities.GatewayOption, 0)
	seen := map[string]struct{}{}
	for _, src := range sources {
		for _, opt := range src {
			if ref := opt.Reference(); ref != "" {
				if _, dup := seen[ref]; dup {
					continue
				}
				seen[ref] = struct{}{}
			}
			out = append(out, opt)
		}
	}
	return out
}

// collectAccounts gathers every storage account the response mentions, in order of
// first appearance.
func collectAccounts(resp orderResponseBody) ([]entities.Account, []string) {
	accounts := make([]entities.Account, 0)
	ids := make([]string, 0)
	index := map[string]int{}
	add := func(acc entities.Account) {
		id := strings.TrimSpace(acc.ID.String())
		if id == "" {
			return
		}
		acc.ID = entities.FlexString(id)
		if i, ok := index[id]; ok {
			if accounts[i].Name == "" && accounts[i].Region == "" {
				accounts[i] = acc
			}
			return
		}
		index[id] = len(accounts)
		accounts = append(accounts, acc)
		ids = append(ids, id)
	}

	if resp.Account != nil {
		add(*resp.Account)
	}
	for _, acc := range resp.Accounts {
		add(acc)
	}
	for _, item := range resp.OrderItems {
		if item.Account != nil {
			add(*item.Account)
		}
		add(entities.Account{ID: item.ObjectStorageAccountID, Region: item.Region})
		add(entities.Account{ID: item.AccountID, Region: item.Region})
	}
	add(entities.Account{ID: resp.ObjectStorageAccountID})
	return accounts, ids
}

// SubmitOrder builds, posts and normalizes an order. On any failure no summary is
// returned.
func SubmitOrder(ctx context.Context, submitter interfaces.IOrderSubmitter, octx entities.OrderContext, resolved []entities.ResolvedProfile, opts SubmissionOptions) (*entities.OrderSummary, error) {
	log := logging.L()
	mode := string(entities.ModeStandard)
	if opts.FastTrack {
		mode = string(entities.ModeFastTrack)
	}
	if submitter == nil {
		return nil, ErrOrderSubmitterMissing
	}

	payload, err := BuildOrderPayload(octx, resolved, opts)
	if err != nil {
		log.Warn("[order][usecase] payload rejected", zap.String("context", string(octx)), zap.Error(err))
		metrics.OrderSubmissionsTotal.WithLabelValues(mode, "rejected").Inc()
		return nil, err
	}

	log.Info("[order][usecase] submit start", zap.String("context", string(octx)), zap.String("mode", mode), zap.Int("items", len(payload.Items)))
	raw, err := submitter.SubmitOrder(ctx, payload)
	if err != nil {
		log.Error("[order][usecase] submit failed", zap.String("mode", mode), zap.Error(err))
		metrics.OrderSubmissionsTotal.WithLabelValues(mode, "error").Inc()
		return nil, err
	}

	summary, err := NormalizeOrderResponse(raw, resolved, payload.Items)
	if err != nil {
		log.Error("[order][usecase] response normalization failed", zap.Int("raw_len", len(raw)), zap.Error(err))
		metrics.OrderSubmissionsTotal.WithLabelValues(mode, "error").Inc()
		return nil, err
	}
	summary.FastTrack = opts.FastTrack
	metrics.OrderSubmissionsTotal.WithLabelValues(mode, "ok").Inc()
	log.Info("[order][usecase] submit success",
		zap.String("summary_id", summary.ID),
		zap.Int("gateway_options", len(summary.GatewayOptions)),
		zap.Strings("account_ids", summary.AccountIDs))
	return summary, nil
}
