package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/logging"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/metrics"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrNoOrderSummary          = errors.New("no order summary")
	ErrGatewayOptionNotFound   = errors.New("gateway option not found")
	ErrPaymentGatewayNotFound  = errors.New("payment gateway not configured")
	ErrPaymentReferenceMissing = errors.New("payment reference missing")
)

// Statuses that count as a successful payment, compared case-insensitively.
var successfulPaymentStatuses = map[string]struct{}{
	"successful": {},
	"completed":  {},
	"paid":       {},
	"success":    {},
	"approved":   {},
}

const paymentStatusFailed = "failed"

// IsPaymentComplete reports whether no further payment action is needed: either the
// backend said payment is not required, or the transaction (then the payment block)
// carries a successful status.
func IsPaymentComplete(summary *entities.OrderSummary) bool {
	if summary == nil {
		return false
	}
	if summary.Payment != nil && summary.Payment.Required != nil && !*summary.Payment.Required {
		return true
	}
	_, ok := successfulPaymentStatuses[paymentStatus(summary)]
	return ok
}

func IsPaymentFailed(summary *entities.OrderSummary) bool {
	return summary != nil && paymentStatus(summary) == paymentStatusFailed
}

func paymentStatus(summary *entities.OrderSummary) string {
	if tx := summary.Transaction; tx != nil && strings.TrimSpace(tx.Status) != "" {
		return strings.ToLower(strings.TrimSpace(tx.Status))
	}
	if p := summary.Payment; p != nil {
		return strings.ToLower(strings.TrimSpace(p.Status))
	}
	return ""
}

// SelectedGateway returns the gateway option the user picked, or the first option
// when nothing (or something stale) is selected.
func SelectedGateway(summary *entities.OrderSummary) (entities.GatewayOption, bool) {
	if summary == nil || len(summary.GatewayOptions) == 0 {
		return entities.GatewayOption{}, false
	}
	if summary.SelectedGatewayRef != "" {
		for _, opt := range summary.GatewayOptions {
			if opt.Reference() == summary.SelectedGatewayRef {
				return opt, true
			}
		}
	}
	return summary.GatewayOptions[0], true
}

// SelectGateway records the user's gateway choice by option reference.
func SelectGateway(summary *entities.OrderSummary, reference string) error {
	if summary == nil {
		return ErrNoOrderSummary
	}
	reference = strings.TrimSpace(reference)
	for _, opt := range summary.GatewayOptions {
		if opt.Reference() == reference {
			summary.SelectedGatewayRef = reference
			return nil
		}
	}
	return ErrGatewayOptionNotFound
}

// SetGatewayOptions replaces the options after a refresh. The previous selection is
// kept while an option with the same reference still exists.
func SetGatewayOptions(summary *entities.OrderSummary, options []entities.GatewayOption) {
	if summary == nil {
		return
	}
	summary.GatewayOptions = options
	if summary.SelectedGatewayRef == "" {
		return
	}
	for _, opt := range options {
		if opt.Reference() == summary.SelectedGatewayRef {
			return
		}
	}
	summary.SelectedGatewayRef = ""
}

// IPaymentTracker refreshes the payment status of an order summary from the
// provider behind the selected gateway option.
type IPaymentTracker interface {
	Refresh(ctx context.Context, summary *entities.OrderSummary) (complete bool, err error)
}

type PaymentTracker struct {
	gateways map[string]interfaces.IPaymentGateway
}

var _ IPaymentTracker = (*PaymentTracker)(nil)

func NewPaymentTracker(gateways ...interfaces.IPaymentGateway) *PaymentTracker {
	t := &PaymentTracker{gateways: map[string]interfaces.IPaymentGateway{}}
	for _, g := range gateways {
		if g == nil {
			continue
		}
		t.gateways[strings.ToLower(g.Name())] = g
	}
	return t
}

func (t *PaymentTracker) Refresh(ctx context.Context, summary *entities.OrderSummary) (bool, error) {
	log := logging.L()
	if summary == nil {
		return false, ErrNoOrderSummary
	}
	if IsPaymentComplete(summary) {
		return true, nil
	}
	opt, ok := SelectedGateway(summary)
	if !ok {
		log.Info("[payment][usecase] refresh skipped, no gateway options", zap.String("summary_id", summary.ID))
		return false, ErrGatewayOptionNotFound
	}
	name := strings.ToLower(strings.TrimSpace(opt.Gateway))
	gateway, ok := t.gateways[name]
	if !ok {
		log.Warn("[payment][usecase] gateway not configured", zap.String("gateway", name))
		metrics.PaymentRefreshTotal.WithLabelValues(name, "unconfigured").Inc()
		return false, ErrPaymentGatewayNotFound
	}
	ref := opt.Reference()
	if ref == "" {
		metrics.PaymentRefreshTotal.WithLabelValues(name, "error").Inc()
		return false, ErrPaymentReferenceMissing
	}

	log.Info("[payment][usecase] refresh start", zap.String("gateway", name), zap.String("reference", ref))
	status, err := gateway.PaymentStatus(ctx, ref)
	if err != nil {
		log.Error("[payment][usecase] refresh failed", zap.String("gateway", name), zap.Error(err))
		metrics.PaymentRefreshTotal.WithLabelValues(name, "error").Inc()
		return false, err
	}
	status = normalizeProviderStatus(status)
	if summary.Transaction == nil {
		summary.Transaction = &entities.Transaction{}
	}
	summary.Transaction.Status = status
	if summary.Payment != nil {
		summary.Payment.Status = status
	}

	complete := IsPaymentComplete(summary)
	outcome := "pending"
	switch {
	case complete:
		outcome = "complete"
	case IsPaymentFailed(summary):
		outcome = "failed"
	}
	metrics.PaymentRefreshTotal.WithLabelValues(name, outcome).Inc()
	log.Info("[payment][usecase] refresh done", zap.String("gateway", name), zap.String("status", status), zap.Bool("complete", complete))
	return complete, nil
}

// normalizeProviderStatus folds provider terminal failures into "failed".
func normalizeProviderStatus(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	switch s {
	case "rejected", "cancelled", "canceled", "refunded", "charged_back":
		return paymentStatusFailed
	}
	return s
}
