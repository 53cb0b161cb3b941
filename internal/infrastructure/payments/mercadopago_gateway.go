package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/logging"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

const MercadoPagoGatewayName = "mercadopago"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidMercadoPagoReference = errors.New("mercado pago payment reference must be numeric")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the SDK client. In mock mode no token is needed and
// every payment reports as approved.
func NewMercadoPagoGateway(accessToken string, mockMode bool) (*MercadoPagoGateway, error) {
	log := logging.L()
	if mockMode {
		log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if strings.TrimSpace(accessToken) == "" {
		log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func NewMercadoPagoGatewayWithClient(client payment.Client) *MercadoPagoGateway {
	return &MercadoPagoGateway{client: client}
}

func (g *MercadoPagoGateway) Name() string {
	return MercadoPagoGatewayName
}

// PaymentStatus looks up a payment by its Mercado Pago id and returns the provider
// status (approved, pending, rejected, ...).
func (g *MercadoPagoGateway) PaymentStatus(ctx context.Context, reference string) (string, error) {
	log := logging.L()
	reference = strings.TrimSpace(reference)
	if g != nil && g.mockMode {
		log.Info("[payment][gateway] mock status lookup", zap.String("reference", reference))
		return "approved", nil
	}
	if g == nil || g.client == nil {
		log.Warn("[payment][gateway] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(reference)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidMercadoPagoReference, reference)
	}

	log.Info("[payment][gateway] status lookup start", zap.Int("provider_payment_id", id))
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Error("[payment][gateway] sdk get failed", zap.Int("provider_payment_id", id), zap.Error(err))
		return "", err
	}
	log.Info("[payment][gateway] status lookup success",
		zap.Int("provider_payment_id", resp.ID),
		zap.String("provider_status", resp.Status),
		zap.String("status_detail", resp.StatusDetail))
	return resp.Status, nil
}
