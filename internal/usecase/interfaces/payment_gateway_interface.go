package interfaces

import "context"

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

// IPaymentGateway looks up the status of a payment at an external provider
// (e.g. Mercado Pago). Name matches GatewayOption.Gateway.
type IPaymentGateway interface {
	Name() string
	PaymentStatus(ctx context.Context, reference string) (providerStatus string, err error)
}
