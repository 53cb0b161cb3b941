package interfaces

import (
	"context"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
)

//go:generate mockgen -source=order_summary_repository_interface.go -destination=mocks/order_summary_repository_interface_mock.go -package=mock_interfaces

// IOrderSummaryRepository keeps an audit copy of every normalized order summary.
type IOrderSummaryRepository interface {
	Save(ctx context.Context, summary entities.OrderSummary) error
	GetByID(ctx context.Context, id string) (entities.OrderSummary, error)
	ListBySessionID(ctx context.Context, sessionID string) ([]entities.OrderSummary, error)
}
