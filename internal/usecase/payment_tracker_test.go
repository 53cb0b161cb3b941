package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	mock_interfaces "github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func boolPtr(b bool) *bool { return &b }

func TestIsPaymentComplete(t *testing.T) {
	cases := []struct {
		name     string
		summary  *entities.OrderSummary
		complete bool
		failed   bool
	}{
		{"nil summary", nil, false, false},
		{"payment not required without status", &entities.OrderSummary{Payment: &entities.Payment{Required: boolPtr(false)}}, true, false},
		{"required and pending", &entities.OrderSummary{Payment: &entities.Payment{Required: boolPtr(true), Status: "pending"}}, false, false},
		{"transaction approved", &entities.OrderSummary{Transaction: &entities.Transaction{Status: "APPROVED"}}, true, false},
		{"payment paid", &entities.OrderSummary{Payment: &entities.Payment{Status: " Paid "}}, true, false},
		{"transaction status wins", &entities.OrderSummary{Transaction: &entities.Transaction{Status: "pending"}, Payment: &entities.Payment{Status: "successful"}}, false, false},
		{"failed", &entities.OrderSummary{Transaction: &entities.Transaction{Status: "failed"}}, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPaymentComplete(tc.summary); got != tc.complete {
				t.Fatalf("IsPaymentComplete = %v, want %v", got, tc.complete)
			}
			if got := IsPaymentFailed(tc.summary); got != tc.failed {
				t.Fatalf("IsPaymentFailed = %v, want %v", got, tc.failed)
			}
		})
	}
}

func TestGatewaySelection(t *testing.T) {
	summary := &entities.OrderSummary{GatewayOptions: []entities.GatewayOption{
		{ID: "1", Gateway: "mercadopago", TransactionReference: "tx-1"},
		{ID: "2", Gateway: "paystack"},
	}}

	t.Run("first option by default", func(t *testing.T) {
		opt, ok := SelectedGateway(summary)
		if !ok || opt.Reference() != "tx-1" {
			t.Fatalf("unexpected default %+v", opt)
		}
	})

	t.Run("switch by reference", func(t *testing.T) {
		if err := SelectGateway(summary, "2"); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if opt, _ := SelectedGateway(summary); opt.Gateway != "paystack" {
			t.Fatalf("unexpected selection %+v", opt)
		}
		if err := SelectGateway(summary, "nope"); !errors.Is(err, ErrGatewayOptionNotFound) {
			t.Fatalf("expected ErrGatewayOptionNotFound, got %v", err)
		}
	})

	t.Run("refresh keeps selection still offered", func(t *testing.T) {
		SetGatewayOptions(summary, []entities.GatewayOption{{ID: "3"}, {ID: "2", Gateway: "paystack"}})
		if summary.SelectedGatewayRef != "2" {
			t.Fatalf("selection lost: %q", summary.SelectedGatewayRef)
		}
		SetGatewayOptions(summary, []entities.GatewayOption{{ID: "4"}})
		if summary.SelectedGatewayRef != "" {
			t.Fatalf("stale selection kept: %q", summary.SelectedGatewayRef)
		}
		if opt, _ := SelectedGateway(summary); opt.ID != "4" {
			t.Fatalf("expected first option after reset, got %+v", opt)
		}
	})
}

func TestPaymentTracker_Refresh(t *testing.T) {
	newSummary := func() *entities.OrderSummary {
		return &entities.OrderSummary{
			Transaction:    &entities.Transaction{Status: "pending"},
			Payment:        &entities.Payment{Required: boolPtr(true), Status: "pending"},
			GatewayOptions: []entities.GatewayOption{{ID: "99", Gateway: "MercadoPago"}},
		}
	}

	t.Run("approved completes payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().Name().Return("mercadopago")
		gw.EXPECT().PaymentStatus(gomock.Any(), "99").Return("approved", nil)

		summary := newSummary()
		complete, err := NewPaymentTracker(gw).Refresh(context.Background(), summary)
		if err != nil || !complete {
			t.Fatalf("expected completion, got %v %v", complete, err)
		}
		if summary.Payment.Status != "approved" {
			t.Fatalf("payment status not updated: %q", summary.Payment.Status)
		}
	})

	t.Run("rejected is failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().Name().Return("mercadopago")
		gw.EXPECT().PaymentStatus(gomock.Any(), "99").Return("rejected", nil)

		summary := newSummary()
		complete, err := NewPaymentTracker(gw).Refresh(context.Background(), summary)
		if err != nil || complete || !IsPaymentFailed(summary) {
			t.Fatalf("expected failed payment, got complete=%v err=%v", complete, err)
		}
	})

	t.Run("gateway error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().Name().Return("mercadopago")
		gw.EXPECT().PaymentStatus(gomock.Any(), "99").Return("", errors.New("boom"))

		summary := newSummary()
		if _, err := NewPaymentTracker(gw).Refresh(context.Background(), summary); err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
		if summary.Transaction.Status != "pending" {
			t.Fatalf("status changed on error")
		}
	})

	t.Run("unknown gateway", func(t *testing.T) {
		if _, err := NewPaymentTracker().Refresh(context.Background(), newSummary()); !errors.Is(err, ErrPaymentGatewayNotFound) {
			t.Fatalf("expected ErrPaymentGatewayNotFound, got %v", err)
		}
	})

	t.Run("already complete skips gateway", func(t *testing.T) {
		summary := &entities.OrderSummary{Payment: &entities.Payment{Required: boolPtr(false)}}
		complete, err := NewPaymentTracker().Refresh(context.Background(), summary)
		if err != nil || !complete {
			t.Fatalf("expected complete without gateway call")
		}
	})
}
