package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"
	mock_interfaces "github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const globalRows = `[
	{"product": {"productable_id": 9, "name": "Global Tier", "object_storage": {"quota_gb": 100}},
	 "pricing": {"effective": {"price_local": "2.00", "currency": "USD"}}}
]`

func rows(t *testing.T, raw string) []entities.PricingRow {
	t.Helper()
	var out []entities.PricingRow
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("unmarshal rows: %v", err)
	}
	return out
}

func withPricing(t *testing.T, p interfaces.IPricingProvider) {
	t.Helper()
	prev := pricingFactory
	pricingFactory = func(entities.OrderContext) (interfaces.IPricingProvider, error) { return p, nil }
	t.Cleanup(func() { pricingFactory = prev })
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := Root()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseLines(t *testing.T) {
	t.Run("plain and tier key lines", func(t *testing.T) {
		profiles, err := parseLines([]string{"lon1:9:0:12", "lon1:__global__::9:20:6"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profiles[0].TierKey != "9" || profiles[0].Months != 12 || profiles[0].StorageGB != 0 {
			t.Fatalf("unexpected first profile %+v", profiles[0])
		}
		if profiles[1].TierKey != "__global__::9" || profiles[1].StorageGB != 20 || profiles[1].Months != 6 {
			t.Fatalf("unexpected second profile %+v", profiles[1])
		}
		if profiles[0].ID == "" || profiles[0].ID == profiles[1].ID {
			t.Fatalf("profiles need distinct ids")
		}
	})

	t.Run("rejects malformed lines", func(t *testing.T) {
		for _, line := range []string{"lon1:9:12", "lon1:9:x:12", "lon1:9:10:0", "lon1:9:-1:1"} {
			if _, err := parseLines([]string{line}); err == nil {
				t.Fatalf("expected error for %q", line)
			}
		}
	})

	t.Run("enforces profile bounds", func(t *testing.T) {
		if _, err := parseLines(nil); !errors.Is(err, usecase.ErrTooFewProfiles) {
			t.Fatalf("expected ErrTooFewProfiles, got %v", err)
		}
		many := make([]string, entities.MaxProfiles+1)
		for i := range many {
			many[i] = "lon1:9:0:1"
		}
		if _, err := parseLines(many); !errors.Is(err, usecase.ErrTooManyProfiles) {
			t.Fatalf("expected ErrTooManyProfiles, got %v", err)
		}
	})
}

func TestRunQuote(t *testing.T) {
	t.Run("fetches each region once and prices fallback tiers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pricing := mock_interfaces.NewMockIPricingProvider(ctrl)
		pricing.EXPECT().ListPricing(gomock.Any(), "lon1", usecase.ProductTypeObjectStorage).Return(rows(t, globalRows), nil).Times(1)

		profiles, err := parseLines([]string{"LON1:9:0:12", "lon1:9:20:12"})
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		result, err := runQuote(context.Background(), pricing, profiles, "USD")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Totals.Total.Equal(decimal.RequireFromString("28.80")) {
			t.Fatalf("total = %s, want 28.80", result.Totals.Total)
		}
		if !result.Profiles[0].UsingFallbackCatalog {
			t.Fatalf("expected fallback catalog for lon1")
		}
	})

	t.Run("pricing error is wrapped with the region", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pricing := mock_interfaces.NewMockIPricingProvider(ctrl)
		boom := errors.New("boom")
		pricing.EXPECT().ListPricing(gomock.Any(), "lag1", gomock.Any()).Return(nil, boom)

		_, err := runQuote(context.Background(), pricing, []entities.ServiceProfile{{Region: "lag1", Months: 1}}, "")
		if !errors.Is(err, boom) || !strings.Contains(err.Error(), "lag1") {
			t.Fatalf("unexpected error %v", err)
		}
	})
}

func TestQuoteCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pricing := mock_interfaces.NewMockIPricingProvider(ctrl)
	pricing.EXPECT().ListPricing(gomock.Any(), "lon1", gomock.Any()).Return(rows(t, globalRows), nil).AnyTimes()
	withPricing(t, pricing)

	t.Run("text output", func(t *testing.T) {
		out, err := execute(t, "quote", "--line", "lon1:9:0:12", "--line", "lon1:9:20:12")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Global Tier") || !strings.Contains(out, "USD 28.80") {
			t.Fatalf("unexpected output:\n%s", out)
		}
	})

	t.Run("json output", func(t *testing.T) {
		out, err := execute(t, "quote", "--json", "-l", "lon1:9:20:12")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var got struct {
			Totals struct {
				Total    string `json:"total"`
				Currency string `json:"currency"`
			} `json:"totals"`
		}
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("decode: %v\n%s", err, out)
		}
		if !decimal.RequireFromString(got.Totals.Total).Equal(decimal.RequireFromString("4.80")) || got.Totals.Currency != "USD" {
			t.Fatalf("unexpected totals %+v", got.Totals)
		}
	})

	t.Run("line flag is required", func(t *testing.T) {
		if _, err := execute(t, "quote"); err == nil {
			t.Fatalf("expected missing flag error")
		}
	})
}

func TestCatalogCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pricing := mock_interfaces.NewMockIPricingProvider(ctrl)
	pricing.EXPECT().ListPricing(gomock.Any(), "lon1", gomock.Any()).Return(rows(t, globalRows), nil)
	pricing.EXPECT().ListPricing(gomock.Any(), "lag1", gomock.Any()).Return(nil, nil)
	withPricing(t, pricing)

	out, err := execute(t, "catalog", "--region", "lon1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "global tiers") || !strings.Contains(out, "__global__::9") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	if _, err := execute(t, "catalog", "--region", "lag1"); err == nil {
		t.Fatalf("expected error for region without pricing")
	}
}
