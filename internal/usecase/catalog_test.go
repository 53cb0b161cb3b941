package usecase

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
)

func pricingRows(t *testing.T, raw string) []entities.PricingRow {
	t.Helper()
	var rows []entities.PricingRow
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		t.Fatalf("unmarshal rows: %v", err)
	}
	return rows
}

const catalogFixture = `[
	{"product": {"productable_id": 7, "name": "Standard", "region": " LAG1 ", "object_storage": {"quota_gb": "50"}},
	 "pricing": {"effective": {"price_local": "1.00", "currency": "NGN"}}},
	{"product": {"productable_id": "9", "name": "Global Tier", "quota_gb": 100},
	 "pricing": {"effective": {"price_local": 2, "currency": "USD"}}},
	{"product": {"productable_id": null, "name": "Broken"},
	 "pricing": {"effective": {"price_local": 5}}}
]`

func TestTierKey(t *testing.T) {
	t.Run("stable and injective", func(t *testing.T) {
		pairs := [][2]string{{"lag1", "1"}, {"lag1", "11"}, {"lon1", "1"}, {entities.GlobalRegionKey, "1"}}
		seen := map[string][2]string{}
		for _, p := range pairs {
			k := TierKey(p[0], p[1])
			if k != TierKey(p[0], p[1]) {
				t.Fatalf("tier key not stable for %v", p)
			}
			if prev, dup := seen[k]; dup {
				t.Fatalf("collision between %v and %v", prev, p)
			}
			seen[k] = p
		}
	})

	t.Run("split round trip", func(t *testing.T) {
		region, id, ok := SplitTierKey(TierKey("lon1", "42"))
		if !ok || region != "lon1" || id != "42" {
			t.Fatalf("unexpected split: %q %q %v", region, id, ok)
		}
		if _, _, ok := SplitTierKey("nokey"); ok {
			t.Fatalf("expected split failure")
		}
	})
}

func TestBuildCatalog(t *testing.T) {
	cat := BuildCatalog(pricingRows(t, catalogFixture), "usd")

	t.Run("region and global buckets", func(t *testing.T) {
		lag, ok := cat.Buckets["lag1"]
		if !ok {
			t.Fatalf("expected lag1 bucket, got %v", cat.Buckets)
		}
		if len(lag.Options) != 1 || lag.Options[0].Key != "lag1::7" {
			t.Fatalf("unexpected lag1 options: %+v", lag.Options)
		}
		global := cat.Buckets[entities.GlobalRegionKey]
		if global == nil {
			t.Fatalf("expected global bucket")
		}
		if _, ok := global.Tiers[TierKey(entities.GlobalRegionKey, "7")]; !ok {
			t.Fatalf("regional row missing from global bucket")
		}
		if _, ok := global.Tiers[TierKey(entities.GlobalRegionKey, "9")]; !ok {
			t.Fatalf("global row missing")
		}
		if len(global.Options) != 2 {
			t.Fatalf("expected 2 global options, got %d", len(global.Options))
		}
	})

	t.Run("rows without product id are skipped", func(t *testing.T) {
		for _, entry := range cat.Buckets {
			for _, opt := range entry.Options {
				if opt.Name == "Broken" {
					t.Fatalf("row without productable id was indexed")
				}
			}
		}
	})

	t.Run("label", func(t *testing.T) {
		opt := cat.Buckets["lag1"].Options[0]
		if !strings.Contains(opt.Label, "Standard") || !strings.Contains(opt.Label, "50 GiB") {
			t.Fatalf("unexpected label %q", opt.Label)
		}
		if !strings.Contains(opt.Label, "NGN 0.0200/GiB/mo") || !strings.Contains(opt.Label, "billed in NGN, display USD") {
			t.Fatalf("expected currency annotation, got %q", opt.Label)
		}
		global := cat.Buckets[entities.GlobalRegionKey]
		for _, o := range global.Options {
			if o.ProductableID == "9" && strings.Contains(o.Label, "billed in") {
				t.Fatalf("unexpected annotation for same currency: %q", o.Label)
			}
		}
	})
}

func TestCatalogBucket(t *testing.T) {
	cat := BuildCatalog(pricingRows(t, catalogFixture), "USD")

	t.Run("region specific bucket wins", func(t *testing.T) {
		entry, fallback, ok := cat.Bucket("LAG1")
		if !ok || fallback || entry.RegionKey != "lag1" {
			t.Fatalf("expected lag1 without fallback, got %+v %v %v", entry, fallback, ok)
		}
	})

	t.Run("unknown region falls back to global", func(t *testing.T) {
		entry, fallback, ok := cat.Bucket("lon1")
		if !ok || !fallback || entry.RegionKey != entities.GlobalRegionKey {
			t.Fatalf("expected global fallback, got %+v %v %v", entry, fallback, ok)
		}
	})

	t.Run("empty region is global without fallback flag", func(t *testing.T) {
		_, fallback, ok := cat.Bucket("")
		if !ok || fallback {
			t.Fatalf("expected global bucket without fallback flag")
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		if _, _, ok := BuildCatalog(nil, "USD").Bucket("lon1"); ok {
			t.Fatalf("expected no bucket")
		}
	})
}
