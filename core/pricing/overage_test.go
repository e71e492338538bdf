// Package pricing - Overage policy tests
package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"storage-cost/core/types"
)

func gb(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func linearPlan() types.TieredPlan {
	return types.TieredPlan{
		Name:       "Premium",
		Months:     1,
		Cost:       gb(3),
		StorageCap: gb(2000),
		ExtraCost:  types.LinearPolicy(gb(1000), gb(1)).WithLimit(gb(100000)),
		Currency:   types.CurrencyEUR,
	}
}

func TestLinearOverage(t *testing.T) {
	in := types.UserInput{}
	plan := linearPlan()

	tests := []struct {
		name    string
		storage int64
		want    string
	}{
		{"below cap", 1500, "0"},
		{"at cap", 2000, "0"},
		{"one GB over", 2001, "1"},
		{"exactly one unit over", 3000, "1"},
		{"partial second unit", 3001, "2"},
		{"just below limit", 99999, "98"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyOverage(in, plan, gb(tt.storage))
			if got.IsInfinite() {
				t.Fatalf("storage %d: unexpected infinite overage", tt.storage)
			}
			if got.String() != tt.want {
				t.Errorf("storage %d: overage = %s, want %s", tt.storage, got, tt.want)
			}
		})
	}
}

func TestLinearOverageLimitIsExclusive(t *testing.T) {
	plan := linearPlan()

	for _, storage := range []int64{100000, 250000} {
		if got := MonthlyOverage(types.UserInput{}, plan, gb(storage)); !got.IsInfinite() {
			t.Errorf("storage %d: overage = %s, want inf", storage, got)
		}
	}
}

func TestLinearOverageFractionalUnits(t *testing.T) {
	plan := linearPlan()
	plan.ExtraCost = types.LinearPolicy(decimal.RequireFromString("0.3"), decimal.RequireFromString("0.1"))

	// 2000.9 is 0.9 over the cap, exactly three units
	got := MonthlyOverage(types.UserInput{}, plan, decimal.RequireFromString("2000.9"))
	if got.String() != "0.3" {
		t.Errorf("overage = %s, want 0.3", got)
	}
}

func TestCappedOverage(t *testing.T) {
	plan := types.TieredPlan{Name: "Basic", Months: 1, StorageCap: gb(100), ExtraCost: types.CappedPolicy()}

	if got := MonthlyOverage(types.UserInput{}, plan, gb(100)); got.IsInfinite() || !got.Amount().IsZero() {
		t.Errorf("at cap: overage = %s, want 0", got)
	}
	if got := MonthlyOverage(types.UserInput{}, plan, gb(101)); !got.IsInfinite() {
		t.Errorf("over cap: overage = %s, want inf", got)
	}
}

func TestFlatRateOverage(t *testing.T) {
	plan := types.TieredPlan{
		Name:      "B2",
		Months:    1,
		ExtraCost: types.FlatRatePolicy(decimal.RequireFromString("0.005"), decimal.RequireFromString("0.01")),
		Currency:  types.CurrencyUSD,
	}
	in := types.UserInput{DownloadPerMonth: gb(50)}

	// 1000 * 0.005 + 50 * 0.01
	got := MonthlyOverage(in, plan, gb(1000))
	if got.String() != "5.5" {
		t.Errorf("overage = %s, want 5.5", got)
	}
}

func TestUnknownPolicyIsUnusable(t *testing.T) {
	plan := types.TieredPlan{Name: "Odd", Months: 1, ExtraCost: types.OveragePolicy{Kind: "tiered"}}

	if got := MonthlyOverage(types.UserInput{}, plan, gb(1)); !got.IsInfinite() {
		t.Errorf("overage = %s, want inf", got)
	}
}

func TestPeriodOverage(t *testing.T) {
	plan := linearPlan()
	storage := types.MonthlyStorage{gb(1000), gb(2500), gb(3500), gb(200000)}

	if got := PeriodOverage(types.UserInput{}, plan, storage, 0, 3); got.String() != "3" {
		t.Errorf("months 0-3: overage = %s, want 3", got)
	}
	if got := PeriodOverage(types.UserInput{}, plan, storage, 2, 4); !got.IsInfinite() {
		t.Errorf("months 2-4: overage = %s, want inf", got)
	}
	if got := PeriodOverage(types.UserInput{}, plan, storage, 1, 1); !got.Amount().IsZero() {
		t.Errorf("empty period: overage = %s, want 0", got)
	}
}
