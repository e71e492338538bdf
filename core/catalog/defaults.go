// Package catalog - Built-in provider data
package catalog

import (
	"github.com/shopspring/decimal"

	"storage-cost/core/types"
)

// fichierOverage charges 1 EUR per started TB above the 2 TB cap and
// refuses accounts at or above 100 TB.
func fichierOverage() types.OveragePolicy {
	return types.LinearPolicy(decimal.NewFromInt(1000), decimal.NewFromInt(1)).
		WithLimit(decimal.NewFromInt(100 * 1000))
}

func fichierPlans() []types.TieredPlan {
	storageCap := decimal.NewFromInt(2000)
	return []types.TieredPlan{
		{Name: "Premium 1 month", Months: 1, Cost: decimal.RequireFromString("3.00"), StorageCap: storageCap, ExtraCost: fichierOverage(), Currency: types.CurrencyEUR},
		{Name: "Premium 1 year", Months: 12, Cost: decimal.RequireFromString("22.00"), StorageCap: storageCap, ExtraCost: fichierOverage(), Currency: types.CurrencyEUR},
		{Name: "Premium 5 years", Months: 12 * 5, Cost: decimal.RequireFromString("99.00"), StorageCap: storageCap, ExtraCost: fichierOverage(), Currency: types.CurrencyEUR},
		{Name: "Premium 10 years", Months: 12 * 10, Cost: decimal.RequireFromString("195.00"), StorageCap: storageCap, ExtraCost: fichierOverage(), Currency: types.CurrencyEUR},
	}
}

func backblazePlans() []types.TieredPlan {
	return []types.TieredPlan{
		{
			Name:       "B2",
			Months:     1,
			Cost:       decimal.Zero,
			StorageCap: decimal.Zero,
			ExtraCost:  types.FlatRatePolicy(decimal.RequireFromString("0.005"), decimal.RequireFromString("0.01")),
			Currency:   types.CurrencyUSD,
		},
	}
}

// DefaultProviders returns the providers shipped with the tool
func DefaultProviders() []types.Provider {
	return []types.Provider{
		{
			Name:                  "1fichier",
			Link:                  "https://1fichier.com/",
			AffiliateLinks:        []string{"https://1fichier.com/tarifs.html?af=3676346"},
			TieredPlans:           fichierPlans(),
			EnterpriseTieredPlans: fichierPlans(),
		},
		{
			Name:                  "Backblaze",
			Link:                  "https://www.backblaze.com/b2/cloud-storage-pricing.html",
			TieredPlans:           backblazePlans(),
			EnterpriseTieredPlans: backblazePlans(),
		},
	}
}

// Default returns the built-in catalog
func Default() *Catalog {
	c := New(DefaultProviders()...)
	c.MustValidate()
	return c
}
