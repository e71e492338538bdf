// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import "github.com/shopspring/decimal"

// Provider is a storage provider with its purchasable plan catalogs.
// Providers are loaded once and shared read-only across computations.
type Provider struct {
	// Name is the display name and unique key of the provider
	Name string `json:"name"`

	// Link points at the provider's pricing page
	Link string `json:"link"`

	// AffiliateLinks are display-only referral links
	AffiliateLinks []string `json:"affiliate_links,omitempty"`

	// TieredPlans is the consumer catalog
	TieredPlans []TieredPlan `json:"tiered_plans"`

	// EnterpriseTieredPlans is the enterprise catalog
	EnterpriseTieredPlans []TieredPlan `json:"enterprise_tiered_plans"`
}

// Plans returns the catalog selected by the enterprise flag
func (p *Provider) Plans(enterprise bool) []TieredPlan {
	if enterprise {
		return p.EnterpriseTieredPlans
	}
	return p.TieredPlans
}

// TieredPlan is a purchasable subscription unit with a fixed duration,
// a flat price, a storage cap and an overage policy.
type TieredPlan struct {
	// Name is the plan name as advertised by the provider
	Name string `json:"name"`

	// Months is the purchase duration, at least 1
	Months int `json:"months"`

	// Cost is the flat price of one purchase
	Cost decimal.Decimal `json:"cost"`

	// StorageCap is the storage (GB) included in the flat price
	StorageCap decimal.Decimal `json:"storage_cap"`

	// ExtraCost is evaluated independently for every covered month
	ExtraCost OveragePolicy `json:"extra_cost"`

	// Currency denominates Cost and every overage charge
	Currency Currency `json:"currency"`
}

// SameAs reports whether two plans are the same catalog entry
func (p TieredPlan) SameAs(other TieredPlan) bool {
	return p.Name == other.Name &&
		p.Months == other.Months &&
		p.Currency == other.Currency &&
		p.Cost.Equal(other.Cost)
}

// PolicyKind tags an overage policy variant
type PolicyKind string

const (
	// PolicyCapped rejects any month whose storage exceeds the cap
	PolicyCapped PolicyKind = "capped"

	// PolicyLinear charges Rate per started Unit of storage above the cap
	PolicyLinear PolicyKind = "linear"

	// PolicyFlatRate charges per stored GB plus per downloaded GB, no cap
	PolicyFlatRate PolicyKind = "flat_rate"
)

// String returns the string representation
func (k PolicyKind) String() string {
	return string(k)
}

// IsValid checks if the kind is a known policy
func (k PolicyKind) IsValid() bool {
	switch k {
	case PolicyCapped, PolicyLinear, PolicyFlatRate:
		return true
	default:
		return false
	}
}

// OveragePolicy is a closed, serializable description of how a plan
// charges for a single month of storage. Only the fields relevant to
// Kind are read.
type OveragePolicy struct {
	Kind PolicyKind `json:"kind"`

	// Unit is the billing granularity in GB (linear)
	Unit decimal.Decimal `json:"unit"`

	// Rate is the price per started Unit (linear)
	Rate decimal.Decimal `json:"rate"`

	// Limit is the storage level at and above which the plan is unusable (linear)
	Limit decimal.NullDecimal `json:"limit"`

	// StorageRate is the price per stored GB (flat_rate)
	StorageRate decimal.Decimal `json:"storage_rate"`

	// DownloadRate is the price per downloaded GB (flat_rate)
	DownloadRate decimal.Decimal `json:"download_rate"`
}

// CappedPolicy returns a no-upgrade policy
func CappedPolicy() OveragePolicy {
	return OveragePolicy{Kind: PolicyCapped}
}

// LinearPolicy returns a per-unit overage policy without a hard limit
func LinearPolicy(unit, rate decimal.Decimal) OveragePolicy {
	return OveragePolicy{Kind: PolicyLinear, Unit: unit, Rate: rate}
}

// WithLimit returns a copy of the policy with a hard storage limit
func (p OveragePolicy) WithLimit(limit decimal.Decimal) OveragePolicy {
	p.Limit = decimal.NewNullDecimal(limit)
	return p
}

// FlatRatePolicy returns a pay-per-use policy
func FlatRatePolicy(storageRate, downloadRate decimal.Decimal) OveragePolicy {
	return OveragePolicy{Kind: PolicyFlatRate, StorageRate: storageRate, DownloadRate: downloadRate}
}
