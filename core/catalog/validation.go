// Package catalog - Catalog validation
// Ensures catalog integrity and enforces invariants.
package catalog

import (
	"fmt"

	"github.com/samber/lo"

	"storage-cost/core/types"
)

// ValidationRule is a provider validation rule
type ValidationRule func(*types.Provider) []error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateProviderName,
		validatePlans,
	}
}

// Validate checks a catalog against validation rules
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errs []error

	duplicates := lo.FindDuplicatesBy(c.providers, func(p *types.Provider) string {
		return p.Name
	})
	for _, p := range duplicates {
		errs = append(errs, fmt.Errorf("provider %q: declared more than once", p.Name))
	}

	for _, p := range c.providers {
		for _, rule := range rules {
			errs = append(errs, rule(p)...)
		}
	}

	return errs
}

// MustValidate panics if validation fails
func (c *Catalog) MustValidate() {
	errs := c.Validate(DefaultValidationRules())
	if len(errs) > 0 {
		panic(fmt.Sprintf("catalog has %d validation errors: %v", len(errs), errs[0]))
	}
}

func validateProviderName(p *types.Provider) []error {
	if p.Name == "" {
		return []error{fmt.Errorf("provider without a name")}
	}
	return nil
}

// validatePlans checks both catalogs of a provider
func validatePlans(p *types.Provider) []error {
	var errs []error
	for _, plan := range p.TieredPlans {
		for _, err := range validatePlan(plan) {
			errs = append(errs, fmt.Errorf("provider %q plan %q: %w", p.Name, plan.Name, err))
		}
	}
	for _, plan := range p.EnterpriseTieredPlans {
		for _, err := range validatePlan(plan) {
			errs = append(errs, fmt.Errorf("provider %q enterprise plan %q: %w", p.Name, plan.Name, err))
		}
	}
	return errs
}

func validatePlan(plan types.TieredPlan) []error {
	var errs []error

	if plan.Name == "" {
		errs = append(errs, fmt.Errorf("name is required"))
	}
	if plan.Months < 1 {
		errs = append(errs, fmt.Errorf("months must be at least 1, got %d", plan.Months))
	}
	if plan.Cost.IsNegative() {
		errs = append(errs, fmt.Errorf("cost must not be negative"))
	}
	if plan.StorageCap.IsNegative() {
		errs = append(errs, fmt.Errorf("storage_cap must not be negative"))
	}
	if !plan.Currency.IsValid() {
		errs = append(errs, fmt.Errorf("unsupported currency %q", plan.Currency))
	}

	return append(errs, validatePolicy(plan)...)
}

func validatePolicy(plan types.TieredPlan) []error {
	policy := plan.ExtraCost

	switch policy.Kind {
	case types.PolicyCapped:
		return nil
	case types.PolicyLinear:
		var errs []error
		if !policy.Unit.IsPositive() {
			errs = append(errs, fmt.Errorf("linear overage needs a positive unit"))
		}
		if policy.Rate.IsNegative() {
			errs = append(errs, fmt.Errorf("linear overage rate must not be negative"))
		}
		if policy.Limit.Valid && !policy.Limit.Decimal.GreaterThan(plan.StorageCap) {
			errs = append(errs, fmt.Errorf("linear overage limit must exceed the storage cap"))
		}
		return errs
	case types.PolicyFlatRate:
		var errs []error
		if policy.StorageRate.IsNegative() || policy.DownloadRate.IsNegative() {
			errs = append(errs, fmt.Errorf("flat rate charges must not be negative"))
		}
		return errs
	default:
		return []error{fmt.Errorf("unknown overage policy %q", policy.Kind)}
	}
}
