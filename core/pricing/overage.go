// Package pricing - Overage policy evaluation
// Plans declare a policy tag; the math for every tag lives here.
package pricing

import (
	"github.com/shopspring/decimal"

	"storage-cost/core/types"
)

// MonthlyOverage returns the extra charge for one month of storage under
// a plan. An infinite cost means the plan cannot serve that month.
func MonthlyOverage(in types.UserInput, plan types.TieredPlan, storage decimal.Decimal) types.Cost {
	policy := plan.ExtraCost

	switch policy.Kind {
	case types.PolicyCapped:
		return cappedOverage(plan, storage)
	case types.PolicyLinear:
		return linearOverage(plan, storage)
	case types.PolicyFlatRate:
		return flatRateOverage(in, policy, storage)
	default:
		// Unknown policies never validate; treat the plan as unusable
		return types.Infinite()
	}
}

// PeriodOverage sums MonthlyOverage over storage[begin:end]
func PeriodOverage(in types.UserInput, plan types.TieredPlan, storage types.MonthlyStorage, begin, end int) types.Cost {
	total := types.ZeroCost()
	for m := begin; m < end; m++ {
		total = total.Add(MonthlyOverage(in, plan, storage[m]))
		if total.IsInfinite() {
			return total
		}
	}
	return total
}

func cappedOverage(plan types.TieredPlan, storage decimal.Decimal) types.Cost {
	if storage.GreaterThan(plan.StorageCap) {
		return types.Infinite()
	}
	return types.ZeroCost()
}

func linearOverage(plan types.TieredPlan, storage decimal.Decimal) types.Cost {
	policy := plan.ExtraCost
	if policy.Limit.Valid && storage.GreaterThanOrEqual(policy.Limit.Decimal) {
		return types.Infinite()
	}

	excess := storage.Sub(plan.StorageCap)
	if !excess.IsPositive() {
		return types.ZeroCost()
	}

	return types.NewCost(ceilDiv(excess, policy.Unit).Mul(policy.Rate))
}

func flatRateOverage(in types.UserInput, policy types.OveragePolicy, storage decimal.Decimal) types.Cost {
	stored := storage.Mul(policy.StorageRate)
	downloaded := in.DownloadPerMonth.Mul(policy.DownloadRate)
	return types.NewCost(stored.Add(downloaded))
}

// ceilDiv returns the number of started units in a positive quantity.
// QuoRem keeps the division exact; Div would round at 16 digits.
func ceilDiv(quantity, unit decimal.Decimal) decimal.Decimal {
	q, r := quantity.QuoRem(unit, 0)
	if r.IsPositive() {
		q = q.Add(decimal.NewFromInt(1))
	}
	return q
}
