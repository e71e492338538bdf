// Package optimizer finds the cheapest sequence of plan purchases that
// covers a storage requirement month by month.
//
// The search is a shortest path over horizon positions 0..months, where
// position i means "the first i months are paid for". Buying plan p to
// reach i starts at max(0, i-p.Months), so a plan longer than the
// remaining prefix still counts as covering it.
package optimizer

import (
	"slices"

	"storage-cost/core/pricing"
	"storage-cost/core/types"
)

// Solution is the optimizer output for one provider
type Solution struct {
	// Chain is the chronological list of purchases, empty when infeasible
	Chain []types.Purchase

	// Total is the cost of Chain, infinite when infeasible
	Total types.Cost

	// Table holds the cheapest cost to reach every position 0..months
	Table []types.Cost
}

// Feasible reports whether every month can be covered
func (s Solution) Feasible() bool {
	return !s.Total.IsInfinite()
}

// Optimize runs the search against the provider catalog selected by
// in.Enterprise. Ties keep the plan declared first in the catalog.
func Optimize(in types.UserInput, provider *types.Provider, storage types.MonthlyStorage) Solution {
	months := len(storage)
	plans := provider.Plans(in.Enterprise)

	table := make([]types.Cost, months+1)
	backlinks := make([]int, months+1)
	table[0] = types.ZeroCost()
	backlinks[0] = -1
	for i := 1; i <= months; i++ {
		table[i] = types.Infinite()
		backlinks[i] = -1
	}

	for i := 1; i <= months; i++ {
		for idx, plan := range plans {
			begin := max(0, i-plan.Months)
			if table[begin].IsInfinite() {
				continue
			}

			extra := pricing.PeriodOverage(in, plan, storage, begin, i)
			candidate := table[begin].AddDecimal(plan.Cost).Add(extra)
			if candidate.LessThan(table[i]) {
				table[i] = candidate
				backlinks[i] = idx
			}
		}
	}

	chain, ok := walkBacklinks(plans, backlinks)
	if !ok {
		return Solution{Total: types.Infinite(), Table: table}
	}
	return Solution{Chain: chain, Total: table[months], Table: table}
}

// walkBacklinks rebuilds the purchase chain from the last position.
// It fails as soon as a position was never reached.
func walkBacklinks(plans []types.TieredPlan, backlinks []int) ([]types.Purchase, bool) {
	var chain []types.Purchase
	for i := len(backlinks) - 1; i > 0; {
		idx := backlinks[i]
		if idx < 0 {
			return nil, false
		}
		plan := plans[idx]
		begin := max(0, i-plan.Months)
		chain = append(chain, types.Purchase{Plan: plan, Begin: begin, End: i})
		i = begin
	}
	slices.Reverse(chain)
	return chain, true
}
