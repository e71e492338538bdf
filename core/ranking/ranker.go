// Package ranking orders provider results for presentation.
package ranking

import (
	"slices"

	"storage-cost/core/determinism"
	"storage-cost/core/types"
)

// Rank returns the results ordered by ascending total cost. Infeasible
// providers come last. Equal totals are ordered by provider name, then
// by their original position.
//
// Totals are compared as raw numbers whatever their currency.
func Rank(results []types.ProviderResult) []types.ProviderResult {
	ranked := slices.Clone(results)
	determinism.SortSlice(ranked, less)
	return ranked
}

func less(a, b types.ProviderResult) bool {
	if c := a.Total.Cmp(b.Total); c != 0 {
		return c < 0
	}
	return a.Name() < b.Name()
}
