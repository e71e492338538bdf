package guards

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storage-cost/core/types"
)

var monthly = types.TieredPlan{
	Name:       "Monthly",
	Months:     1,
	Cost:       decimal.NewFromInt(3),
	StorageCap: decimal.NewFromInt(100),
	ExtraCost:  types.CappedPolicy(),
	Currency:   types.CurrencyEUR,
}

func storage(n int) types.MonthlyStorage {
	s := make(types.MonthlyStorage, n)
	for i := range s {
		s[i] = decimal.NewFromInt(10)
	}
	return s
}

func TestCheckChainAcceptsValidChain(t *testing.T) {
	chain := []types.Purchase{
		{Plan: monthly, Begin: 0, End: 1},
		{Plan: monthly, Begin: 1, End: 2},
	}
	assert.NoError(t, CheckChain(types.UserInput{}, storage(2), chain, types.NewCost(decimal.NewFromInt(6))))
	assert.NoError(t, CheckChain(types.UserInput{}, storage(0), nil, types.ZeroCost()))
	assert.NoError(t, CheckChain(types.UserInput{}, storage(3), nil, types.Infinite()))
}

func TestCheckChainViolations(t *testing.T) {
	tests := []struct {
		name  string
		chain []types.Purchase
		total types.Cost
		want  string
	}{
		{"gap", []types.Purchase{{Plan: monthly, Begin: 1, End: 2}}, types.NewCost(decimal.NewFromInt(3)), "starts at month 1, expected 0"},
		{"short", []types.Purchase{{Plan: monthly, Begin: 0, End: 1}}, types.NewCost(decimal.NewFromInt(3)), "chain covers 1 months, horizon is 2"},
		{"too long", []types.Purchase{{Plan: monthly, Begin: 0, End: 2}}, types.NewCost(decimal.NewFromInt(3)), "covers 2 months, plan lasts 1"},
		{"wrong total", []types.Purchase{{Plan: monthly, Begin: 0, End: 1}, {Plan: monthly, Begin: 1, End: 2}}, types.NewCost(decimal.NewFromInt(5)), "chain costs 6, reported total is 5"},
		{"infeasible with purchases", []types.Purchase{{Plan: monthly, Begin: 0, End: 1}}, types.Infinite(), "infeasible result carries 1 purchases"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckChain(types.UserInput{}, storage(2), tt.chain, tt.total)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCheckResult(t *testing.T) {
	p := &types.Provider{Name: "Acme"}

	ok := types.ProviderResult{
		Provider:   p,
		Assignment: types.PlanAssignment{{Plan: monthly, Count: 2, Months: 2}},
		Total:      types.NewCost(decimal.NewFromInt(6)),
	}
	assert.NoError(t, CheckResult(ok, 2))
	assert.ErrorContains(t, CheckResult(ok, 3), "covers 2 months, horizon is 3")

	unmerged := ok
	unmerged.Assignment = types.PlanAssignment{{Plan: monthly, Count: 1, Months: 1}, {Plan: monthly, Count: 1, Months: 1}}
	assert.ErrorContains(t, CheckResult(unmerged, 2), "not merged")

	infeasible := types.ProviderResult{Provider: p, Total: types.Infinite(), Assignment: ok.Assignment}
	assert.ErrorContains(t, CheckResult(infeasible, 2), "carries 1 plan runs")
}

func TestMustHold(t *testing.T) {
	assert.NotPanics(t, func() { MustHold(nil) })
	assert.PanicsWithValue(t, "INVARIANT VIOLATED: boom", func() { MustHold(errors.New("boom")) })
}
