package optimizer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storage-cost/core/types"
	"storage-cost/core/usage"
)

func amount(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func linearPlan(name string, months int, cost int64) types.TieredPlan {
	return types.TieredPlan{
		Name:       name,
		Months:     months,
		Cost:       amount(cost),
		StorageCap: amount(2000),
		ExtraCost:  types.LinearPolicy(amount(1000), amount(100)),
		Currency:   types.CurrencyEUR,
	}
}

func cappedPlan(name string, months int, cost, storageCap int64) types.TieredPlan {
	return types.TieredPlan{
		Name:       name,
		Months:     months,
		Cost:       amount(cost),
		StorageCap: amount(storageCap),
		ExtraCost:  types.CappedPolicy(),
		Currency:   types.CurrencyEUR,
	}
}

func provider(plans ...types.TieredPlan) *types.Provider {
	return &types.Provider{Name: "test", TieredPlans: plans, EnterpriseTieredPlans: plans}
}

func solve(in types.UserInput, p *types.Provider) Solution {
	return Optimize(in, p, usage.Project(in))
}

func TestYearlyPlanWithLinearOverage(t *testing.T) {
	in := types.UserInput{Months: 12, UploadPerMonth: amount(200)}

	s := solve(in, provider(linearPlan("Yearly", 12, 2200)))

	require.True(t, s.Feasible())
	assert.Equal(t, "2400", s.Total.String())
	require.Len(t, s.Chain, 1)
	assert.Equal(t, 0, s.Chain[0].Begin)
	assert.Equal(t, 12, s.Chain[0].End)

	a := Compress(s.Chain)
	require.Len(t, a, 1)
	assert.Equal(t, "Yearly", a[0].Plan.Name)
	assert.Equal(t, 1, a[0].Count)
	assert.Equal(t, 12, a.Months())
}

func TestEmptyHorizon(t *testing.T) {
	s := solve(types.UserInput{Months: 0}, provider(linearPlan("Yearly", 12, 2200)))

	require.True(t, s.Feasible())
	assert.True(t, s.Total.Amount().IsZero())
	assert.Empty(t, s.Chain)
	assert.Empty(t, Compress(s.Chain))
	assert.Len(t, s.Table, 1)
}

func TestCappedProviderIsInfeasible(t *testing.T) {
	in := types.UserInput{Months: 6, InitialUpload: amount(500), UploadPerMonth: amount(100)}

	s := solve(in, provider(cappedPlan("Small", 1, 1, 200), cappedPlan("Medium", 3, 2, 800)))

	assert.False(t, s.Feasible())
	assert.True(t, s.Total.IsInfinite())
	assert.Empty(t, s.Chain)
	assert.Empty(t, Compress(s.Chain))
}

func TestEmptyCatalogIsInfeasible(t *testing.T) {
	s := solve(types.UserInput{Months: 2}, provider())
	assert.False(t, s.Feasible())
}

func TestSwitchesPlanWhenStorageGrows(t *testing.T) {
	// storage: 100, 200, 300, 400
	in := types.UserInput{Months: 4, UploadPerMonth: amount(100)}
	small := cappedPlan("Small", 1, 1, 200)
	large := cappedPlan("Large", 1, 5, 1000)

	s := solve(in, provider(small, large))

	require.True(t, s.Feasible())
	assert.Equal(t, "12", s.Total.String())

	a := Compress(s.Chain)
	require.Len(t, a, 2)
	assert.Equal(t, "Small", a[0].Plan.Name)
	assert.Equal(t, 2, a[0].Count)
	assert.Equal(t, "Large", a[1].Plan.Name)
	assert.Equal(t, 2, a[1].Count)
	assert.Equal(t, "Small ×2, Large ×2", a.String())
}

func TestLongPlanCoversShortHorizon(t *testing.T) {
	in := types.UserInput{Months: 3, InitialUpload: amount(10)}
	monthly := cappedPlan("Monthly", 1, 3, 2000)
	yearly := cappedPlan("Yearly", 12, 5, 2000)

	s := solve(in, provider(monthly, yearly))

	require.True(t, s.Feasible())
	assert.Equal(t, "5", s.Total.String())
	require.Len(t, s.Chain, 1)
	assert.Equal(t, 0, s.Chain[0].Begin)
	assert.Equal(t, 3, s.Chain[0].End)
	assert.Equal(t, 3, Compress(s.Chain).Months())
}

func TestTieKeepsCatalogOrder(t *testing.T) {
	in := types.UserInput{Months: 2, InitialUpload: amount(10)}
	first := cappedPlan("First", 1, 2, 100)
	second := cappedPlan("Second", 1, 2, 100)

	s := solve(in, provider(first, second))
	a := Compress(s.Chain)
	require.Len(t, a, 1)
	assert.Equal(t, "First", a[0].Plan.Name)

	s = solve(in, provider(second, first))
	a = Compress(s.Chain)
	require.Len(t, a, 1)
	assert.Equal(t, "Second", a[0].Plan.Name)
}

func TestEnterpriseCatalogIsUsed(t *testing.T) {
	p := &types.Provider{
		Name:                  "test",
		TieredPlans:           []types.TieredPlan{cappedPlan("Consumer", 1, 1, 100)},
		EnterpriseTieredPlans: []types.TieredPlan{cappedPlan("Business", 1, 4, 100)},
	}

	s := solve(types.UserInput{Months: 2, Enterprise: true}, p)
	require.Len(t, s.Chain, 2)
	assert.Equal(t, "Business", s.Chain[0].Plan.Name)
	assert.Equal(t, "8", s.Total.String())
}

func TestTableProperties(t *testing.T) {
	in := types.UserInput{Months: 24, InitialUpload: amount(1500), UploadPerMonth: amount(150)}
	p := provider(
		linearPlan("Monthly", 1, 3),
		linearPlan("Yearly", 12, 22),
		linearPlan("Five years", 60, 99),
	)

	s := solve(in, p)

	require.True(t, s.Feasible())
	require.Len(t, s.Table, 25)
	assert.True(t, s.Table[0].Amount().IsZero())
	for i := 1; i < len(s.Table); i++ {
		assert.False(t, s.Table[i].LessThan(s.Table[i-1]), "table must not decrease at %d", i)
	}
	assert.True(t, s.Total.Equal(s.Table[24]))

	covered := 0
	next := 0
	for _, purchase := range s.Chain {
		assert.Equal(t, next, purchase.Begin, "purchases must be contiguous")
		assert.LessOrEqual(t, purchase.Covered(), purchase.Plan.Months)
		covered += purchase.Covered()
		next = purchase.End
	}
	assert.Equal(t, 24, covered)
	assert.Equal(t, 24, Compress(s.Chain).Months())
}

func TestOptimizeIsDeterministic(t *testing.T) {
	in := types.UserInput{Months: 18, InitialUpload: amount(1900), UploadPerMonth: amount(80), DeletePerMonth: amount(20)}
	p := provider(linearPlan("Monthly", 1, 3), linearPlan("Yearly", 12, 22))

	first := solve(in, p)
	second := solve(in, p)

	assert.Equal(t, first.Chain, second.Chain)
	assert.True(t, first.Total.Equal(second.Total))
}
