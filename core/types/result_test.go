package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanAssignmentTotals(t *testing.T) {
	month := TieredPlan{Name: "Monthly", Months: 1}
	year := TieredPlan{Name: "Yearly", Months: 12}

	a := PlanAssignment{
		{Plan: year, Count: 1, Months: 12},
		{Plan: month, Count: 3, Months: 3},
	}

	assert.Equal(t, 15, a.Months())
	assert.Equal(t, 4, a.Purchases())
	assert.Equal(t, "Yearly, Monthly ×3", a.String())
	assert.Equal(t, "", PlanAssignment{}.String())
}

func TestReportCheapest(t *testing.T) {
	p := &Provider{Name: "Acme"}

	r := &Report{Results: []ProviderResult{{Provider: p, Total: NewCost(d("5"))}}}
	best, ok := r.Cheapest()
	assert.True(t, ok)
	assert.Equal(t, "Acme", best.Name())

	r = &Report{Results: []ProviderResult{{Provider: p, Total: Infinite()}}}
	_, ok = r.Cheapest()
	assert.False(t, ok)

	_, ok = (&Report{}).Cheapest()
	assert.False(t, ok)
}

func TestMonthlyStoragePeak(t *testing.T) {
	assert.True(t, MonthlyStorage{}.Peak().IsZero())
	assert.Equal(t, "300", MonthlyStorage{d("100"), d("300"), d("200")}.Peak().String())
}

func TestProviderPlansSelectsCatalog(t *testing.T) {
	p := &Provider{
		TieredPlans:           []TieredPlan{{Name: "consumer"}},
		EnterpriseTieredPlans: []TieredPlan{{Name: "business"}},
	}

	assert.Equal(t, "consumer", p.Plans(false)[0].Name)
	assert.Equal(t, "business", p.Plans(true)[0].Name)
}
