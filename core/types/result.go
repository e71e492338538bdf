// Package types - Optimization result types
package types

import (
	"strconv"
	"strings"
)

// Purchase is one plan bought to cover horizon months [Begin, End).
// End-Begin is shorter than the plan duration only when a long plan is
// bought for a horizon prefix shorter than itself.
type Purchase struct {
	Plan  TieredPlan `json:"plan"`
	Begin int        `json:"begin"`
	End   int        `json:"end"`
}

// Covered returns the number of horizon months the purchase pays for
func (p Purchase) Covered() int {
	return p.End - p.Begin
}

// PlanRun is a plan bought Count times in a row
type PlanRun struct {
	Plan  TieredPlan `json:"plan"`
	Count int        `json:"count"`

	// Months is the number of horizon months covered by the run
	Months int `json:"months"`
}

// PlanAssignment is the chronological, run-length compressed sequence
// of purchases. An infeasible provider has an empty assignment.
type PlanAssignment []PlanRun

// Months returns the number of horizon months covered by the assignment
func (a PlanAssignment) Months() int {
	total := 0
	for _, run := range a {
		total += run.Months
	}
	return total
}

// Purchases returns the total number of plan purchases
func (a PlanAssignment) Purchases() int {
	total := 0
	for _, run := range a {
		total += run.Count
	}
	return total
}

// String renders the assignment as "name ×count" items
func (a PlanAssignment) String() string {
	parts := make([]string, 0, len(a))
	for _, run := range a {
		if run.Count == 1 {
			parts = append(parts, run.Plan.Name)
			continue
		}
		parts = append(parts, run.Plan.Name+" ×"+strconv.Itoa(run.Count))
	}
	return strings.Join(parts, ", ")
}

// ProviderResult is the cheapest purchase sequence found for one provider
type ProviderResult struct {
	// Provider is the catalog entry the result was computed for
	Provider *Provider `json:"-"`

	// Assignment is empty when the provider is infeasible
	Assignment PlanAssignment `json:"assignment"`

	// Total is denominated in Currency; infinite when infeasible
	Total Cost `json:"total"`

	// Currency is the currency of the provider's plans
	Currency Currency `json:"currency,omitempty"`
}

// Feasible reports whether the provider can cover the horizon
func (r ProviderResult) Feasible() bool {
	return !r.Total.IsInfinite()
}

// Name returns the provider name
func (r ProviderResult) Name() string {
	if r.Provider == nil {
		return ""
	}
	return r.Provider.Name
}

// Report is the ordered outcome of one estimation
type Report struct {
	// Input is the usage profile the report was computed for
	Input UserInput `json:"input"`

	// Storage is the projected monthly storage requirement
	Storage MonthlyStorage `json:"storage"`

	// Results are ranked cheapest first, infeasible providers last
	Results []ProviderResult `json:"results"`
}

// Cheapest returns the best feasible result, if any
func (r *Report) Cheapest() (ProviderResult, bool) {
	if len(r.Results) == 0 || !r.Results[0].Feasible() {
		return ProviderResult{}, false
	}
	return r.Results[0], true
}
