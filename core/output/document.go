// Package output - Structured report document
package output

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"storage-cost/core/types"
)

// Document is the serializable shape of a report, shared by the JSON
// formatter and the HTTP API
type Document struct {
	Input   types.UserInput      `json:"input"`
	Storage types.MonthlyStorage `json:"storage,omitempty"`
	Peak    decimal.Decimal      `json:"peak_storage"`
	Results []ResultDocument     `json:"results"`
}

// ResultDocument describes one ranked provider
type ResultDocument struct {
	Rank           int            `json:"rank"`
	Provider       string         `json:"provider"`
	Link           string         `json:"link,omitempty"`
	AffiliateLinks []string       `json:"affiliate_links,omitempty"`
	Feasible       bool           `json:"feasible"`
	Currency       types.Currency `json:"currency,omitempty"`
	Total          types.Cost     `json:"total"`
	Plans          []RunDocument  `json:"plans"`
}

// RunDocument describes consecutive purchases of one plan
type RunDocument struct {
	Plan          string          `json:"plan"`
	PlanMonths    int             `json:"plan_months"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	Count         int             `json:"count"`
	CoveredMonths int             `json:"covered_months"`
}

// NewDocument converts a report to its serializable form
func NewDocument(report *types.Report, opts Options) Document {
	doc := Document{
		Input: report.Input,
		Peak:  report.Storage.Peak(),
		Results: lo.Map(report.Results, func(r types.ProviderResult, i int) ResultDocument {
			return newResultDocument(r, i+1, opts)
		}),
	}
	if opts.ShowStorage {
		doc.Storage = report.Storage
	}
	return doc
}

func newResultDocument(r types.ProviderResult, rank int, opts Options) ResultDocument {
	doc := ResultDocument{
		Rank:     rank,
		Provider: r.Name(),
		Feasible: r.Feasible(),
		Currency: r.Currency,
		Total:    r.Total,
		Plans: lo.Map(r.Assignment, func(run types.PlanRun, _ int) RunDocument {
			return RunDocument{
				Plan:          run.Plan.Name,
				PlanMonths:    run.Plan.Months,
				UnitCost:      run.Plan.Cost,
				Count:         run.Count,
				CoveredMonths: run.Months,
			}
		}),
	}
	if opts.ShowLinks && r.Provider != nil {
		doc.Link = r.Provider.Link
		doc.AffiliateLinks = r.Provider.AffiliateLinks
	}
	return doc
}
