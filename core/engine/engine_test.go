package engine

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"storage-cost/core/catalog"
	"storage-cost/core/types"
)

func testCatalog() *catalog.Catalog {
	capped := types.Provider{
		Name: "Tiny",
		TieredPlans: []types.TieredPlan{{
			Name:       "Mini",
			Months:     1,
			Cost:       decimal.NewFromInt(1),
			StorageCap: decimal.NewFromInt(50),
			ExtraCost:  types.CappedPolicy(),
			Currency:   types.CurrencyEUR,
		}},
	}
	return catalog.New(append([]types.Provider{capped}, catalog.DefaultProviders()...)...)
}

func TestEstimateRanksProviders(t *testing.T) {
	e := New(testCatalog(), WithStrictInvariants())
	in := types.UserInput{
		Months:         12,
		Currency:       types.CurrencyEUR,
		InitialUpload:  decimal.NewFromInt(1000),
		UploadPerMonth: decimal.NewFromInt(100),
	}

	report, err := e.Estimate(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, report.Results, 3)
	require.Len(t, report.Storage, 12)

	// one yearly plan plus 1 EUR for each of the two months above 2000 GB
	fichier := report.Results[0]
	assert.Equal(t, "1fichier", fichier.Name())
	assert.Equal(t, "24", fichier.Total.String())
	assert.Equal(t, "Premium 1 year", fichier.Assignment.String())
	assert.Equal(t, types.CurrencyEUR, fichier.Currency)

	// B2 stores 1100..2200 GB at 0.005/GB
	assert.Equal(t, "Backblaze", report.Results[1].Name())
	assert.Equal(t, "99", report.Results[1].Total.String())
	assert.Equal(t, types.CurrencyUSD, report.Results[1].Currency)

	tiny := report.Results[2]
	assert.Equal(t, "Tiny", tiny.Name())
	assert.False(t, tiny.Feasible())
	assert.Empty(t, tiny.Assignment)
	assert.Equal(t, types.CurrencyEUR, tiny.Currency)

	best, ok := report.Cheapest()
	require.True(t, ok)
	assert.Equal(t, "1fichier", best.Name())
}

func TestEstimateIsIdempotent(t *testing.T) {
	e := New(catalog.Default(), WithStrictInvariants())
	in := types.UserInput{Months: 30, InitialUpload: decimal.NewFromInt(3000), UploadPerMonth: decimal.NewFromInt(250)}

	first, err := e.Estimate(context.Background(), in)
	require.NoError(t, err)
	second, err := e.Estimate(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, second.Results, len(first.Results))
	for i := range first.Results {
		assert.Equal(t, first.Results[i].Name(), second.Results[i].Name())
		assert.True(t, first.Results[i].Total.Equal(second.Results[i].Total))
		assert.Equal(t, first.Results[i].Assignment, second.Results[i].Assignment)
	}
}

func TestEstimateIgnoresWorkerCount(t *testing.T) {
	in := types.UserInput{Months: 48, InitialUpload: decimal.NewFromInt(1800), UploadPerMonth: decimal.NewFromInt(40)}

	serial, err := New(testCatalog(), WithWorkers(1)).Estimate(context.Background(), in)
	require.NoError(t, err)
	parallel, err := New(testCatalog(), WithWorkers(8)).Estimate(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, parallel.Results, len(serial.Results))
	for i := range serial.Results {
		assert.Equal(t, serial.Results[i].Name(), parallel.Results[i].Name())
		assert.True(t, serial.Results[i].Total.Equal(parallel.Results[i].Total))
	}
}

func TestWithCatalogKeepsOptions(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	e := New(catalog.Default(), WithLogger(zap.New(core)))

	sub, err := e.Catalog().Subset("Backblaze")
	require.NoError(t, err)

	report, err := e.WithCatalog(sub).Estimate(context.Background(), types.UserInput{Months: 2})
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, 1, logs.FilterMessage("provider optimized").Len())
	assert.Equal(t, 2, e.Catalog().Len())
}

func TestEstimateEmptyHorizon(t *testing.T) {
	report, err := New(testCatalog()).Estimate(context.Background(), types.UserInput{Months: 0})
	require.NoError(t, err)

	for _, r := range report.Results {
		assert.True(t, r.Feasible(), r.Name())
		assert.True(t, r.Total.Amount().IsZero(), r.Name())
		assert.Empty(t, r.Assignment, r.Name())
	}
}

func TestEstimateHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(catalog.Default()).Estimate(ctx, types.UserInput{Months: 12})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEstimateLogsPerProvider(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	e := New(catalog.Default(), WithLogger(zap.New(core)))

	result := e.EstimateProvider(types.UserInput{Months: 1}, e.Catalog().Providers()[0])
	assert.True(t, result.Feasible())

	entries := logs.FilterMessage("provider optimized").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "1fichier", entries[0].ContextMap()["provider"])
}
