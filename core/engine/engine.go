// Package engine provides the API-primary estimation engine.
// CLI and HTTP are thin wrappers around this engine.
package engine

import (
	"context"
	"errors"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"storage-cost/core/catalog"
	"storage-cost/core/guards"
	"storage-cost/core/optimizer"
	"storage-cost/core/ranking"
	"storage-cost/core/types"
	"storage-cost/core/usage"
)

// Engine is the primary API for plan estimation.
// It holds no mutable state; concurrent calls are safe.
type Engine struct {
	// catalog is shared read-only
	catalog *catalog.Catalog

	logger *zap.Logger

	// strict panics on optimizer invariant violations instead of logging them
	strict bool

	// workers bounds how many providers are optimized at once
	workers int
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used for per-provider diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStrictInvariants makes invariant violations panic
func WithStrictInvariants() Option {
	return func(e *Engine) {
		e.strict = true
	}
}

// WithWorkers bounds concurrent provider optimizations
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// New creates an engine over a catalog
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		logger:  zap.NewNop(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine estimates against
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// WithCatalog returns an engine over another catalog with the same options
func (e *Engine) WithCatalog(cat *catalog.Catalog) *Engine {
	clone := *e
	clone.catalog = cat
	return &clone
}

// Estimate projects storage, optimizes every provider and ranks them.
// Providers are optimized concurrently; results keep catalog order until
// ranking, so the report does not depend on scheduling.
// Infeasible providers are reported with an infinite total, not an error;
// the only error is cancellation of ctx before a provider starts.
func (e *Engine) Estimate(ctx context.Context, in types.UserInput) (*types.Report, error) {
	storage := usage.Project(in)

	providers := e.catalog.Providers()
	results := make([]types.ProviderResult, len(providers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, provider := range providers {
		i, provider := i, provider
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.estimateProvider(in, provider, storage)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.Report{
		Input:   in,
		Storage: storage,
		Results: ranking.Rank(results),
	}, nil
}

// EstimateProvider runs the optimizer for a single provider
func (e *Engine) EstimateProvider(in types.UserInput, provider *types.Provider) types.ProviderResult {
	return e.estimateProvider(in, provider, usage.Project(in))
}

func (e *Engine) estimateProvider(in types.UserInput, provider *types.Provider, storage types.MonthlyStorage) types.ProviderResult {
	solution := optimizer.Optimize(in, provider, storage)

	result := types.ProviderResult{
		Provider:   provider,
		Assignment: optimizer.Compress(solution.Chain),
		Total:      solution.Total,
		Currency:   resultCurrency(provider.Plans(in.Enterprise), solution.Chain),
	}

	e.checkInvariants(in, storage, solution, result)

	e.logger.Debug("provider optimized",
		zap.String("provider", provider.Name),
		zap.Bool("enterprise", in.Enterprise),
		zap.Bool("feasible", result.Feasible()),
		zap.Stringer("total", result.Total),
		zap.Int("purchases", len(solution.Chain)),
	)
	return result
}

// resultCurrency is the currency of the first purchase, falling back to
// the first plan of the catalog for infeasible providers
func resultCurrency(plans []types.TieredPlan, chain []types.Purchase) types.Currency {
	if len(chain) > 0 {
		return chain[0].Plan.Currency
	}
	if len(plans) > 0 {
		return plans[0].Currency
	}
	return ""
}

// checkInvariants verifies the optimizer output before it is reported
func (e *Engine) checkInvariants(in types.UserInput, storage types.MonthlyStorage, solution optimizer.Solution, result types.ProviderResult) {
	err := errors.Join(
		guards.CheckChain(in, storage, solution.Chain, solution.Total),
		guards.CheckResult(result, len(storage)),
	)
	if err == nil {
		return
	}
	if e.strict {
		guards.MustHold(err)
	}
	e.logger.Error("optimizer invariant violated",
		zap.String("provider", result.Name()),
		zap.Error(err),
	)
}
