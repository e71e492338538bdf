// Package catalog - Authoritative provider catalog
// Holds every provider and its plans as an immutable table that is loaded
// once at startup and shared read-only by all estimations.
package catalog

import (
	stderrors "errors"
	"fmt"
	"slices"

	"storage-cost/core/types"
	"storage-cost/internal/errors"
)

// Catalog is an ordered, immutable list of providers.
// Declaration order is preserved; it drives evaluation order and
// breaks cost ties inside a provider.
type Catalog struct {
	providers []*types.Provider
	byName    map[string]*types.Provider
}

// New creates a catalog from deep copies of the given providers
func New(providers ...types.Provider) *Catalog {
	c := &Catalog{
		providers: make([]*types.Provider, 0, len(providers)),
		byName:    make(map[string]*types.Provider, len(providers)),
	}
	for _, p := range providers {
		cp := cloneProvider(p)
		c.providers = append(c.providers, cp)
		if _, exists := c.byName[cp.Name]; !exists {
			c.byName[cp.Name] = cp
		}
	}
	return c
}

// NewValidated creates a catalog and rejects it if any rule fails
func NewValidated(providers ...types.Provider) (*Catalog, error) {
	c := New(providers...)
	if errs := c.Validate(DefaultValidationRules()); len(errs) > 0 {
		return nil, errors.Wrap(errors.TypeCatalog,
			fmt.Sprintf("catalog has %d validation errors", len(errs)),
			stderrors.Join(errs...))
	}
	return c, nil
}

// Providers returns the providers in declaration order.
// The returned providers are shared and must not be modified.
func (c *Catalog) Providers() []*types.Provider {
	return slices.Clone(c.providers)
}

// Len returns the number of providers
func (c *Catalog) Len() int {
	return len(c.providers)
}

// Find looks a provider up by name
func (c *Catalog) Find(name string) (*types.Provider, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// Subset returns a catalog restricted to the named providers, keeping
// declaration order. Unknown names are reported as NOT_FOUND.
func (c *Catalog) Subset(names ...string) (*Catalog, error) {
	if len(names) == 0 {
		return c, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := c.byName[n]; !ok {
			return nil, errors.NotFound("provider", n)
		}
		wanted[n] = true
	}

	sub := &Catalog{byName: make(map[string]*types.Provider, len(wanted))}
	for _, p := range c.providers {
		if wanted[p.Name] {
			sub.providers = append(sub.providers, p)
			sub.byName[p.Name] = p
		}
	}
	return sub, nil
}

func cloneProvider(p types.Provider) *types.Provider {
	return &types.Provider{
		Name:                  p.Name,
		Link:                  p.Link,
		AffiliateLinks:        slices.Clone(p.AffiliateLinks),
		TieredPlans:           slices.Clone(p.TieredPlans),
		EnterpriseTieredPlans: slices.Clone(p.EnterpriseTieredPlans),
	}
}
