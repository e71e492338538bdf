// Package catalog - Catalog files
// Catalogs can be written in HCL or YAML (JSON is read as YAML).
// Both formats decode into the same document shape.
package catalog

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"storage-cost/core/types"
	"storage-cost/internal/errors"
)

type document struct {
	Providers []providerSpec `hcl:"provider,block" yaml:"providers"`
}

type providerSpec struct {
	Name            string     `hcl:"name,label" yaml:"name"`
	Link            string     `hcl:"link,optional" yaml:"link,omitempty"`
	AffiliateLinks  []string   `hcl:"affiliate_links,optional" yaml:"affiliate_links,omitempty"`
	Plans           []planSpec `hcl:"plan,block" yaml:"plans"`
	EnterprisePlans []planSpec `hcl:"enterprise_plan,block" yaml:"enterprise_plans"`
}

type planSpec struct {
	Name       string      `hcl:"name,label" yaml:"name"`
	Months     int         `hcl:"months" yaml:"months"`
	Cost       string      `hcl:"cost" yaml:"cost"`
	StorageCap string      `hcl:"storage_cap,optional" yaml:"storage_cap,omitempty"`
	Currency   string      `hcl:"currency" yaml:"currency"`
	Overage    overageSpec `hcl:"overage,block" yaml:"overage"`
}

type overageSpec struct {
	Kind         string `hcl:"kind" yaml:"kind"`
	Unit         string `hcl:"unit,optional" yaml:"unit,omitempty"`
	Rate         string `hcl:"rate,optional" yaml:"rate,omitempty"`
	Limit        string `hcl:"limit,optional" yaml:"limit,omitempty"`
	StorageRate  string `hcl:"storage_rate,optional" yaml:"storage_rate,omitempty"`
	DownloadRate string `hcl:"download_rate,optional" yaml:"download_rate,omitempty"`
}

// Load reads a catalog file, choosing the format by extension
func Load(path string) (*Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeNotFound, err, "read catalog %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return ParseHCL(src, path)
	case ".yaml", ".yml", ".json":
		return ParseYAML(src, path)
	default:
		return nil, errors.NotSupported(fmt.Sprintf("catalog format %q (use .hcl, .yaml, .yml or .json)", filepath.Ext(path)))
	}
}

// ParseHCL decodes and validates an HCL catalog
func ParseHCL(src []byte, filename string) (*Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("parse catalog "+filename, diags)
	}

	var doc document
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, errors.Parsing("decode catalog "+filename, diags)
	}

	return doc.build(filename)
}

// ParseYAML decodes and validates a YAML or JSON catalog.
// Unknown keys are rejected.
func ParseYAML(src []byte, filename string) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Parsing("parse catalog "+filename, err)
	}

	return doc.build(filename)
}

// WriteYAML encodes a catalog in the YAML file format
func WriteYAML(w io.Writer, c *Catalog) error {
	doc := document{Providers: make([]providerSpec, 0, c.Len())}
	for _, p := range c.providers {
		doc.Providers = append(doc.Providers, providerSpec{
			Name:            p.Name,
			Link:            p.Link,
			AffiliateLinks:  p.AffiliateLinks,
			Plans:           planSpecs(p.TieredPlans),
			EnterprisePlans: planSpecs(p.EnterpriseTieredPlans),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Internal("encode catalog", err)
	}
	return enc.Close()
}

func (d document) build(filename string) (*Catalog, error) {
	var errs []error
	providers := make([]types.Provider, 0, len(d.Providers))

	for _, ps := range d.Providers {
		p := types.Provider{
			Name:           ps.Name,
			Link:           ps.Link,
			AffiliateLinks: ps.AffiliateLinks,
		}
		for _, spec := range ps.Plans {
			plan, err := spec.toPlan()
			if err != nil {
				errs = append(errs, fmt.Errorf("provider %q plan %q: %w", ps.Name, spec.Name, err))
				continue
			}
			p.TieredPlans = append(p.TieredPlans, plan)
		}
		for _, spec := range ps.EnterprisePlans {
			plan, err := spec.toPlan()
			if err != nil {
				errs = append(errs, fmt.Errorf("provider %q enterprise plan %q: %w", ps.Name, spec.Name, err))
				continue
			}
			p.EnterpriseTieredPlans = append(p.EnterpriseTieredPlans, plan)
		}
		providers = append(providers, p)
	}

	if len(errs) > 0 {
		return nil, errors.Parsing("decode catalog "+filename, stderrors.Join(errs...))
	}
	return NewValidated(providers...)
}

func (s planSpec) toPlan() (types.TieredPlan, error) {
	cost, err := parseAmount("cost", s.Cost)
	if err != nil {
		return types.TieredPlan{}, err
	}
	storageCap, err := parseAmount("storage_cap", s.StorageCap)
	if err != nil {
		return types.TieredPlan{}, err
	}
	policy, err := s.Overage.toPolicy()
	if err != nil {
		return types.TieredPlan{}, err
	}

	return types.TieredPlan{
		Name:       s.Name,
		Months:     s.Months,
		Cost:       cost,
		StorageCap: storageCap,
		ExtraCost:  policy,
		Currency:   types.Currency(strings.ToUpper(s.Currency)),
	}, nil
}

func (s overageSpec) toPolicy() (types.OveragePolicy, error) {
	policy := types.OveragePolicy{Kind: types.PolicyKind(s.Kind)}

	fields := []struct {
		name  string
		raw   string
		store *decimal.Decimal
	}{
		{"unit", s.Unit, &policy.Unit},
		{"rate", s.Rate, &policy.Rate},
		{"storage_rate", s.StorageRate, &policy.StorageRate},
		{"download_rate", s.DownloadRate, &policy.DownloadRate},
	}
	for _, f := range fields {
		d, err := parseAmount(f.name, f.raw)
		if err != nil {
			return types.OveragePolicy{}, err
		}
		*f.store = d
	}

	if s.Limit != "" {
		limit, err := parseAmount("limit", s.Limit)
		if err != nil {
			return types.OveragePolicy{}, err
		}
		policy.Limit = decimal.NewNullDecimal(limit)
	}
	return policy, nil
}

// parseAmount treats an empty value as zero
func parseAmount(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: invalid amount %q", field, raw)
	}
	return d, nil
}

func planSpecs(plans []types.TieredPlan) []planSpec {
	specs := make([]planSpec, 0, len(plans))
	for _, p := range plans {
		ov := overageSpec{Kind: string(p.ExtraCost.Kind)}
		switch p.ExtraCost.Kind {
		case types.PolicyLinear:
			ov.Unit = p.ExtraCost.Unit.String()
			ov.Rate = p.ExtraCost.Rate.String()
			if p.ExtraCost.Limit.Valid {
				ov.Limit = p.ExtraCost.Limit.Decimal.String()
			}
		case types.PolicyFlatRate:
			ov.StorageRate = p.ExtraCost.StorageRate.String()
			ov.DownloadRate = p.ExtraCost.DownloadRate.String()
		}
		specs = append(specs, planSpec{
			Name:       p.Name,
			Months:     p.Months,
			Cost:       p.Cost.String(),
			StorageCap: p.StorageCap.String(),
			Currency:   p.Currency.String(),
			Overage:    ov,
		})
	}
	return specs
}
