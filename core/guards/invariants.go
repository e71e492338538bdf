// Package guards - Runtime invariant checks for optimizer results
// A violation means the optimizer is broken, not that the input is bad.
package guards

import (
	"errors"
	"fmt"

	"storage-cost/core/pricing"
	"storage-cost/core/types"
)

// CheckChain verifies that a purchase chain covers the horizon exactly
// once, in order, and that its recomputed cost equals total
func CheckChain(in types.UserInput, storage types.MonthlyStorage, chain []types.Purchase, total types.Cost) error {
	if total.IsInfinite() {
		if len(chain) != 0 {
			return fmt.Errorf("infeasible result carries %d purchases", len(chain))
		}
		return nil
	}

	var errs []error
	next := 0
	recomputed := types.ZeroCost()
	for i, p := range chain {
		if p.Begin != next {
			errs = append(errs, fmt.Errorf("purchase %d starts at month %d, expected %d", i, p.Begin, next))
		}
		if p.Covered() < 1 || p.Covered() > p.Plan.Months {
			errs = append(errs, fmt.Errorf("purchase %d of %q covers %d months, plan lasts %d", i, p.Plan.Name, p.Covered(), p.Plan.Months))
		}
		if p.End > len(storage) || p.Begin < 0 {
			errs = append(errs, fmt.Errorf("purchase %d spans [%d, %d) outside the horizon", i, p.Begin, p.End))
			next = p.End
			continue
		}
		recomputed = recomputed.AddDecimal(p.Plan.Cost).Add(pricing.PeriodOverage(in, p.Plan, storage, p.Begin, p.End))
		next = p.End
	}

	if next != len(storage) {
		errs = append(errs, fmt.Errorf("chain covers %d months, horizon is %d", next, len(storage)))
	}
	if !recomputed.Equal(total) {
		errs = append(errs, fmt.Errorf("chain costs %s, reported total is %s", recomputed, total))
	}
	return errors.Join(errs...)
}

// CheckResult verifies the compressed assignment of a provider result
func CheckResult(r types.ProviderResult, months int) error {
	if !r.Feasible() {
		if len(r.Assignment) != 0 {
			return fmt.Errorf("infeasible result for %q carries %d plan runs", r.Name(), len(r.Assignment))
		}
		return nil
	}

	var errs []error
	if got := r.Assignment.Months(); got != months {
		errs = append(errs, fmt.Errorf("assignment for %q covers %d months, horizon is %d", r.Name(), got, months))
	}
	for i, run := range r.Assignment {
		if run.Count < 1 {
			errs = append(errs, fmt.Errorf("run %d of %q has count %d", i, run.Plan.Name, run.Count))
		}
		if i > 0 && r.Assignment[i-1].Plan.SameAs(run.Plan) {
			errs = append(errs, fmt.Errorf("runs %d and %d of %q are not merged", i-1, i, run.Plan.Name))
		}
	}
	if r.Total.Amount().IsNegative() {
		errs = append(errs, fmt.Errorf("total for %q is negative: %s", r.Name(), r.Total))
	}
	return errors.Join(errs...)
}

// MustHold panics if err is non-nil
func MustHold(err error) {
	if err != nil {
		panic("INVARIANT VIOLATED: " + err.Error())
	}
}
