package assumptions

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// ErrConfig marks a fatal configuration error: the snapshot is internally
// inconsistent and no projection may be computed from it.
var ErrConfig = errors.New("invalid assumption snapshot")

var validate = validator.New()

const weightTolerance = 1e-6

func configErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

// Validate checks the snapshot for fatal configuration errors. Missing or
// partial data (empty entity lists, unset salaries) is deliberately not an
// error: those degrade to zero contributions during calculation.
func (s *Snapshot) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	for _, svc := range s.Services {
		for year, price := range svc.Prices {
			if price < 0 {
				return configErr("service %q: negative price %.2f for year %d", svc.Name, price, year)
			}
		}
	}
	if sum := s.Dividends.Allocation.Sum(); sum > 1+weightTolerance {
		return configErr("profit allocation percentages sum to %.4f, exceeding 100%%", sum)
	}
	if err := validateBrackets("annex III", s.Tax.AnnexIII); err != nil {
		return err
	}
	if err := validateBrackets("annex V", s.Tax.AnnexV); err != nil {
		return err
	}
	if err := s.validatePartners(); err != nil {
		return err
	}
	return s.validatePools()
}

// validateBrackets enforces strictly ascending ceilings, non-decreasing
// nominal rates, and bounded deductions. The deduction bound is what makes
// the effective rate (RBT12×rate − deduction)/RBT12 non-decreasing across
// a bracket boundary: entering bracket i at the previous ceiling, the
// deduction may grow by at most Ceiling[i-1]×(Rate[i]−Rate[i-1]), the
// equality case giving a continuous effective rate.
func validateBrackets(name string, brackets []TaxBracket) error {
	if len(brackets) == 0 {
		return configErr("tax %s: bracket table is empty", name)
	}
	for i, b := range brackets {
		if i == 0 {
			continue
		}
		prev := brackets[i-1]
		if b.Ceiling <= prev.Ceiling {
			return configErr("tax %s: bracket %d ceiling %.2f not above previous %.2f", name, i+1, b.Ceiling, prev.Ceiling)
		}
		if b.Rate < prev.Rate {
			return configErr("tax %s: bracket %d rate %.4f below previous %.4f", name, i+1, b.Rate, prev.Rate)
		}
		maxDeduction := prev.Deduction + prev.Ceiling*(b.Rate-prev.Rate)
		if b.Deduction > maxDeduction+weightTolerance {
			return configErr("tax %s: bracket %d deduction %.2f above %.2f, effective rate would fall entering the bracket", name, i+1, b.Deduction, maxDeduction)
		}
	}
	return nil
}

func (s *Snapshot) validatePartners() error {
	var sum float64
	var active int
	for _, p := range s.Partners {
		if !p.Active {
			continue
		}
		active++
		sum += p.Ownership
	}
	if active == 0 {
		return nil
	}
	if math.Abs(sum-1) > 1e-4 {
		return configErr("active partner ownership sums to %.4f, want 1.0", sum)
	}
	return nil
}

// validatePools requires an explicit driver blend for every expense
// category in use; allocation drivers are never defaulted implicitly.
func (s *Snapshot) validatePools() error {
	for _, exp := range s.Expenses {
		if !exp.Active {
			continue
		}
		weights, ok := s.TDABC.Pools[exp.Category]
		if !ok {
			return configErr("expense category %q has no cost driver configuration", exp.Category)
		}
		if math.Abs(weights.Sum()-1) > weightTolerance {
			return configErr("cost pool %q driver weights sum to %.4f, want 1.0", exp.Category, weights.Sum())
		}
	}
	return nil
}
