// Package engine computes the twelve-month financial projection from an
// assumption snapshot: revenue, payroll, simplified-regime tax, income
// statement, cash flow, break-even, occupancy, activity-based costing,
// and dividend scheduling. All calculations are pure functions over one
// immutable snapshot and run in a single pass, in pipeline order.
package engine

import "github.com/fisiobudget/fisiobudget/internal/assumptions"

// MonthsPerYear mirrors the assumption horizon.
const MonthsPerYear = assumptions.MonthsPerYear

// Series is a 12-month value vector, index 0 = January. Negative values
// are legitimate for outflows and deficits.
type Series [MonthsPerYear]float64

// Total sums the series.
func (s Series) Total() float64 {
	var total float64
	for _, v := range s {
		total += v
	}
	return total
}

// Average returns the monthly mean.
func (s Series) Average() float64 {
	return s.Total() / MonthsPerYear
}

// Plus returns the element-wise sum.
func (s Series) Plus(o Series) Series {
	var out Series
	for i := range s {
		out[i] = s[i] + o[i]
	}
	return out
}

// Minus returns the element-wise difference.
func (s Series) Minus(o Series) Series {
	var out Series
	for i := range s {
		out[i] = s[i] - o[i]
	}
	return out
}

// Scaled returns the series multiplied by a scalar.
func (s Series) Scaled(f float64) Series {
	var out Series
	for i := range s {
		out[i] = s[i] * f
	}
	return out
}

// Negated flips the sign of every month.
func (s Series) Negated() Series {
	return s.Scaled(-1)
}

// Ratio is a division result that may be undefined. An undefined ratio is
// distinct from a legitimate zero: a break-even of R$0 and a break-even
// that does not exist must never be confused.
type Ratio struct {
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
}

// NewRatio divides num by den, returning an undefined Ratio when the
// denominator is zero.
func NewRatio(num, den float64) Ratio {
	if den == 0 {
		return Ratio{}
	}
	return Ratio{Value: num / den, Defined: true}
}

// DefinedValue wraps a known quantity in a defined Ratio.
func DefinedValue(v float64) Ratio {
	return Ratio{Value: v, Defined: true}
}

// Undefined is the explicit marker for a ratio with no meaningful value.
func Undefined() Ratio {
	return Ratio{}
}

// Or returns the ratio value, or the fallback when undefined.
func (r Ratio) Or(fallback float64) float64 {
	if !r.Defined {
		return fallback
	}
	return r.Value
}
