package engine

import "github.com/fisiobudget/fisiobudget/internal/assumptions"

// Annex identifies which Simples Nacional bracket table priced a month.
type Annex string

const (
	// AnnexIII applies when Factor R reaches the configured threshold.
	AnnexIII Annex = "III"
	// AnnexV applies below the Factor R threshold.
	AnnexV Annex = "V"
)

// MonthlyTax details one month of the simplified-regime projection.
type MonthlyTax struct {
	Month         int     `json:"month"`
	Revenue       float64 `json:"revenue"`
	RBT12         float64 `json:"rbt12"`
	Payroll12     float64 `json:"payroll12"`
	FactorR       Ratio   `json:"factorR"`
	Annex         Annex   `json:"annex"`
	NominalRate   float64 `json:"nominalRate"`
	Deduction     float64 `json:"deduction"`
	EffectiveRate float64 `json:"effectiveRate"`
	Due           float64 `json:"due"`
}

// trailingWindow computes the 12-month sum ending at month index m. With
// prior-year history the window is exact; without it the cumulative
// current-year sum is annualised (×12/(m+1)). Annualisation is an
// approximation policy, not an exact statutory rule.
func trailingWindow(current Series, prior *assumptions.MonthlyCounts, m int) float64 {
	var sum float64
	for i := 0; i <= m; i++ {
		sum += current[i]
	}
	if prior != nil {
		for i := m + 1; i < MonthsPerYear; i++ {
			sum += prior[i]
		}
		return sum
	}
	return sum * float64(MonthsPerYear) / float64(m+1)
}

// locateBracket finds the bracket containing the trailing revenue,
// falling through to the top band when revenue exceeds every ceiling.
func locateBracket(table []assumptions.TaxBracket, rbt12 float64) assumptions.TaxBracket {
	for _, b := range table {
		if rbt12 <= b.Ceiling {
			return b
		}
	}
	return table[len(table)-1]
}

// SimplifiedTaxAnnual projects the monthly tax due for the year with
// bracket, annex, and effective-rate detail per month.
//
// Per month: the trailing 12-month revenue (RBT12) and payroll windows
// are computed, Factor R = payroll window / RBT12 selects the annex, the
// bracket containing RBT12 gives the nominal rate and deduction, and the
// effective rate (RBT12 × rate − deduction) / RBT12 prices the current
// month's revenue. RBT12 of zero defines both Factor R and the effective
// rate as zero; zero revenue owes zero tax.
func (e *Engine) SimplifiedTaxAnnual() []MonthlyTax {
	revenue := e.grossRevenue()
	payroll := e.factorRPayroll()
	tax := e.snap.Tax

	out := make([]MonthlyTax, MonthsPerYear)
	for m := 0; m < MonthsPerYear; m++ {
		rbt12 := trailingWindow(revenue, tax.PriorYearRevenue, m)
		payroll12 := trailingWindow(payroll, tax.PriorYearPayroll, m)
		factorR := NewRatio(payroll12, rbt12)

		annex := AnnexV
		table := tax.AnnexV
		if factorR.Or(0) >= tax.FactorRThreshold {
			annex = AnnexIII
			table = tax.AnnexIII
		}

		mt := MonthlyTax{
			Month:     m + 1,
			Revenue:   revenue[m],
			RBT12:     rbt12,
			Payroll12: payroll12,
			FactorR:   factorR,
			Annex:     annex,
		}
		if rbt12 > 0 && len(table) > 0 {
			bracket := locateBracket(table, rbt12)
			mt.NominalRate = bracket.Rate
			mt.Deduction = bracket.Deduction
			effective := (rbt12*bracket.Rate - bracket.Deduction) / rbt12
			if effective < 0 {
				effective = 0
			}
			mt.EffectiveRate = effective
			mt.Due = revenue[m] * effective
		}
		out[m] = mt
	}
	return out
}

// taxDue extracts the monthly tax series from the annual projection.
func (e *Engine) taxDue() Series {
	var due Series
	for i, mt := range e.SimplifiedTaxAnnual() {
		due[i] = mt.Due
	}
	return due
}
