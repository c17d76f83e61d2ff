package engine

import "github.com/fisiobudget/fisiobudget/internal/assumptions"

// PayrollBreakdown is the monthly payroll cost split by staff category.
type PayrollBreakdown struct {
	Contractor       float64 `json:"contractor"`
	CLTGross         float64 `json:"cltGross"`
	CLTCharges       float64 `json:"cltCharges"`
	ProLabore        float64 `json:"proLabore"`
	ProLaboreCharges float64 `json:"proLaboreCharges"`
	Total            float64 `json:"total"`
}

// cltChargeRate is the combined statutory charge on a CLT base salary:
// employer social security, FGTS, and the vacation and 13th-salary
// provisions accrued monthly.
func (e *Engine) cltChargeRate() float64 {
	p := e.snap.Payroll
	return p.EmployerINSSRate + p.FGTSRate + p.VacationProvisionRate + p.ThirteenthProvisionRate
}

// contractorShare resolves the revenue-share percentage for a contractor,
// preferring the custom override, then the seniority level table. An
// unconfigured level pays zero share rather than failing the projection.
func (e *Engine) contractorShare(idx int) float64 {
	c := e.snap.Contractors[idx]
	if c.CustomShare > 0 {
		return c.CustomShare
	}
	return e.snap.Payroll.LevelShares[c.Level]
}

// contractorPay computes one contractor's compensation per month. An
// unset model defaults to revenue share, the predominant arrangement.
func (e *Engine) contractorPay(idx int) Series {
	c := e.snap.Contractors[idx]
	model := c.Model
	if model == "" {
		model = assumptions.CompRevenueShare
	}
	var pay Series
	if model == assumptions.CompRevenueShare || model == assumptions.CompMixed {
		pay = e.contractorRevenue(idx).Scaled(e.contractorShare(idx))
	}
	if model == assumptions.CompFixedPerSession || model == assumptions.CompMixed {
		for name, counts := range c.Sessions {
			fee := c.SessionFee[name]
			if fee == 0 {
				continue
			}
			for m := 0; m < MonthsPerYear; m++ {
				pay[m] += counts[m] * e.snap.SeasonalityFactor(m) * fee
			}
		}
	}
	return pay
}

// MonthlyPayroll computes the payroll breakdown for a month (1-12).
// Employees without a salary or past records with unset fields count as
// zero; a malformed staff entry never halts the projection.
func (e *Engine) MonthlyPayroll(month int) PayrollBreakdown {
	idx, ok := monthIndex(month)
	if !ok {
		return PayrollBreakdown{}
	}
	var b PayrollBreakdown
	for i, c := range e.snap.Contractors {
		if !c.Active {
			continue
		}
		b.Contractor += e.contractorPay(i)[idx]
	}
	chargeRate := e.cltChargeRate()
	for _, emp := range e.snap.Employees {
		if !emp.Active {
			continue
		}
		if emp.HireMonth > 0 && month < emp.HireMonth {
			continue
		}
		b.CLTGross += emp.BaseSalary
		b.CLTCharges += emp.BaseSalary * chargeRate
	}
	for _, p := range e.snap.Partners {
		if !p.Active {
			continue
		}
		b.ProLabore += p.ProLabore
		b.ProLaboreCharges += p.ProLabore * e.snap.Payroll.ProLaboreINSSRate
	}
	b.Total = b.Contractor + b.CLTGross + b.CLTCharges + b.ProLabore + b.ProLaboreCharges
	return b
}

// payrollTotal is the full payroll cost per month.
func (e *Engine) payrollTotal() Series {
	var total Series
	for m := 0; m < MonthsPerYear; m++ {
		total[m] = e.MonthlyPayroll(m + 1).Total
	}
	return total
}

// factorRPayroll is the payroll base used by the Factor R ratio: CLT gross
// salaries plus pro-labore. FGTS, provisions, and contractor compensation
// stay out of the base, matching the statutory definition.
func (e *Engine) factorRPayroll() Series {
	var total Series
	for m := 0; m < MonthsPerYear; m++ {
		b := e.MonthlyPayroll(m + 1)
		total[m] = b.CLTGross + b.ProLabore
	}
	return total
}
