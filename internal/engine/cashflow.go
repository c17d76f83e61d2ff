package engine

// CashFlow reprojects the accrual income statement onto a cash basis.
// Every series is 12 months; outflow series hold positive magnitudes and
// are subtracted when closing balances are chained.
type CashFlow struct {
	Inflows            Series `json:"inflows"`
	TaxPaid            Series `json:"taxPaid"`
	CardFeesPaid       Series `json:"cardFeesPaid"`
	MaterialsPaid      Series `json:"materialsPaid"`
	PayrollPaid        Series `json:"payrollPaid"`
	ExpensesPaid       Series `json:"expensesPaid"`
	NonOperationalPaid Series `json:"nonOperationalPaid"`
	DividendsPaid      Series `json:"dividendsPaid"`
	Outflows           Series `json:"outflows"`
	Opening            Series `json:"opening"`
	Net                Series `json:"net"`
	Closing            Series `json:"closing"`
	// TaxPayableYearEnd is tax accrued but not yet due by December,
	// carried explicitly instead of vanishing from the projection.
	TaxPayableYearEnd float64 `json:"taxPayableYearEnd"`
}

// ByName exposes the cash flow as a name-to-series mapping for transport.
func (cf CashFlow) ByName() map[string][]float64 {
	lines := map[string]Series{
		"inflows":        cf.Inflows,
		"tax_paid":       cf.TaxPaid,
		"card_fees_paid": cf.CardFeesPaid,
		"materials_paid": cf.MaterialsPaid,
		"payroll_paid":   cf.PayrollPaid,
		"expenses_paid":  cf.ExpensesPaid,
		"non_op_paid":    cf.NonOperationalPaid,
		"dividends_paid": cf.DividendsPaid,
		"outflows":       cf.Outflows,
		"opening":        cf.Opening,
		"net":            cf.Net,
		"closing":        cf.Closing,
	}
	out := make(map[string][]float64, len(lines))
	for name, series := range lines {
		out[name] = append([]float64(nil), series[:]...)
	}
	return out
}

// CashFlowAnnual builds the monthly cash flow: revenue is received in the
// month earned, tax is paid with the configured lag (January additionally
// settles the prior December's payable), payroll, card fees, materials,
// operating expenses, and non-operational items are paid in the month
// incurred, and dividends follow the scheduler. Closing balances chain
// strictly: opening of month one is the configured initial cash, opening
// of every later month is the prior closing.
func (e *Engine) CashFlowAnnual() CashFlow {
	st := e.IncomeStatement()
	plan := e.Dividends()
	fin := e.snap.Finance

	var cf CashFlow
	cf.Inflows = st.Line(LineGrossRevenue)
	cf.CardFeesPaid = st.Line(LineCardFees)
	cf.MaterialsPaid = st.Line(LineMaterials)
	cf.PayrollPaid = st.Line(LinePayroll)
	cf.ExpensesPaid = st.Line(LineFixedExpenses)
	cf.NonOperationalPaid = st.Line(LineNonOperational)
	cf.DividendsPaid = plan.Schedule

	lag := 1
	if fin.TaxPaymentLagMonths != nil {
		lag = *fin.TaxPaymentLagMonths
	}
	due := st.Line(LineSimplifiedTax)
	for m := 0; m < MonthsPerYear; m++ {
		if m-lag >= 0 {
			cf.TaxPaid[m] = due[m-lag]
		}
	}
	cf.TaxPaid[0] += fin.OpeningTaxPayable
	for m := MonthsPerYear - lag; m < MonthsPerYear; m++ {
		if m >= 0 {
			cf.TaxPayableYearEnd += due[m]
		}
	}

	cf.Outflows = cf.TaxPaid.
		Plus(cf.CardFeesPaid).
		Plus(cf.MaterialsPaid).
		Plus(cf.PayrollPaid).
		Plus(cf.ExpensesPaid).
		Plus(cf.NonOperationalPaid).
		Plus(cf.DividendsPaid)

	cf.Opening[0] = fin.InitialCash
	for m := 0; m < MonthsPerYear; m++ {
		if m > 0 {
			cf.Opening[m] = cf.Closing[m-1]
		}
		cf.Net[m] = cf.Inflows[m] - cf.Outflows[m]
		cf.Closing[m] = cf.Opening[m] + cf.Net[m]
	}
	return cf
}
