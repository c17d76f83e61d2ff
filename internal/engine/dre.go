package engine

// LineItem enumerates the income statement rows. The closed set replaces
// the stringly-keyed dictionary of ad-hoc spreadsheets: every consumer
// addresses a line by identifier and construction guarantees each one is
// present.
type LineItem int

const (
	LineGrossRevenue LineItem = iota
	LineSimplifiedTax
	LineCardFees
	LineDeductions
	LineNetRevenue
	LineMaterials
	LineVariableCosts
	LineContributionMargin
	LinePayroll
	LineFixedExpenses
	LineFixedCosts
	LineEBITDA
	LineNonOperational
	LineNetResult
	LineLegalReserve
	LineInvestmentReserve
	LineDividends
	LineRetainedEarnings

	numLineItems
)

var lineNames = [numLineItems]string{
	LineGrossRevenue:       "gross_revenue",
	LineSimplifiedTax:      "simplified_tax",
	LineCardFees:           "card_fees",
	LineDeductions:         "deductions",
	LineNetRevenue:         "net_revenue",
	LineMaterials:          "materials",
	LineVariableCosts:      "variable_costs",
	LineContributionMargin: "contribution_margin",
	LinePayroll:            "payroll",
	LineFixedExpenses:      "fixed_expenses",
	LineFixedCosts:         "fixed_costs",
	LineEBITDA:             "ebitda",
	LineNonOperational:     "non_operational",
	LineNetResult:          "net_result",
	LineLegalReserve:       "legal_reserve",
	LineInvestmentReserve:  "investment_reserve",
	LineDividends:          "dividends",
	LineRetainedEarnings:   "retained_earnings",
}

// String returns the stable wire name of the line item.
func (l LineItem) String() string {
	if l < 0 || l >= numLineItems {
		return "unknown"
	}
	return lineNames[l]
}

// LineItems lists every statement row in presentation order.
func LineItems() []LineItem {
	items := make([]LineItem, numLineItems)
	for i := range items {
		items[i] = LineItem(i)
	}
	return items
}

// Statement is the computed income statement: one 12-month series per
// line item. It is populated once by IncomeStatement and read-only
// thereafter.
type Statement struct {
	lines [numLineItems]Series
}

// Line returns the series bound to a line item.
func (st Statement) Line(item LineItem) Series {
	if item < 0 || item >= numLineItems {
		return Series{}
	}
	return st.lines[item]
}

// ByName exposes the statement as a name-to-series mapping for transport
// layers; the enumerated identifiers remain the source of truth.
func (st Statement) ByName() map[string][]float64 {
	out := make(map[string][]float64, numLineItems)
	for _, item := range LineItems() {
		series := st.lines[item]
		out[item.String()] = append([]float64(nil), series[:]...)
	}
	return out
}

// IncomeStatement composes the monthly DRE: gross revenue less deductions
// (simplified tax, card fees) gives net revenue; less variable costs
// (materials) the contribution margin; less fixed costs (payroll plus
// fixed expenses) EBITDA; less non-operational items the net result.
// Positive net results are then allocated into legal reserve, investment
// reserve, and dividends per the configured percentages, the remainder
// staying as retained earnings. Loss months allocate nothing and retain
// the full negative result.
func (e *Engine) IncomeStatement() Statement {
	var st Statement

	gross := e.grossRevenue()
	tax := e.taxDue()
	cardFees := gross.Scaled(e.snap.Operational.CardFeeRate)
	deductions := tax.Plus(cardFees)
	net := gross.Minus(deductions)

	materials := gross.Scaled(e.snap.Operational.MaterialsRate)
	contribution := net.Minus(materials)

	payroll := e.payrollTotal()
	fixedExpenses := e.fixedExpensesTotal()
	fixedCosts := payroll.Plus(fixedExpenses)
	ebitda := contribution.Minus(fixedCosts)

	var nonOperational Series
	if e.snap.Finance.NonOperational != nil {
		copy(nonOperational[:], e.snap.Finance.NonOperational[:])
	}
	netResult := ebitda.Minus(nonOperational)

	st.lines[LineGrossRevenue] = gross
	st.lines[LineSimplifiedTax] = tax
	st.lines[LineCardFees] = cardFees
	st.lines[LineDeductions] = deductions
	st.lines[LineNetRevenue] = net
	st.lines[LineMaterials] = materials
	st.lines[LineVariableCosts] = materials
	st.lines[LineContributionMargin] = contribution
	st.lines[LinePayroll] = payroll
	st.lines[LineFixedExpenses] = fixedExpenses
	st.lines[LineFixedCosts] = fixedCosts
	st.lines[LineEBITDA] = ebitda
	st.lines[LineNonOperational] = nonOperational
	st.lines[LineNetResult] = netResult

	alloc := e.snap.Dividends.Allocation
	var legal, invest, dividends, retained Series
	for m := 0; m < MonthsPerYear; m++ {
		result := netResult[m]
		if result > 0 {
			legal[m] = result * alloc.LegalReservePct
			invest[m] = result * alloc.InvestmentReservePct
			if e.snap.Dividends.Distribute {
				dividends[m] = result * alloc.DividendPct
			}
		}
		retained[m] = result - legal[m] - invest[m] - dividends[m]
	}
	st.lines[LineLegalReserve] = legal
	st.lines[LineInvestmentReserve] = invest
	st.lines[LineDividends] = dividends
	st.lines[LineRetainedEarnings] = retained

	return st
}

// fixedExpensesTotal sums the active fixed expenses per month.
func (e *Engine) fixedExpensesTotal() Series {
	var total Series
	for _, exp := range e.snap.Expenses {
		if !exp.Active {
			continue
		}
		for m := 0; m < MonthsPerYear; m++ {
			total[m] += exp.Monthly
		}
	}
	return total
}
