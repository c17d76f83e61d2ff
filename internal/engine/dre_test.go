package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fisiobudget/fisiobudget/internal/assumptions"
)

func TestIncomeStatementIdentities(t *testing.T) {
	snap := baseSnapshot()
	snap.Operational.CardFeeRate = 0.03
	snap.Operational.MaterialsRate = 0.05
	snap.Expenses = []assumptions.FixedExpense{
		{Name: "Aluguel", Category: "infra", Monthly: 500, Active: true},
	}
	snap.TDABC.Pools = map[string]assumptions.DriverWeights{
		"infra": {Area: 1},
	}
	eng := newEngine(t, snap)

	st := eng.IncomeStatement()
	gross := st.Line(LineGrossRevenue)
	deductions := st.Line(LineDeductions)
	net := st.Line(LineNetRevenue)
	variable := st.Line(LineVariableCosts)
	contribution := st.Line(LineContributionMargin)
	fixed := st.Line(LineFixedCosts)
	ebitda := st.Line(LineEBITDA)

	for m := 0; m < MonthsPerYear; m++ {
		require.InDelta(t, gross[m]-deductions[m], net[m], 1e-9, "net revenue month %d", m+1)
		require.InDelta(t, net[m]-variable[m], contribution[m], 1e-9, "contribution month %d", m+1)
		require.InDelta(t, contribution[m]-fixed[m], ebitda[m], 1e-9, "ebitda month %d", m+1)
		require.InDelta(t, st.Line(LineSimplifiedTax)[m]+st.Line(LineCardFees)[m], deductions[m], 1e-9)
		require.InDelta(t, st.Line(LinePayroll)[m]+st.Line(LineFixedExpenses)[m], fixed[m], 1e-9)
	}
}

func TestIncomeStatementBaseScenario(t *testing.T) {
	// 1 service at R$100, 20 sessions, no fixed expenses, no tax: EBITDA
	// is revenue minus the contractor's pay.
	snap := baseSnapshot()
	snap.Tax.AnnexIII = []assumptions.TaxBracket{{Ceiling: 1e12, Rate: 0, Deduction: 0}}
	snap.Tax.AnnexV = []assumptions.TaxBracket{{Ceiling: 1e12, Rate: 0, Deduction: 0}}
	eng := newEngine(t, snap)

	st := eng.IncomeStatement()
	require.InDelta(t, 2000.0, st.Line(LineGrossRevenue)[0], 1e-9)
	require.InDelta(t, 2000.0-700.0, st.Line(LineEBITDA)[0], 1e-9)
}

func TestIncomeStatementAllocationOnlyWhenPositive(t *testing.T) {
	snap := baseSnapshot()
	snap.Expenses = []assumptions.FixedExpense{
		{Name: "Aluguel", Category: "infra", Monthly: 10000, Active: true},
	}
	snap.TDABC.Pools = map[string]assumptions.DriverWeights{"infra": {Area: 1}}
	eng := newEngine(t, snap)

	st := eng.IncomeStatement()
	for m := 0; m < MonthsPerYear; m++ {
		net := st.Line(LineNetResult)[m]
		require.Negative(t, net)
		require.Equal(t, 0.0, st.Line(LineLegalReserve)[m])
		require.Equal(t, 0.0, st.Line(LineDividends)[m])
		// The loss is retained in full.
		require.InDelta(t, net, st.Line(LineRetainedEarnings)[m], 1e-9)
	}
}

func TestIncomeStatementAllocationSplit(t *testing.T) {
	eng := newEngine(t, baseSnapshot())

	st := eng.IncomeStatement()
	net := st.Line(LineNetResult)[0]
	require.Positive(t, net)
	require.InDelta(t, net*0.05, st.Line(LineLegalReserve)[0], 1e-9)
	require.InDelta(t, net*0.20, st.Line(LineInvestmentReserve)[0], 1e-9)
	require.InDelta(t, net*0.30, st.Line(LineDividends)[0], 1e-9)
	require.InDelta(t, net*0.45, st.Line(LineRetainedEarnings)[0], 1e-9)
}

func TestIncomeStatementByNameCoversEveryLine(t *testing.T) {
	eng := newEngine(t, baseSnapshot())

	byName := eng.IncomeStatement().ByName()
	require.Len(t, byName, int(numLineItems))
	for _, item := range LineItems() {
		series, ok := byName[item.String()]
		require.True(t, ok, "line %s missing", item)
		require.Len(t, series, MonthsPerYear)
	}

	// Both accessors work directly on the returned statement value.
	require.InDelta(t, byName[LineGrossRevenue.String()][0],
		eng.IncomeStatement().Line(LineGrossRevenue)[0], 1e-9)
}

func TestIncomeStatementAllocationOverLimitRejected(t *testing.T) {
	snap := baseSnapshot()
	snap.Dividends.Allocation = assumptions.ProfitAllocation{
		LegalReservePct:      0.50,
		InvestmentReservePct: 0.40,
		DividendPct:          0.30,
	}
	_, err := New(snap)
	require.ErrorIs(t, err, assumptions.ErrConfig)
}
