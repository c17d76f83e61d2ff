package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fisiobudget/fisiobudget/internal/assumptions"
)

func TestBreakEvenAccounting(t *testing.T) {
	// No tax, no card fees: net revenue 2,000, contractor cost 700 is the
	// only fixed cost. Contribution margin ratio is 1, so break-even
	// revenue equals fixed costs.
	snap := baseSnapshot()
	snap.Tax.AnnexIII = []assumptions.TaxBracket{{Ceiling: 1e12, Rate: 0}}
	snap.Tax.AnnexV = []assumptions.TaxBracket{{Ceiling: 1e12, Rate: 0}}
	eng := newEngine(t, snap)

	be := eng.BreakEvenAnnual()[0]
	require.True(t, be.ContributionMarginRatio.Defined)
	require.InDelta(t, 1.0, be.ContributionMarginRatio.Value, 1e-9)
	require.True(t, be.BreakEvenRevenue.Defined)
	require.InDelta(t, 700.0, be.BreakEvenRevenue.Value, 1e-9)
	require.InDelta(t, 2000.0-700.0, be.MarginOfSafety.Value, 1e-9)
	require.InDelta(t, (2000.0-700.0)/2000.0, be.MarginOfSafetyPct.Value, 1e-9)
}

func TestBreakEvenSessions(t *testing.T) {
	snap := baseSnapshot()
	snap.Tax.AnnexIII = []assumptions.TaxBracket{{Ceiling: 1e12, Rate: 0}}
	snap.Tax.AnnexV = []assumptions.TaxBracket{{Ceiling: 1e12, Rate: 0}}
	eng := newEngine(t, snap)

	be := eng.BreakEvenAnnual()[0]
	// Break-even revenue of 700 at R$100 a session: 7 sessions.
	require.True(t, be.BreakEvenSessions.Defined)
	require.InDelta(t, 7.0, be.BreakEvenSessions.Value, 1e-9)
	require.True(t, be.BreakEvenHours.Defined)
	require.InDelta(t, 7.0, be.BreakEvenHours.Value, 1e-9)
}

func TestBreakEvenUndefinedWithoutMargin(t *testing.T) {
	eng := newEngine(t, zeroSnapshot())

	for _, be := range eng.BreakEvenAnnual() {
		require.False(t, be.ContributionMarginRatio.Defined)
		require.False(t, be.BreakEvenRevenue.Defined)
		require.False(t, be.MarginOfSafety.Defined)
		require.False(t, be.OperatingLeverage.Defined)
	}
}

func TestBreakEvenOperatingLeverage(t *testing.T) {
	snap := baseSnapshot()
	snap.Tax.AnnexIII = []assumptions.TaxBracket{{Ceiling: 1e12, Rate: 0}}
	snap.Tax.AnnexV = []assumptions.TaxBracket{{Ceiling: 1e12, Rate: 0}}
	eng := newEngine(t, snap)

	be := eng.BreakEvenAnnual()[0]
	// Leverage = contribution margin / EBITDA = 2000 / 1300.
	require.True(t, be.OperatingLeverage.Defined)
	require.InDelta(t, 2000.0/1300.0, be.OperatingLeverage.Value, 1e-9)
}

func TestBreakEvenIdleAdjusted(t *testing.T) {
	snap := baseSnapshot()
	snap.Tax.AnnexIII = []assumptions.TaxBracket{{Ceiling: 1e12, Rate: 0}}
	snap.Tax.AnnexV = []assumptions.TaxBracket{{Ceiling: 1e12, Rate: 0}}
	snap.Expenses = []assumptions.FixedExpense{
		{Name: "Aluguel", Category: "infra", Monthly: 1000, Active: true},
	}
	snap.TDABC.Pools = map[string]assumptions.DriverWeights{"infra": {Area: 1}}
	eng := newEngine(t, snap)

	be := eng.BreakEvenAnnual()[0]
	// Capacity 100h (25h/week × 4), demand 20h, idle 80h. The fully
	// area-driven R$1,000 prices R$10/h, so idle cost is R$800.
	require.InDelta(t, 800.0, be.IdleCost, 1e-9)
	require.True(t, be.BreakEvenAdjusted.Defined)
	require.Greater(t, be.BreakEvenAdjusted.Value, be.BreakEvenRevenue.Value)
	require.InDelta(t, be.BreakEvenRevenue.Value+800.0/be.ContributionMarginRatio.Value,
		be.BreakEvenAdjusted.Value, 1e-9)
}
