package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fisiobudget/fisiobudget/internal/assumptions"
)

func TestDividendsReconciliation(t *testing.T) {
	eng := newEngine(t, baseSnapshot())

	plan := eng.Dividends()
	// Paid plus carried equals everything the DRE allocated.
	require.InDelta(t, plan.Allocated.Total(), plan.Schedule.Total()+plan.UnpaidAtYearEnd, 1e-9)
}

func TestDividendsQuarterlyScheduleWithLag(t *testing.T) {
	eng := newEngine(t, baseSnapshot())

	plan := eng.Dividends()
	require.Len(t, plan.Periods, 4)

	// Q1 closes in March, paid in April; Q4 closes in December and the
	// one-month lag pushes payment past year end.
	q1 := plan.Periods[0]
	require.Equal(t, "Q1", q1.Label)
	require.Equal(t, 4, q1.PaymentMonth)
	require.True(t, q1.PaidInYear)
	require.InDelta(t, q1.Accrued, plan.Schedule[3], 1e-9)

	q4 := plan.Periods[3]
	require.False(t, q4.PaidInYear)
	require.Equal(t, 0, q4.PaymentMonth)
	require.InDelta(t, q4.Accrued, plan.UnpaidAtYearEnd, 1e-9)
}

func TestDividendsZeroLagPaysInPeriodCloseMonth(t *testing.T) {
	snap := baseSnapshot()
	snap.Dividends.PaymentLagMonths = 0
	eng := newEngine(t, snap)

	plan := eng.Dividends()
	require.Equal(t, 0.0, plan.UnpaidAtYearEnd)
	require.InDelta(t, plan.Allocated.Total(), plan.Schedule.Total(), 1e-9)
	// Payments land in March, June, September, December.
	for _, month := range []int{3, 6, 9, 12} {
		require.Positive(t, plan.Schedule[month-1], "month %d", month)
	}
}

func TestDividendsPartnerSplit(t *testing.T) {
	snap := baseSnapshot()
	snap.Partners = []assumptions.Partner{
		{Name: "Sócia A", Ownership: 0.6, Capital: 60000, Active: true},
		{Name: "Sócia B", Ownership: 0.4, Capital: 40000, Active: true},
	}
	eng := newEngine(t, snap)

	plan := eng.Dividends()
	require.Len(t, plan.Partners, 2)
	var split float64
	for _, share := range plan.Partners {
		split += share.Total
	}
	require.InDelta(t, plan.Schedule.Total(), split, 1e-9)
	require.InDelta(t, 0.6, plan.Partners[0].Normalized, 1e-9)

	require.True(t, plan.DividendOnCapital.Defined)
	require.InDelta(t, plan.Schedule.Total()/100000, plan.DividendOnCapital.Value, 1e-9)
}

func TestDividendsDisabled(t *testing.T) {
	snap := baseSnapshot()
	snap.Dividends.Distribute = false
	eng := newEngine(t, snap)

	plan := eng.Dividends()
	require.Equal(t, 0.0, plan.Allocated.Total())
	require.Equal(t, 0.0, plan.Schedule.Total())
	require.Empty(t, plan.Periods)
}

func TestDividendsLossYearAccruesNothing(t *testing.T) {
	snap := baseSnapshot()
	snap.Expenses = []assumptions.FixedExpense{
		{Name: "Aluguel", Category: "infra", Monthly: 10000, Active: true},
	}
	snap.TDABC.Pools = map[string]assumptions.DriverWeights{"infra": {Area: 1}}
	eng := newEngine(t, snap)

	plan := eng.Dividends()
	require.Equal(t, 0.0, plan.Allocated.Total())
	require.Equal(t, 0.0, plan.UnpaidAtYearEnd)
}
