package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsNilSnapshot(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

// TestZeroSnapshotAllOutputsZero feeds a snapshot with every entity list
// empty and checks that each projection degrades to zeros without a
// single division error or panic.
func TestZeroSnapshotAllOutputsZero(t *testing.T) {
	eng := newEngine(t, zeroSnapshot())

	for month := 1; month <= 12; month++ {
		require.Equal(t, 0.0, eng.MonthlyRevenue(month))
		require.Equal(t, PayrollBreakdown{}, eng.MonthlyPayroll(month))
	}

	st := eng.IncomeStatement()
	for _, item := range LineItems() {
		require.Equal(t, 0.0, st.Line(item).Total(), "line %s", item)
	}

	for _, mt := range eng.SimplifiedTaxAnnual() {
		require.Equal(t, 0.0, mt.Due)
	}

	cf := eng.CashFlowAnnual()
	require.Equal(t, 0.0, cf.Closing[11])

	for _, be := range eng.BreakEvenAnnual() {
		require.Equal(t, 0.0, be.NetRevenue)
		require.False(t, be.BreakEvenRevenue.Defined)
	}

	report := eng.OccupancyAnnual()
	require.Equal(t, BottleneckNone, report.Predominant)

	tdabc := eng.TDABCAnnual()
	require.Len(t, tdabc.Months, MonthsPerYear)

	plan := eng.Dividends()
	require.Equal(t, 0.0, plan.Schedule.Total())
}
