package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fisiobudget/fisiobudget/internal/assumptions"
)

func TestMonthlyRevenueBaseScenario(t *testing.T) {
	eng := newEngine(t, baseSnapshot())

	// 20 sessions at R$100.
	for month := 1; month <= 12; month++ {
		require.Equal(t, 2000.0, eng.MonthlyRevenue(month), "month %d", month)
	}
	require.Equal(t, 0.0, eng.MonthlyRevenue(0))
	require.Equal(t, 0.0, eng.MonthlyRevenue(13))
}

func TestMonthlyRevenueInactiveContractor(t *testing.T) {
	snap := baseSnapshot()
	snap.Contractors[0].Active = false
	eng := newEngine(t, snap)

	require.Equal(t, 0.0, eng.MonthlyRevenue(1))
}

func TestMonthlyRevenueMissingPriceYear(t *testing.T) {
	snap := baseSnapshot()
	snap.Year = 2027 // no price registered for 2027
	eng := newEngine(t, snap)

	require.Equal(t, 0.0, eng.MonthlyRevenue(1))
}

func TestMonthlyRevenueSeasonality(t *testing.T) {
	snap := baseSnapshot()
	factors := flatCounts(1)
	factors[0] = 0.5
	factors[11] = 1.2
	snap.Operational.Seasonality = &factors
	eng := newEngine(t, snap)

	require.InDelta(t, 1000.0, eng.MonthlyRevenue(1), 1e-9)
	require.InDelta(t, 2400.0, eng.MonthlyRevenue(12), 1e-9)
	require.InDelta(t, 2000.0, eng.MonthlyRevenue(6), 1e-9)
}

func TestUnregisteredServiceSessionsIgnored(t *testing.T) {
	snap := baseSnapshot()
	snap.Contractors[0].Sessions["Acupuntura"] = flatCounts(15)
	eng := newEngine(t, snap)
	ref := newEngine(t, baseSnapshot())

	// Sessions naming a service outside the registry carry no price,
	// duration, or room, so every projection matches the run without them.
	require.Equal(t, ref.totalSessions(), eng.totalSessions())
	require.Equal(t, ref.MonthlyRevenue(1), eng.MonthlyRevenue(1))
	require.Equal(t, ref.OccupancyAnnual(), eng.OccupancyAnnual())
	require.Equal(t, ref.BreakEvenAnnual(), eng.BreakEvenAnnual())
}

func TestMonthlyRevenueMultipleContractors(t *testing.T) {
	snap := baseSnapshot()
	snap.Contractors = append(snap.Contractors, assumptions.Contractor{
		Name:   "Bruno",
		Level:  2,
		Active: true,
		Sessions: map[string]assumptions.MonthlyCounts{
			"Pilates": flatCounts(10),
		},
	})
	eng := newEngine(t, snap)

	require.Equal(t, 3000.0, eng.MonthlyRevenue(1))
}
