package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fisiobudget/fisiobudget/internal/assumptions"
)

// annexTables returns the statutory annex tables up to the R$3.6M
// sublimite, the range over which the deduction construction keeps the
// effective rate continuous at every boundary.
func annexTables() ([]assumptions.TaxBracket, []assumptions.TaxBracket) {
	annexIII := []assumptions.TaxBracket{
		{Ceiling: 180000, Rate: 0.06, Deduction: 0},
		{Ceiling: 360000, Rate: 0.112, Deduction: 9360},
		{Ceiling: 720000, Rate: 0.135, Deduction: 17640},
		{Ceiling: 1800000, Rate: 0.16, Deduction: 35640},
		{Ceiling: 3600000, Rate: 0.21, Deduction: 125640},
	}
	annexV := []assumptions.TaxBracket{
		{Ceiling: 180000, Rate: 0.155, Deduction: 0},
		{Ceiling: 360000, Rate: 0.18, Deduction: 4500},
		{Ceiling: 720000, Rate: 0.195, Deduction: 9900},
		{Ceiling: 1800000, Rate: 0.205, Deduction: 17100},
		{Ceiling: 3600000, Rate: 0.23, Deduction: 62100},
	}
	return annexIII, annexV
}

func flatCounts(v float64) assumptions.MonthlyCounts {
	var counts assumptions.MonthlyCounts
	for i := range counts {
		counts[i] = v
	}
	return counts
}

// baseSnapshot models one room-based service at R$100 per hour-long
// session and one contractor delivering 20 sessions a month.
func baseSnapshot() *assumptions.Snapshot {
	annexIII, annexV := annexTables()
	return &assumptions.Snapshot{
		Name: "base",
		Year: 2026,
		Services: []assumptions.Service{
			{
				Name:        "Pilates",
				Prices:      map[int]float64{2026: 100},
				DurationMin: 60,
				UsesRoom:    true,
				AreaM2:      20,
			},
		},
		Contractors: []assumptions.Contractor{
			{
				Name:   "Ana",
				Level:  1,
				Active: true,
				Schedule: assumptions.WeeklySchedule{
					Monday: 5, Tuesday: 5, Wednesday: 5, Thursday: 5, Friday: 5,
				},
				Sessions: map[string]assumptions.MonthlyCounts{
					"Pilates": flatCounts(20),
				},
			},
		},
		Operational: assumptions.Operational{
			DailyHours:   8,
			BusinessDays: 20,
			Rooms:        1,
		},
		Payroll: assumptions.PayrollParams{
			EmployerINSSRate:        0.20,
			FGTSRate:                0.08,
			VacationProvisionRate:   0.1111,
			ThirteenthProvisionRate: 0.0833,
			ProLaboreINSSRate:       0.11,
			LevelShares:             map[int]float64{1: 0.35, 2: 0.30, 3: 0.25, 4: 0.20},
		},
		Tax: assumptions.TaxParams{
			AnnexIII:         annexIII,
			AnnexV:           annexV,
			FactorRThreshold: 0.28,
		},
		Dividends: assumptions.DividendPolicy{
			Allocation: assumptions.ProfitAllocation{
				LegalReservePct:      0.05,
				InvestmentReservePct: 0.20,
				DividendPct:          0.30,
			},
			PeriodMonths:     3,
			PaymentLagMonths: 1,
			Distribute:       true,
		},
	}
}

func newEngine(t *testing.T, snap *assumptions.Snapshot) *Engine {
	t.Helper()
	eng, err := New(snap)
	require.NoError(t, err)
	return eng
}

// zeroSnapshot has every entity list empty and every amount zero.
func zeroSnapshot() *assumptions.Snapshot {
	annexIII, annexV := annexTables()
	return &assumptions.Snapshot{
		Name: "empty",
		Year: 2026,
		Tax: assumptions.TaxParams{
			AnnexIII:         annexIII,
			AnnexV:           annexV,
			FactorRThreshold: 0.28,
		},
	}
}
