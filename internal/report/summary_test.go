package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fisiobudget/fisiobudget/internal/engine"
	"github.com/fisiobudget/fisiobudget/internal/projection"
)

func TestBRLUsesBrazilianSeparators(t *testing.T) {
	require.Equal(t, "R$ 1.234,50", BRL(1234.5))
	require.Equal(t, "R$ 0,00", BRL(0))
	require.Equal(t, "R$ -2.500,00", BRL(-2500))
}

func TestPercentHandlesUndefinedRatio(t *testing.T) {
	require.Equal(t, "—", Percent(engine.Undefined()))
	require.Equal(t, "28,0%", Percent(engine.DefinedValue(0.28)))
}

func testProjection() projection.Projection {
	monthly := func(v float64) []float64 {
		out := make([]float64, 12)
		for i := range out {
			out[i] = v
		}
		return out
	}
	var closing engine.Series
	for i := range closing {
		closing[i] = 1000 * float64(i+1)
	}
	tax := make([]engine.MonthlyTax, 12)
	for i := range tax {
		tax[i] = engine.MonthlyTax{Month: i + 1, Revenue: 2000, Due: 120}
	}
	be := make([]engine.BreakEvenMonth, 12)
	for i := range be {
		if i >= 3 {
			be[i].MarginOfSafety = engine.DefinedValue(500)
		}
	}
	return projection.Projection{
		Scenario: "Base",
		Year:     2026,
		Statement: map[string][]float64{
			"gross_revenue":       monthly(2000),
			"simplified_tax":      monthly(120),
			"net_revenue":         monthly(1880),
			"contribution_margin": monthly(1800),
			"fixed_costs":         monthly(700),
			"ebitda":              monthly(1100),
			"net_result":          monthly(1100),
			"dividends":           monthly(330),
		},
		Tax:       tax,
		CashFlow:  engine.CashFlow{Closing: closing, TaxPayableYearEnd: 120},
		BreakEven: be,
		Occupancy: engine.OccupancyReport{Predominant: engine.BottleneckRoom},
		Dividends: engine.DividendPlan{UnpaidAtYearEnd: 330},
	}
}

func TestBuildSummarisesAnnualTotals(t *testing.T) {
	s := Build(testProjection())

	require.Equal(t, "Base", s.Scenario)
	require.Equal(t, 2026, s.Year)
	require.Equal(t, string(engine.BottleneckRoom), s.Bottleneck)
	require.Equal(t, 9, s.BreakEvenMonths)
	require.Equal(t, "6,0%", s.AverageTaxRate)

	byLabel := map[string]Line{}
	for _, line := range s.Lines {
		byLabel[line.Label] = line
	}
	require.InDelta(t, 24000, byLabel["Receita bruta"].Value, 1e-9)
	require.Equal(t, "R$ 24.000,00", byLabel["Receita bruta"].Formatted)
	require.InDelta(t, 12000, byLabel["Caixa final"].Value, 1e-9)
	require.InDelta(t, 330, byLabel["Dividendos não pagos no ano"].Value, 1e-9)
	require.InDelta(t, 120, byLabel["Imposto a pagar (dez)"].Value, 1e-9)
}
