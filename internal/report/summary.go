// Package report renders annual summaries of a projection with values
// formatted for Brazilian readers.
package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fisiobudget/fisiobudget/internal/engine"
	"github.com/fisiobudget/fisiobudget/internal/projection"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// BRL formats a value as Brazilian reais with pt-BR digit grouping.
func BRL(v float64) string {
	return printer.Sprintf("R$ %.2f", v)
}

// Percent formats a ratio as a pt-BR percentage, or a dash when the
// ratio is undefined.
func Percent(r engine.Ratio) string {
	if !r.Defined {
		return "—"
	}
	return printer.Sprintf("%.1f%%", r.Value*100)
}

// Line is one row of the annual summary.
type Line struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// Summary condenses a projection into the figures a clinic owner asks
// for first: annual totals, year-end cash, unpaid obligations, and the
// month the plan breaks even.
type Summary struct {
	Scenario        string `json:"scenario"`
	Year            int    `json:"year"`
	Lines           []Line `json:"lines"`
	AverageTaxRate  string `json:"average_tax_rate"`
	Bottleneck      string `json:"bottleneck"`
	BreakEvenMonths int    `json:"break_even_months"`
}

// Build assembles the annual summary from a computed projection.
func Build(proj projection.Projection) Summary {
	line := func(label, key string) Line {
		var total float64
		for _, v := range proj.Statement[key] {
			total += v
		}
		return Line{Label: label, Value: total, Formatted: BRL(total)}
	}

	s := Summary{
		Scenario: proj.Scenario,
		Year:     proj.Year,
		Lines: []Line{
			line("Receita bruta", "gross_revenue"),
			line("Impostos (Simples Nacional)", "simplified_tax"),
			line("Receita líquida", "net_revenue"),
			line("Margem de contribuição", "contribution_margin"),
			line("Custos fixos", "fixed_costs"),
			line("EBITDA", "ebitda"),
			line("Resultado líquido", "net_result"),
			line("Dividendos", "dividends"),
		},
		Bottleneck: string(proj.Occupancy.Predominant),
	}

	s.Lines = append(s.Lines,
		Line{Label: "Caixa final", Value: lastValue(proj.CashFlow.Closing), Formatted: BRL(lastValue(proj.CashFlow.Closing))},
		Line{Label: "Imposto a pagar (dez)", Value: proj.CashFlow.TaxPayableYearEnd, Formatted: BRL(proj.CashFlow.TaxPayableYearEnd)},
		Line{Label: "Dividendos não pagos no ano", Value: proj.Dividends.UnpaidAtYearEnd, Formatted: BRL(proj.Dividends.UnpaidAtYearEnd)},
	)

	s.AverageTaxRate = Percent(averageTaxRate(proj.Tax))

	for _, be := range proj.BreakEven {
		if be.MarginOfSafety.Defined && be.MarginOfSafety.Value >= 0 {
			s.BreakEvenMonths++
		}
	}
	return s
}

func lastValue(s engine.Series) float64 {
	return s[len(s)-1]
}

func averageTaxRate(months []engine.MonthlyTax) engine.Ratio {
	var due, revenue float64
	for _, m := range months {
		due += m.Due
		revenue += m.Revenue
	}
	return engine.NewRatio(due, revenue)
}
