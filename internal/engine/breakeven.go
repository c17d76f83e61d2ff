package engine

// BreakEvenMonth is one month's break-even analysis. Quantities that can
// be undefined (any figure divided by a margin or result that may be
// zero or negative) are carried as Ratio, never as a fabricated zero.
type BreakEvenMonth struct {
	Month                   int     `json:"month"`
	NetRevenue              float64 `json:"netRevenue"`
	VariableCosts           float64 `json:"variableCosts"`
	ContributionMargin      float64 `json:"contributionMargin"`
	FixedCosts              float64 `json:"fixedCosts"`
	EBITDA                  float64 `json:"ebitda"`
	ContributionMarginRatio Ratio   `json:"contributionMarginRatio"`
	// BreakEvenRevenue is the accounting break-even; undefined when the
	// contribution margin ratio is not positive.
	BreakEvenRevenue Ratio `json:"breakEvenRevenue"`
	// BreakEvenAdjusted additionally absorbs the idle-capacity cost.
	BreakEvenAdjusted Ratio   `json:"breakEvenAdjusted"`
	BreakEvenSessions Ratio   `json:"breakEvenSessions"`
	BreakEvenHours    Ratio   `json:"breakEvenHours"`
	IdleCost          float64 `json:"idleCost"`
	MarginOfSafety    Ratio   `json:"marginOfSafety"`
	MarginOfSafetyPct Ratio   `json:"marginOfSafetyPct"`
	OperatingLeverage Ratio   `json:"operatingLeverage"`
}

// BreakEvenAnnual computes the monthly break-even records from the income
// statement and the occupancy analysis.
func (e *Engine) BreakEvenAnnual() []BreakEvenMonth {
	st := e.IncomeStatement()
	occupancy := e.OccupancyAnnual()
	sessions := e.totalSessions()
	infra := e.infrastructureCost()

	net := st.Line(LineNetRevenue)
	variable := st.Line(LineVariableCosts)
	contribution := st.Line(LineContributionMargin)
	fixed := st.Line(LineFixedCosts)
	ebitda := st.Line(LineEBITDA)
	gross := st.Line(LineGrossRevenue)

	out := make([]BreakEvenMonth, MonthsPerYear)
	for m := 0; m < MonthsPerYear; m++ {
		om := occupancy.Months[m]
		be := BreakEvenMonth{
			Month:              m + 1,
			NetRevenue:         net[m],
			VariableCosts:      variable[m],
			ContributionMargin: contribution[m],
			FixedCosts:         fixed[m],
			EBITDA:             ebitda[m],
		}
		if net[m] > 0 {
			be.ContributionMarginRatio = DefinedValue(contribution[m] / net[m])
		}

		// Idle-capacity cost: the area-driven overhead priced per
		// professional hour, applied to the hours not demanded.
		costPerHour := NewRatio(infra, om.ProfessionalCapacity)
		be.IdleCost = costPerHour.Or(0) * om.IdleProfessionalHours

		if cm := be.ContributionMarginRatio; cm.Defined && cm.Value > 0 {
			be.BreakEvenRevenue = DefinedValue(fixed[m] / cm.Value)
			be.BreakEvenAdjusted = DefinedValue((fixed[m] + be.IdleCost) / cm.Value)

			// Sessions and hours at break-even scale the month's actual
			// volume by the break-even share of revenue.
			if gross[m] > 0 {
				share := be.BreakEvenRevenue.Value / gross[m]
				be.BreakEvenSessions = DefinedValue(share * sessions[m])
				be.BreakEvenHours = DefinedValue(share * om.ProfessionalDemand)
			}

			be.MarginOfSafety = DefinedValue(net[m] - be.BreakEvenRevenue.Value)
			if net[m] != 0 {
				be.MarginOfSafetyPct = DefinedValue(be.MarginOfSafety.Value / net[m])
			}
		}
		if ebitda[m] != 0 {
			be.OperatingLeverage = DefinedValue(contribution[m] / ebitda[m])
		}
		out[m] = be
	}
	return out
}

// infrastructureCost is the monthly overhead attributable to physical
// space: each active expense weighted by its pool's area driver.
func (e *Engine) infrastructureCost() float64 {
	var total float64
	for _, exp := range e.snap.Expenses {
		if !exp.Active {
			continue
		}
		total += exp.Monthly * e.snap.TDABC.Pools[exp.Category].Area
	}
	return total
}
