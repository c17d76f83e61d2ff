package engine

import "fmt"

// DividendPeriod is one accrual window and its scheduled payout.
type DividendPeriod struct {
	Label      string  `json:"label"`
	StartMonth int     `json:"startMonth"`
	EndMonth   int     `json:"endMonth"`
	Accrued    float64 `json:"accrued"`
	// PaymentMonth is 1-12 when the payout lands inside the projected
	// year, zero when the lag pushes it past December.
	PaymentMonth int  `json:"paymentMonth"`
	PaidInYear   bool `json:"paidInYear"`
}

// PartnerShare is one partner's slice of the year's distributions.
type PartnerShare struct {
	Name       string             `json:"name"`
	Ownership  float64            `json:"ownership"`
	Normalized float64            `json:"normalized"`
	Capital    float64            `json:"capital"`
	ByPeriod   map[string]float64 `json:"byPeriod"`
	Total      float64            `json:"total"`
}

// DividendPlan is the full distribution schedule for the year.
type DividendPlan struct {
	// Allocated mirrors the DRE dividend line: the accrual per month.
	Allocated Series `json:"allocated"`
	// Schedule is the cash payment per month after the configured lag.
	Schedule Series           `json:"schedule"`
	Periods  []DividendPeriod `json:"periods"`
	Partners []PartnerShare   `json:"partners"`
	// UnpaidAtYearEnd carries accruals whose payment month falls past
	// December; they are reported, never silently dropped.
	UnpaidAtYearEnd   float64 `json:"unpaidAtYearEnd"`
	Payout            Ratio   `json:"payout"`
	DividendOnCapital Ratio   `json:"dividendOnCapital"`
}

// Dividends accumulates the DRE dividend allocation over the configured
// accrual periods and schedules each period's payout PaymentLagMonths
// after period close. The reconciliation invariant holds by construction:
// scheduled payments plus the unpaid year-end carry equal the total
// allocated in the income statement.
func (e *Engine) Dividends() DividendPlan {
	st := e.IncomeStatement()
	allocated := st.Line(LineDividends)
	policy := e.snap.Dividends

	plan := DividendPlan{Allocated: allocated}
	if !policy.Distribute {
		return plan
	}

	periodLen := policy.PeriodMonths
	if periodLen <= 0 {
		periodLen = 3
	}

	for start := 1; start <= MonthsPerYear; start += periodLen {
		end := start + periodLen - 1
		if end > MonthsPerYear {
			end = MonthsPerYear
		}
		var accrued float64
		for m := start; m <= end; m++ {
			accrued += allocated[m-1]
		}
		period := DividendPeriod{
			Label:      periodLabel(start, end, periodLen),
			StartMonth: start,
			EndMonth:   end,
			Accrued:    accrued,
		}
		payMonth := end + policy.PaymentLagMonths
		if payMonth <= MonthsPerYear {
			period.PaymentMonth = payMonth
			period.PaidInYear = true
			plan.Schedule[payMonth-1] += accrued
		} else {
			plan.UnpaidAtYearEnd += accrued
		}
		plan.Periods = append(plan.Periods, period)
	}

	plan.Partners = e.partnerShares(plan.Periods)

	netResult := st.Line(LineNetResult).Total()
	plan.Payout = NewRatio(plan.Schedule.Total(), netResult)
	var capital float64
	for _, p := range plan.Partners {
		capital += p.Capital
	}
	plan.DividendOnCapital = NewRatio(plan.Schedule.Total(), capital)
	return plan
}

// partnerShares splits each paid period by ownership, normalised over the
// active partners so a partially-populated partner table still sums to
// the full distribution.
func (e *Engine) partnerShares(periods []DividendPeriod) []PartnerShare {
	var totalOwnership float64
	for _, p := range e.snap.Partners {
		if p.Active {
			totalOwnership += p.Ownership
		}
	}
	var shares []PartnerShare
	for _, p := range e.snap.Partners {
		if !p.Active {
			continue
		}
		share := PartnerShare{
			Name:      p.Name,
			Ownership: p.Ownership,
			Capital:   p.Capital,
			ByPeriod:  make(map[string]float64, len(periods)),
		}
		if totalOwnership > 0 {
			share.Normalized = p.Ownership / totalOwnership
		}
		for _, period := range periods {
			if !period.PaidInYear {
				continue
			}
			amount := period.Accrued * share.Normalized
			share.ByPeriod[period.Label] = amount
			share.Total += amount
		}
		shares = append(shares, share)
	}
	return shares
}

func periodLabel(start, end, periodLen int) string {
	switch periodLen {
	case 3:
		return fmt.Sprintf("Q%d", (start-1)/3+1)
	case 6:
		return fmt.Sprintf("H%d", (start-1)/6+1)
	case 12:
		return "FY"
	default:
		return fmt.Sprintf("M%02d-M%02d", start, end)
	}
}
