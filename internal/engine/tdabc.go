package engine

import "sort"

// ServiceAllocation is one service's share of a month's costs and the
// resulting profit.
type ServiceAllocation struct {
	Service  string  `json:"service"`
	Sessions float64 `json:"sessions"`
	Revenue  float64 `json:"revenue"`
	AreaM2   float64 `json:"areaM2"`
	// Driver shares; the area share exists only for room-using services.
	AreaShare         Ratio   `json:"areaShare"`
	SessionShare      Ratio   `json:"sessionShare"`
	RevenueShare      Ratio   `json:"revenueShare"`
	AllocatedVariable float64 `json:"allocatedVariable"`
	AllocatedOverhead float64 `json:"allocatedOverhead"`
	Profit            float64 `json:"profit"`
}

// TDABCMonth is the per-service cost allocation of one month.
type TDABCMonth struct {
	Month int `json:"month"`
	// VariablePool is the volume-driven cost allocated by revenue share:
	// materials, card fees, tax, and payroll.
	VariablePool float64 `json:"variablePool"`
	// OverheadPools holds each expense category's monthly amount.
	OverheadPools map[string]float64  `json:"overheadPools"`
	Allocations   []ServiceAllocation `json:"allocations"`
}

// RankedService is a derived read-only profitability view.
type RankedService struct {
	Service string  `json:"service"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	// PerUnit is profit per room hour for room-using services and profit
	// per session otherwise; Unit names the basis.
	PerUnit Ratio  `json:"perUnit"`
	Unit    string `json:"unit"`
}

// TDABCReport is the annual activity-based costing analysis.
type TDABCReport struct {
	Months  []TDABCMonth    `json:"months"`
	Ranking []RankedService `json:"ranking"`
}

// TDABCAnnual allocates each month's variable costs and overhead across
// services. Overhead pools are the expense categories; each pool splits
// per its configured blend of the area, session, and revenue drivers.
// The variable pool follows the revenue driver alone, volume being what
// drives it. Per-service profit is revenue minus both allocations.
func (e *Engine) TDABCAnnual() TDABCReport {
	st := e.IncomeStatement()
	sessions := e.sessionsByService()
	revenue := e.revenueByService()
	totalSessions := e.totalSessions()
	totalRevenue := st.Line(LineGrossRevenue)

	variablePool := st.Line(LineVariableCosts).
		Plus(st.Line(LineCardFees)).
		Plus(st.Line(LineSimplifiedTax)).
		Plus(st.Line(LinePayroll))

	pools := e.overheadPools()

	// Area shares are fixed across months: assigned area over the total
	// area of room-using services.
	var totalArea float64
	for _, svc := range e.snap.Services {
		if svc.UsesRoom {
			totalArea += svc.AreaM2
		}
	}

	annualProfit := make(map[string]float64, len(e.snap.Services))
	annualRoomHours := make(map[string]float64, len(e.snap.Services))

	report := TDABCReport{Months: make([]TDABCMonth, MonthsPerYear)}
	for m := 0; m < MonthsPerYear; m++ {
		tm := TDABCMonth{
			Month:         m + 1,
			VariablePool:  variablePool[m],
			OverheadPools: make(map[string]float64, len(pools)),
		}
		for category, amount := range pools {
			tm.OverheadPools[category] = amount
		}

		for _, svc := range e.snap.Services {
			alloc := ServiceAllocation{
				Service:  svc.Name,
				Sessions: sessions[svc.Name][m],
				Revenue:  revenue[svc.Name][m],
				AreaM2:   svc.AreaM2,
			}
			if svc.UsesRoom {
				alloc.AreaShare = NewRatio(svc.AreaM2, totalArea)
			}
			alloc.SessionShare = NewRatio(alloc.Sessions, totalSessions[m])
			alloc.RevenueShare = NewRatio(alloc.Revenue, totalRevenue[m])

			alloc.AllocatedVariable = variablePool[m] * alloc.RevenueShare.Or(0)
			for category, amount := range pools {
				weights := e.snap.TDABC.Pools[category]
				alloc.AllocatedOverhead += amount * (weights.Area*alloc.AreaShare.Or(0) +
					weights.Sessions*alloc.SessionShare.Or(0) +
					weights.Revenue*alloc.RevenueShare.Or(0))
			}
			alloc.Profit = alloc.Revenue - alloc.AllocatedVariable - alloc.AllocatedOverhead

			annualProfit[svc.Name] += alloc.Profit
			if svc.UsesRoom {
				annualRoomHours[svc.Name] += alloc.Sessions * svc.DurationHours()
			}
			tm.Allocations = append(tm.Allocations, alloc)
		}
		report.Months[m] = tm
	}

	report.Ranking = e.rankServices(annualProfit, annualRoomHours, sessions, revenue)
	return report
}

// overheadPools sums active fixed expenses per category.
func (e *Engine) overheadPools() map[string]float64 {
	pools := make(map[string]float64)
	for _, exp := range e.snap.Expenses {
		if !exp.Active {
			continue
		}
		pools[exp.Category] += exp.Monthly
	}
	return pools
}

// rankServices orders services by profit per room hour (room-using) or
// per session (others), descending, ties broken by total revenue.
func (e *Engine) rankServices(profit, roomHours map[string]float64, sessions, revenue map[string]Series) []RankedService {
	ranking := make([]RankedService, 0, len(e.snap.Services))
	for _, svc := range e.snap.Services {
		rs := RankedService{
			Service: svc.Name,
			Revenue: revenue[svc.Name].Total(),
			Profit:  profit[svc.Name],
		}
		if svc.UsesRoom {
			rs.Unit = "hour"
			rs.PerUnit = NewRatio(rs.Profit, roomHours[svc.Name])
		} else {
			rs.Unit = "session"
			rs.PerUnit = NewRatio(rs.Profit, sessions[svc.Name].Total())
		}
		ranking = append(ranking, rs)
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		a, b := ranking[i], ranking[j]
		av, bv := a.PerUnit.Or(0), b.PerUnit.Or(0)
		if av != bv {
			return av > bv
		}
		return a.Revenue > b.Revenue
	})
	return ranking
}
