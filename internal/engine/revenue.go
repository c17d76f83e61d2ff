package engine

// sessionsByService aggregates planned sessions per service across active
// contractors, with seasonality applied. Sessions referencing a service
// absent from the registry are ignored: without a price, duration, or
// room they cannot enter revenue, occupancy, or break-even.
func (e *Engine) sessionsByService() map[string]Series {
	out := make(map[string]Series, len(e.snap.Services))
	for _, svc := range e.snap.Services {
		out[svc.Name] = Series{}
	}
	for _, c := range e.snap.Contractors {
		if !c.Active {
			continue
		}
		for name, counts := range c.Sessions {
			series, ok := out[name]
			if !ok {
				continue
			}
			for m := 0; m < MonthsPerYear; m++ {
				series[m] += counts[m] * e.snap.SeasonalityFactor(m)
			}
			out[name] = series
		}
	}
	return out
}

// totalSessions returns the clinic-wide session count per month.
func (e *Engine) totalSessions() Series {
	var total Series
	for _, series := range e.sessionsByService() {
		total = total.Plus(series)
	}
	return total
}

// revenueByService prices each service's sessions for the projected year.
// A service with no price registered for the year contributes zero.
func (e *Engine) revenueByService() map[string]Series {
	sessions := e.sessionsByService()
	out := make(map[string]Series, len(sessions))
	for name, series := range sessions {
		svc, _ := e.snap.ServiceByName(name)
		out[name] = series.Scaled(svc.PriceFor(e.snap.Year))
	}
	return out
}

// grossRevenue is the clinic-wide revenue per month.
func (e *Engine) grossRevenue() Series {
	var total Series
	for _, series := range e.revenueByService() {
		total = total.Plus(series)
	}
	return total
}

// contractorRevenue returns one contractor's own billed revenue per month,
// the base for revenue-share compensation.
func (e *Engine) contractorRevenue(idx int) Series {
	var total Series
	c := e.snap.Contractors[idx]
	for name, counts := range c.Sessions {
		svc, ok := e.snap.ServiceByName(name)
		if !ok {
			continue
		}
		price := svc.PriceFor(e.snap.Year)
		for m := 0; m < MonthsPerYear; m++ {
			total[m] += counts[m] * e.snap.SeasonalityFactor(m) * price
		}
	}
	return total
}

// MonthlyRevenue returns total revenue for a month (1-12). Out-of-range
// months yield zero.
func (e *Engine) MonthlyRevenue(month int) float64 {
	idx, ok := monthIndex(month)
	if !ok {
		return 0
	}
	return e.grossRevenue()[idx]
}
