package engine

// Bottleneck identifies the binding capacity constraint of a month.
type Bottleneck string

const (
	BottleneckNone         Bottleneck = "NONE"
	BottleneckRoom         Bottleneck = "ROOM"
	BottleneckProfessional Bottleneck = "PROFESSIONAL"
)

// OccupancyMonth is one month's capacity-versus-demand snapshot.
type OccupancyMonth struct {
	Month                int     `json:"month"`
	ProfessionalCapacity float64 `json:"professionalCapacity"`
	RoomCapacity         float64 `json:"roomCapacity"`
	ProfessionalDemand   float64 `json:"professionalDemand"`
	RoomDemand           float64 `json:"roomDemand"`
	ProfessionalRate     Ratio   `json:"professionalRate"`
	RoomRate             Ratio   `json:"roomRate"`
	// OverCapacity signals a demand above 100% of either dimension. It is
	// a reported condition, not an error: the projection keeps going.
	OverCapacity          bool       `json:"overCapacity"`
	Bottleneck            Bottleneck `json:"bottleneck"`
	Sessions              float64    `json:"sessions"`
	IdleProfessionalHours float64    `json:"idleProfessionalHours"`
	IdleRoomHours         float64    `json:"idleRoomHours"`
}

// OccupancyReport is the annual occupancy analysis.
type OccupancyReport struct {
	Months []OccupancyMonth `json:"months"`
	// Predominant is the bottleneck occurring in the most months across
	// the year (plurality; ties fall back to NONE).
	Predominant Bottleneck `json:"predominant"`
}

// OccupancyAnnual computes installed capacity against demanded hours for
// professionals and rooms. Professional capacity is the active staff's
// scheduled hours; room capacity is rooms × daily hours × business days.
// Demand is sessions × duration, with room demand restricted to
// room-using services. The month's bottleneck is the dimension with the
// higher occupancy rate; an exact tie is classified NONE by policy.
func (e *Engine) OccupancyAnnual() OccupancyReport {
	var profCapacity float64
	for _, c := range e.snap.Contractors {
		if c.Active {
			profCapacity += c.Schedule.MonthTotal()
		}
	}
	op := e.snap.Operational
	roomCapacity := float64(op.Rooms) * op.DailyHours * float64(op.BusinessDays)

	sessions := e.sessionsByService()
	report := OccupancyReport{Months: make([]OccupancyMonth, MonthsPerYear)}
	counts := map[Bottleneck]int{}

	for m := 0; m < MonthsPerYear; m++ {
		om := OccupancyMonth{
			Month:                m + 1,
			ProfessionalCapacity: profCapacity,
			RoomCapacity:         roomCapacity,
		}
		for name, series := range sessions {
			svc, _ := e.snap.ServiceByName(name)
			hours := series[m] * svc.DurationHours()
			om.Sessions += series[m]
			om.ProfessionalDemand += hours
			if svc.UsesRoom {
				om.RoomDemand += hours
			}
		}
		om.ProfessionalRate = NewRatio(om.ProfessionalDemand, profCapacity)
		om.RoomRate = NewRatio(om.RoomDemand, roomCapacity)
		om.OverCapacity = om.ProfessionalRate.Or(0) > 1 || om.RoomRate.Or(0) > 1
		om.Bottleneck = classifyBottleneck(om.ProfessionalRate, om.RoomRate)
		om.IdleProfessionalHours = max(0, profCapacity-om.ProfessionalDemand)
		om.IdleRoomHours = max(0, roomCapacity-om.RoomDemand)

		counts[om.Bottleneck]++
		report.Months[m] = om
	}

	report.Predominant = predominant(counts)
	return report
}

func classifyBottleneck(prof, room Ratio) Bottleneck {
	p, r := prof.Or(0), room.Or(0)
	switch {
	case r > p:
		return BottleneckRoom
	case p > r:
		return BottleneckProfessional
	default:
		return BottleneckNone
	}
}

// predominant picks the plurality bottleneck; a tied count is NONE.
func predominant(counts map[Bottleneck]int) Bottleneck {
	best, bestCount := BottleneckNone, -1
	tied := false
	for _, kind := range []Bottleneck{BottleneckRoom, BottleneckProfessional, BottleneckNone} {
		n := counts[kind]
		switch {
		case n > bestCount:
			best, bestCount, tied = kind, n, false
		case n == bestCount:
			tied = true
		}
	}
	if tied {
		return BottleneckNone
	}
	return best
}
