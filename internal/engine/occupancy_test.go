package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fisiobudget/fisiobudget/internal/assumptions"
)

func TestOccupancyOverCapacityRoomBottleneck(t *testing.T) {
	snap := baseSnapshot()
	// Room capacity 1 × 8h × 20d = 160h; 200 one-hour sessions demand
	// 200h. Staff capacity 60h/week × 4 = 240h keeps professionals under
	// their ceiling.
	snap.Contractors[0].Sessions["Pilates"] = flatCounts(200)
	snap.Contractors[0].Schedule = assumptions.WeeklySchedule{
		Monday: 10, Tuesday: 10, Wednesday: 10, Thursday: 10, Friday: 10, Saturday: 10,
	}
	eng := newEngine(t, snap)

	report := eng.OccupancyAnnual()
	om := report.Months[0]
	require.Equal(t, 160.0, om.RoomCapacity)
	require.Equal(t, 200.0, om.RoomDemand)
	require.True(t, om.RoomRate.Defined)
	require.InDelta(t, 1.25, om.RoomRate.Value, 1e-9)
	require.True(t, om.OverCapacity)
	require.Equal(t, BottleneckRoom, om.Bottleneck)
	require.Equal(t, BottleneckRoom, report.Predominant)
}

func TestOccupancyProfessionalBottleneck(t *testing.T) {
	snap := baseSnapshot()
	// 100h staff capacity against 20h of demand, but a large room pool.
	snap.Operational.Rooms = 10
	eng := newEngine(t, snap)

	om := eng.OccupancyAnnual().Months[0]
	require.Greater(t, om.ProfessionalRate.Value, om.RoomRate.Value)
	require.Equal(t, BottleneckProfessional, om.Bottleneck)
	require.False(t, om.OverCapacity)
}

func TestOccupancyTieIsNone(t *testing.T) {
	eng := newEngine(t, zeroSnapshot())

	report := eng.OccupancyAnnual()
	for _, om := range report.Months {
		require.False(t, om.ProfessionalRate.Defined)
		require.False(t, om.RoomRate.Defined)
		require.Equal(t, BottleneckNone, om.Bottleneck)
	}
	require.Equal(t, BottleneckNone, report.Predominant)
}

func TestOccupancyHomeVisitsSkipRooms(t *testing.T) {
	snap := baseSnapshot()
	snap.Services = append(snap.Services, assumptions.Service{
		Name:        "Domiciliar",
		Prices:      map[int]float64{2026: 150},
		DurationMin: 60,
		UsesRoom:    false,
	})
	snap.Contractors[0].Sessions["Domiciliar"] = flatCounts(10)
	eng := newEngine(t, snap)

	om := eng.OccupancyAnnual().Months[0]
	require.Equal(t, 30.0, om.ProfessionalDemand)
	require.Equal(t, 20.0, om.RoomDemand)
}

func TestOccupancyIdleHours(t *testing.T) {
	eng := newEngine(t, baseSnapshot())

	om := eng.OccupancyAnnual().Months[0]
	// 100h capacity, 20h demand.
	require.InDelta(t, 80.0, om.IdleProfessionalHours, 1e-9)
	require.InDelta(t, 140.0, om.IdleRoomHours, 1e-9)
}
