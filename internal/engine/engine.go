package engine

import (
	"fmt"

	"github.com/fisiobudget/fisiobudget/internal/assumptions"
)

// Engine owns one assumption snapshot and derives every projection from
// it. Derived records are recomputed in full on each call; the engine
// keeps no mutable state between calls, so a single instance is safe to
// reuse as long as the snapshot is not mutated concurrently. Independent
// scenarios must use independent engines.
type Engine struct {
	snap *assumptions.Snapshot
}

// New validates the snapshot and builds an engine over it. Configuration
// errors are fatal here, before any calculation runs; partial data is not.
func New(snap *assumptions.Snapshot) (*Engine, error) {
	if snap == nil {
		return nil, fmt.Errorf("engine: nil snapshot")
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return &Engine{snap: snap}, nil
}

// Snapshot exposes the underlying assumptions, read-only by convention.
func (e *Engine) Snapshot() *assumptions.Snapshot {
	return e.snap
}

// monthIndex converts a 1-12 month number to a series index, reporting
// whether it is in range.
func monthIndex(month int) (int, bool) {
	if month < 1 || month > MonthsPerYear {
		return 0, false
	}
	return month - 1, true
}
