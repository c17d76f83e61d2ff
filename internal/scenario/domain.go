// Package scenario stores named assumption snapshots so a clinic can
// keep a base plan alongside optimistic and pessimistic variants.
package scenario

import (
	"time"

	"github.com/google/uuid"

	"github.com/fisiobudget/fisiobudget/internal/assumptions"
)

// Kind labels how a scenario relates to the clinic's main plan.
type Kind string

const (
	KindBase        Kind = "base"
	KindOptimistic  Kind = "optimistic"
	KindPessimistic Kind = "pessimistic"
)

// Valid reports whether the kind is one of the known labels.
func (k Kind) Valid() bool {
	switch k {
	case KindBase, KindOptimistic, KindPessimistic:
		return true
	}
	return false
}

// Scenario pairs a validated assumption snapshot with identity and
// bookkeeping metadata.
type Scenario struct {
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Kind      Kind                 `json:"kind"`
	Notes     string               `json:"notes,omitempty"`
	Snapshot  assumptions.Snapshot `json:"snapshot"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// Summary is the listing projection of a scenario, without the snapshot
// payload.
type Summary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Kind      Kind      `json:"kind"`
	Year      int       `json:"year"`
	UpdatedAt time.Time `json:"updated_at"`
}
