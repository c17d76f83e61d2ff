// Package projection computes and caches the twelve-month financial
// views derived from a stored scenario.
package projection

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fisiobudget/fisiobudget/internal/engine"
	"github.com/fisiobudget/fisiobudget/internal/scenario"
)

// ScenarioSource yields stored scenarios by id.
type ScenarioSource interface {
	Get(ctx context.Context, id uuid.UUID) (scenario.Scenario, error)
}

// Projection bundles every computed view for one scenario. It is the unit
// of caching: all endpoints slice this struct, so one engine pass serves
// the whole API surface.
type Projection struct {
	ScenarioID  uuid.UUID     `json:"scenario_id"`
	Scenario    string        `json:"scenario"`
	Kind        scenario.Kind `json:"kind"`
	Year        int           `json:"year"`
	Fingerprint string        `json:"fingerprint"`
	GeneratedAt time.Time     `json:"generated_at"`

	Revenue   engine.Series                                 `json:"revenue"`
	Payroll   [engine.MonthsPerYear]engine.PayrollBreakdown `json:"payroll"`
	Tax       []engine.MonthlyTax                           `json:"tax"`
	Statement map[string][]float64                          `json:"statement"`
	CashFlow  engine.CashFlow                               `json:"cash_flow"`
	BreakEven []engine.BreakEvenMonth                       `json:"break_even"`
	Occupancy engine.OccupancyReport                        `json:"occupancy"`
	TDABC     engine.TDABCReport                            `json:"tdabc"`
	Dividends engine.DividendPlan                           `json:"dividends"`
}

// Service computes projections on demand, caching by scenario id plus
// snapshot fingerprint.
type Service struct {
	scenarios ScenarioSource
	cache     *Cache
}

// NewService constructs the projection service. The cache may be nil.
func NewService(scenarios ScenarioSource, cache *Cache) *Service {
	return &Service{scenarios: scenarios, cache: cache}
}

// Project returns the full projection for one scenario, computing it when
// not cached.
func (s *Service) Project(ctx context.Context, id uuid.UUID) (Projection, error) {
	sc, err := s.scenarios.Get(ctx, id)
	if err != nil {
		return Projection{}, err
	}
	key, err := s.cache.BuildKey(ctx, "projection", id.String(), sc.Snapshot.Fingerprint())
	if err != nil {
		return Projection{}, err
	}
	var proj Projection
	err = s.cache.FetchJSON(ctx, key, &proj, func(context.Context) (any, error) {
		return compute(sc)
	})
	if err != nil {
		return Projection{}, err
	}
	return proj, nil
}

// Compare projects several scenarios concurrently, each on its own
// engine instance, and returns them in input order.
func (s *Service) Compare(ctx context.Context, ids []uuid.UUID) ([]Projection, error) {
	if len(ids) < 2 {
		return nil, fmt.Errorf("projection: compare needs at least two scenarios")
	}
	out := make([]Projection, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			proj, err := s.Project(ctx, id)
			if err != nil {
				return err
			}
			out[i] = proj
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func compute(sc scenario.Scenario) (Projection, error) {
	eng, err := engine.New(&sc.Snapshot)
	if err != nil {
		return Projection{}, err
	}

	st := eng.IncomeStatement()
	proj := Projection{
		ScenarioID:  sc.ID,
		Scenario:    sc.Name,
		Kind:        sc.Kind,
		Year:        sc.Snapshot.Year,
		Fingerprint: sc.Snapshot.Fingerprint(),
		GeneratedAt: time.Now().UTC(),
		Revenue:     st.Line(engine.LineGrossRevenue),
		Tax:         eng.SimplifiedTaxAnnual(),
		Statement:   st.ByName(),
		CashFlow:    eng.CashFlowAnnual(),
		BreakEven:   eng.BreakEvenAnnual(),
		Occupancy:   eng.OccupancyAnnual(),
		TDABC:       eng.TDABCAnnual(),
		Dividends:   eng.Dividends(),
	}
	for m := 1; m <= engine.MonthsPerYear; m++ {
		proj.Payroll[m-1] = eng.MonthlyPayroll(m)
	}
	return proj, nil
}
