package scenario

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fisiobudget/fisiobudget/internal/platform/httpx"
)

// Invalidator is notified whenever a stored scenario changes, so cached
// projections derived from it can be discarded.
type Invalidator interface {
	Bump(ctx context.Context) error
}

// Service validates scenarios before they reach storage and keeps the
// projection cache coherent on writes.
type Service struct {
	repo        Repository
	invalidator Invalidator
}

// NewService constructs the scenario service. The invalidator may be nil.
func NewService(repo Repository, invalidator Invalidator) *Service {
	return &Service{repo: repo, invalidator: invalidator}
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (Scenario, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, sc Scenario) (Scenario, error) {
	if err := s.check(&sc); err != nil {
		return Scenario{}, err
	}
	sc.ID = uuid.New()
	created, err := s.repo.Create(ctx, sc)
	if err != nil {
		return Scenario{}, err
	}
	s.bump(ctx)
	return created, nil
}

func (s *Service) Update(ctx context.Context, sc Scenario) (Scenario, error) {
	if sc.ID == uuid.Nil {
		return Scenario{}, fmt.Errorf("%w: scenario id required", httpx.ErrValidation)
	}
	if err := s.check(&sc); err != nil {
		return Scenario{}, err
	}
	updated, err := s.repo.Update(ctx, sc)
	if err != nil {
		return Scenario{}, err
	}
	s.bump(ctx)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func (s *Service) check(sc *Scenario) error {
	sc.Name = strings.TrimSpace(sc.Name)
	if sc.Name == "" {
		return fmt.Errorf("%w: scenario name required", httpx.ErrValidation)
	}
	if sc.Kind == "" {
		sc.Kind = KindBase
	}
	if !sc.Kind.Valid() {
		return fmt.Errorf("%w: unknown scenario kind %q", httpx.ErrValidation, sc.Kind)
	}
	if err := sc.Snapshot.Validate(); err != nil {
		return fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	}
	return nil
}

func (s *Service) bump(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	_ = s.invalidator.Bump(ctx)
}
