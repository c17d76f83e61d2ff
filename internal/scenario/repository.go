package scenario

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fisiobudget/fisiobudget/internal/assumptions"
	"github.com/fisiobudget/fisiobudget/internal/platform/httpx"
)

// Repository persists scenarios. Snapshots are stored as JSONB so the
// schema does not chase every assumption field.
type Repository interface {
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, id uuid.UUID) (Scenario, error)
	Create(ctx context.Context, sc Scenario) (Scenario, error)
	Update(ctx context.Context, sc Scenario) (Scenario, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs the Postgres-backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const uniqueViolation = "23505"

func (r *repository) List(ctx context.Context) ([]Summary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, kind, (snapshot->>'year')::int, updated_at
		FROM scenarios
		ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("scenario: list: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		var updatedAt pgtype.Timestamptz
		if err := rows.Scan(&s.ID, &s.Name, &s.Kind, &s.Year, &updatedAt); err != nil {
			return nil, fmt.Errorf("scenario: scan: %w", err)
		}
		if updatedAt.Valid {
			s.UpdatedAt = updatedAt.Time
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (Scenario, error) {
	var (
		sc        Scenario
		raw       []byte
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, kind, notes, snapshot, created_at, updated_at
		FROM scenarios WHERE id = $1`, id).
		Scan(&sc.ID, &sc.Name, &sc.Kind, &sc.Notes, &raw, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Scenario{}, fmt.Errorf("%w: scenario %s", httpx.ErrNotFound, id)
	}
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: get: %w", err)
	}
	var snap assumptions.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Scenario{}, fmt.Errorf("scenario: decode snapshot: %w", err)
	}
	sc.Snapshot = snap
	if createdAt.Valid {
		sc.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		sc.UpdatedAt = updatedAt.Time
	}
	return sc, nil
}

func (r *repository) Create(ctx context.Context, sc Scenario) (Scenario, error) {
	raw, err := json.Marshal(sc.Snapshot)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: encode snapshot: %w", err)
	}
	now := time.Now().UTC()
	_, err = r.pool.Exec(ctx, `
		INSERT INTO scenarios (id, name, kind, notes, snapshot, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		sc.ID, sc.Name, sc.Kind, sc.Notes, raw, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Scenario{}, fmt.Errorf("%w: scenario name %q", httpx.ErrDuplicate, sc.Name)
		}
		return Scenario{}, fmt.Errorf("scenario: create: %w", err)
	}
	sc.CreatedAt = now
	sc.UpdatedAt = now
	return sc, nil
}

func (r *repository) Update(ctx context.Context, sc Scenario) (Scenario, error) {
	raw, err := json.Marshal(sc.Snapshot)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: encode snapshot: %w", err)
	}
	now := time.Now().UTC()
	tag, err := r.pool.Exec(ctx, `
		UPDATE scenarios
		SET name = $2, kind = $3, notes = $4, snapshot = $5, updated_at = $6
		WHERE id = $1`,
		sc.ID, sc.Name, sc.Kind, sc.Notes, raw, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Scenario{}, fmt.Errorf("%w: scenario name %q", httpx.ErrDuplicate, sc.Name)
		}
		return Scenario{}, fmt.Errorf("scenario: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return Scenario{}, fmt.Errorf("%w: scenario %s", httpx.ErrNotFound, sc.ID)
	}
	sc.UpdatedAt = now
	return sc, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM scenarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("scenario: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: scenario %s", httpx.ErrNotFound, id)
	}
	return nil
}
