// Package jobs wires background work: pre-computing scenario projections
// so interactive requests hit a warm cache.
package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/fisiobudget/fisiobudget/internal/projection"
	"github.com/fisiobudget/fisiobudget/internal/scenario"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskProjectionWarmup re-computes the projection of one scenario.
	TaskProjectionWarmup = "projection:warmup"
	// TaskWarmupAll enqueues a warmup for every stored scenario.
	TaskWarmupAll = "projection:warmup_all"
)

// ProjectionWarmupPayload identifies the scenario to warm.
type ProjectionWarmupPayload struct {
	ScenarioID uuid.UUID `json:"scenario_id"`
}

// NewProjectionWarmupTask constructs a warmup task for one scenario.
func NewProjectionWarmupTask(payload ProjectionWarmupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskProjectionWarmup, data), nil
}

// NewWarmupAllTask constructs the fan-out task, typically run on a cron.
func NewWarmupAllTask() *asynq.Task {
	return asynq.NewTask(TaskWarmupAll, nil)
}

// WarmupHandler processes projection warmup tasks.
type WarmupHandler struct {
	projections *projection.Service
	scenarios   *scenario.Service
	client      *Client
	logger      *slog.Logger
}

// NewWarmupHandler constructs the handler. The client is only needed for
// the fan-out task and may be nil otherwise.
func NewWarmupHandler(projections *projection.Service, scenarios *scenario.Service, client *Client, logger *slog.Logger) *WarmupHandler {
	return &WarmupHandler{projections: projections, scenarios: scenarios, client: client, logger: logger}
}

// HandleWarmup computes one scenario's projection, populating the cache.
func (h *WarmupHandler) HandleWarmup(ctx context.Context, t *asynq.Task) error {
	var payload ProjectionWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if _, err := h.projections.Project(ctx, payload.ScenarioID); err != nil {
		h.logger.Warn("projection warmup failed",
			slog.String("scenario", payload.ScenarioID.String()),
			slog.Any("error", err))
		return err
	}
	h.logger.Info("projection warmed", slog.String("scenario", payload.ScenarioID.String()))
	return nil
}

// HandleWarmupAll enqueues one warmup task per stored scenario.
func (h *WarmupHandler) HandleWarmupAll(ctx context.Context, _ *asynq.Task) error {
	if h.client == nil {
		return asynq.SkipRetry
	}
	summaries, err := h.scenarios.List(ctx)
	if err != nil {
		return err
	}
	for _, s := range summaries {
		if _, err := h.client.EnqueueProjectionWarmup(ctx, ProjectionWarmupPayload{ScenarioID: s.ID}); err != nil {
			h.logger.Warn("enqueue warmup", slog.String("scenario", s.ID.String()), slog.Any("error", err))
		}
	}
	return nil
}
