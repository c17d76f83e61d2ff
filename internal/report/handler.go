package report

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fisiobudget/fisiobudget/internal/platform/httpx"
	"github.com/fisiobudget/fisiobudget/internal/projection"
)

// Handler serves the annual summary report.
type Handler struct {
	projections *projection.Service
	logger      *slog.Logger
}

// NewHandler constructs the report handler.
func NewHandler(projections *projection.Service, logger *slog.Logger) *Handler {
	return &Handler{projections: projections, logger: logger}
}

// MountRoutes attaches report routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/{id}/summary", h.summary)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid scenario id", httpx.ErrValidation))
		return
	}
	proj, err := h.projections.Project(r.Context(), id)
	if err != nil {
		h.logger.Error("summary report", slog.String("scenario", id.String()), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, Build(proj))
}
