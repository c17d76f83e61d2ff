package projection

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fisiobudget/fisiobudget/internal/engine"
	"github.com/fisiobudget/fisiobudget/internal/platform/httpx"
)

// Handler exposes the computed views of a scenario over JSON.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler constructs the HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// MountRoutes attaches projection routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/compare", h.compare)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.full)
		r.Get("/dre", h.dre)
		r.Get("/cashflow", h.cashflow)
		r.Get("/tax", h.tax)
		r.Get("/breakeven", h.breakeven)
		r.Get("/occupancy", h.occupancy)
		r.Get("/tdabc", h.tdabc)
		r.Get("/dividends", h.dividends)
		r.Get("/revenue", h.revenue)
		r.Get("/payroll", h.payroll)
	})
}

func (h *Handler) project(w http.ResponseWriter, r *http.Request) (Projection, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid scenario id", httpx.ErrValidation))
		return Projection{}, false
	}
	proj, err := h.service.Project(r.Context(), id)
	if err != nil {
		h.logger.Error("compute projection", slog.String("scenario", id.String()), slog.Any("error", err))
		httpx.RespondError(w, err)
		return Projection{}, false
	}
	return proj, true
}

func (h *Handler) full(w http.ResponseWriter, r *http.Request) {
	if proj, ok := h.project(w, r); ok {
		httpx.JSON(w, http.StatusOK, proj)
	}
}

func (h *Handler) dre(w http.ResponseWriter, r *http.Request) {
	if proj, ok := h.project(w, r); ok {
		httpx.JSON(w, http.StatusOK, proj.Statement)
	}
}

func (h *Handler) cashflow(w http.ResponseWriter, r *http.Request) {
	if proj, ok := h.project(w, r); ok {
		httpx.JSON(w, http.StatusOK, proj.CashFlow)
	}
}

func (h *Handler) tax(w http.ResponseWriter, r *http.Request) {
	if proj, ok := h.project(w, r); ok {
		httpx.JSON(w, http.StatusOK, proj.Tax)
	}
}

func (h *Handler) breakeven(w http.ResponseWriter, r *http.Request) {
	if proj, ok := h.project(w, r); ok {
		httpx.JSON(w, http.StatusOK, proj.BreakEven)
	}
}

func (h *Handler) occupancy(w http.ResponseWriter, r *http.Request) {
	if proj, ok := h.project(w, r); ok {
		httpx.JSON(w, http.StatusOK, proj.Occupancy)
	}
}

func (h *Handler) tdabc(w http.ResponseWriter, r *http.Request) {
	if proj, ok := h.project(w, r); ok {
		httpx.JSON(w, http.StatusOK, proj.TDABC)
	}
}

func (h *Handler) dividends(w http.ResponseWriter, r *http.Request) {
	if proj, ok := h.project(w, r); ok {
		httpx.JSON(w, http.StatusOK, proj.Dividends)
	}
}

func (h *Handler) revenue(w http.ResponseWriter, r *http.Request) {
	proj, ok := h.project(w, r)
	if !ok {
		return
	}
	month, ok, err := monthParam(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if !ok {
		httpx.JSON(w, http.StatusOK, proj.Revenue)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"month":   month,
		"revenue": proj.Revenue[month-1],
	})
}

func (h *Handler) payroll(w http.ResponseWriter, r *http.Request) {
	proj, ok := h.project(w, r)
	if !ok {
		return
	}
	month, ok, err := monthParam(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if !ok {
		httpx.JSON(w, http.StatusOK, proj.Payroll)
		return
	}
	httpx.JSON(w, http.StatusOK, proj.Payroll[month-1])
}

func (h *Handler) compare(w http.ResponseWriter, r *http.Request) {
	raw := strings.Split(r.URL.Query().Get("ids"), ",")
	var ids []uuid.UUID
	for _, part := range raw {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			httpx.RespondError(w, fmt.Errorf("%w: invalid scenario id %q", httpx.ErrValidation, part))
			return
		}
		ids = append(ids, id)
	}
	if len(ids) < 2 {
		httpx.RespondError(w, fmt.Errorf("%w: compare needs at least two ids", httpx.ErrValidation))
		return
	}
	projections, err := h.service.Compare(r.Context(), ids)
	if err != nil {
		h.logger.Error("compare scenarios", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, projections)
}

// monthParam reads the optional 1-12 month query parameter.
func monthParam(r *http.Request) (int, bool, error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return 0, false, nil
	}
	month, err := strconv.Atoi(raw)
	if err != nil || month < 1 || month > engine.MonthsPerYear {
		return 0, false, fmt.Errorf("%w: month must be 1-12", httpx.ErrValidation)
	}
	return month, true, nil
}
