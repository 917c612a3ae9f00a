package settlement

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eduardomb/contas/internal/period"
	"github.com/eduardomb/contas/pkg/response"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/{periodID}", h.Breakdown)
	r.Get("/{periodID}/summary", h.Summary)

	return r
}

// Breakdown handles GET /settlements/{periodID}
// @Summary      Period settlement breakdown
// @Description  Per-resident shares, period totals and the all-time surplus balance
// @Tags         settlements
// @Produce      json
// @Param        periodID path string true "Period ID (YYYY-MM)"
// @Success      200 {object} response.APIResponse{data=BreakdownResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /settlements/{periodID} [get]
func (h *Handler) Breakdown(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodID")

	result, err := h.service.Breakdown(r.Context(), periodID)
	if err != nil {
		if errors.Is(err, period.ErrInvalidPeriod) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute settlement")
		return
	}

	response.JSON(w, http.StatusOK, result.ToResponse())
}

// Summary handles GET /settlements/{periodID}/summary
// @Summary      Shareable period summary
// @Description  Plain-text summary formatted for pasting into the household chat
// @Tags         settlements
// @Produce      plain
// @Param        periodID path string true "Period ID (YYYY-MM)"
// @Success      200 {string} string
// @Failure      400 {object} response.APIResponse
// @Router       /settlements/{periodID}/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodID")

	text, err := h.service.Summary(r.Context(), periodID)
	if err != nil {
		if errors.Is(err, period.ErrInvalidPeriod) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to render summary")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}
