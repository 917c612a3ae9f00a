package receipt

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eduardomb/contas/internal/period"
	"github.com/eduardomb/contas/pkg/middleware"
	"github.com/eduardomb/contas/pkg/response"
)

// Handler handles HTTP requests for receipt status operations
type Handler struct {
	service *Service
}

// NewHandler creates a new receipt handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for receipt endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/toggle", h.Toggle)

	return r
}

// List handles GET /receipts
// @Summary      List receipt statuses
// @Description  List every recorded receipt status across all periods
// @Tags         receipts
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]StatusResponse}
// @Router       /receipts [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list receipt statuses")
		return
	}

	resp := make([]*StatusResponse, 0, len(statuses))
	for _, st := range statuses {
		resp = append(resp, st.ToResponse())
	}

	response.JSON(w, http.StatusOK, resp)
}

// Toggle handles POST /receipts/toggle
// @Summary      Toggle a receipt status
// @Description  Flip whether a resident has paid the collecting administrator for a period
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        request body ToggleReceiptRequest true "Receipt toggle request"
// @Success      200 {object} response.APIResponse{data=StatusResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /receipts/toggle [post]
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req ToggleReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.ResidentID == "" || req.PeriodID == "" {
		response.BadRequest(w, "resident_id and period_id are required")
		return
	}

	st, err := h.service.Toggle(r.Context(), req.ResidentID, req.PeriodID)
	if err != nil {
		switch {
		case errors.Is(err, period.ErrInvalidPeriod):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrUnknownResident):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to toggle receipt status")
		}
		return
	}

	admin, _ := middleware.GetAdmin(r.Context())
	slog.Info("Receipt status toggled",
		"resident_id", st.ResidentID, "period", st.PeriodID, "received", st.Received, "admin", admin)

	response.JSON(w, http.StatusOK, st.ToResponse())
}
