package bill

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

// Handler handles HTTP requests for bill operations
type Handler struct {
	service *Service
}

// NewHandler creates a new bill handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for bill endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Post("/{id}/toggle-paid", h.TogglePaid)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /bills
// @Summary      Create a new bill
// @Description  Register a charge for a period; actual_value defaults to budgeted_value
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        request body CreateBillRequest true "Bill creation request"
// @Success      201 {object} response.APIResponse{data=BillResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /bills [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	b, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidBillType),
			errors.Is(err, ErrNegativeValue),
			errors.Is(err, ErrTargetNotAllowed),
			errors.Is(err, ErrDescriptionNeeded),
			errors.Is(err, period.ErrInvalidPeriod):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to create bill")
		}
		return
	}

	admin, _ := middleware.GetAdmin(r.Context())
	slog.Info("Bill created", "id", b.ID, "type", b.Type, "period", b.PeriodID, "admin", admin)

	response.JSON(w, http.StatusCreated, b.ToResponse())
}

// List handles GET /bills
// @Summary      List bills
// @Description  List bills newest first, optionally filtered by period
// @Tags         bills
// @Produce      json
// @Param        period query string false "Period ID (YYYY-MM); omit for full history"
// @Success      200 {object} response.APIResponse{data=[]BillResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /bills [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	periodID := r.URL.Query().Get("period")

	bills, err := h.service.List(r.Context(), periodID)
	if err != nil {
		if errors.Is(err, period.ErrInvalidPeriod) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list bills")
		return
	}

	resp := make([]*BillResponse, 0, len(bills))
	for _, b := range bills {
		resp = append(resp, b.ToResponse())
	}

	response.JSON(w, http.StatusOK, resp)
}

// TogglePaid handles POST /bills/{id}/toggle-paid
// @Summary      Toggle vendor payment
// @Description  Flip whether the bill was settled with the external vendor
// @Tags         bills
// @Produce      json
// @Param        id path string true "Bill ID"
// @Success      200 {object} response.APIResponse{data=BillResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /bills/{id}/toggle-paid [post]
func (h *Handler) TogglePaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	b, err := h.service.TogglePaid(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to toggle bill paid status")
		return
	}

	response.JSON(w, http.StatusOK, b.ToResponse())
}

// Delete handles DELETE /bills/{id}
// @Summary      Delete a bill
// @Tags         bills
// @Produce      json
// @Param        id path string true "Bill ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /bills/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete bill")
		return
	}

	admin, _ := middleware.GetAdmin(r.Context())
	slog.Info("Bill deleted", "id", id, "admin", admin)

	response.JSON(w, http.StatusOK, map[string]string{"message": "Bill deleted"})
}
