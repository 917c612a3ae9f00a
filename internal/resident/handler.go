package resident

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eduardomb/contas/pkg/response"
)

// Handler handles HTTP requests for resident operations
type Handler struct {
	service *Service
}

// NewHandler creates a new resident handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for resident endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)

	return r
}

// Create handles POST /residents
// @Summary      Create a new resident
// @Description  Add a resident with a rent weight and optional billing roles
// @Tags         residents
// @Accept       json
// @Produce      json
// @Param        request body CreateResidentRequest true "Resident creation request"
// @Success      201 {object} response.APIResponse{data=ResidentResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /residents [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateResidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Name == "" {
		response.BadRequest(w, "Name is required")
		return
	}

	res, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidRole) || errors.Is(err, ErrNegativeWeight) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create resident")
		return
	}

	response.JSON(w, http.StatusCreated, res.ToResponse())
}

// List handles GET /residents
// @Summary      List residents
// @Description  List all residents ordered by display index
// @Tags         residents
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]ResidentResponse}
// @Router       /residents [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	residents, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list residents")
		return
	}

	resp := make([]*ResidentResponse, 0, len(residents))
	for _, res := range residents {
		resp = append(resp, res.ToResponse())
	}

	response.JSON(w, http.StatusOK, resp)
}

// GetByID handles GET /residents/{id}
// @Summary      Get resident by ID
// @Tags         residents
// @Produce      json
// @Param        id path string true "Resident ID"
// @Success      200 {object} response.APIResponse{data=ResidentResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /residents/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrResidentNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get resident")
		return
	}

	response.JSON(w, http.StatusOK, res.ToResponse())
}

// Update handles PUT /residents/{id}
// @Summary      Update a resident
// @Description  Update name, display index, rent weight or billing roles
// @Tags         residents
// @Accept       json
// @Produce      json
// @Param        id path string true "Resident ID"
// @Param        request body UpdateResidentRequest true "Resident update request"
// @Success      200 {object} response.APIResponse{data=ResidentResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /residents/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateResidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	res, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrResidentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidRole), errors.Is(err, ErrNegativeWeight):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to update resident")
		}
		return
	}

	response.JSON(w, http.StatusOK, res.ToResponse())
}
