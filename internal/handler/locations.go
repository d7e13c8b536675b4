package handler

import (
	"net/http"

	"github.com/duber-parra/minominapro/backend/internal/domain"
)

func (h *Handler) GetAllLocations(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "sedes obtenidas", h.roster.Locations())
}

func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	location, err := h.roster.CreateLocation(req.Name)
	h.mutationResponse(w, r, "sede creada", location, err)
}

func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	location := r.Context().Value(LocationCtx).(domain.Location)

	h.successResponse(w, r, "sede obtenida", location)
}

func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	location := r.Context().Value(LocationCtx).(domain.Location)

	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	updated, err := h.roster.UpdateLocation(location.ID, req.Name)
	h.mutationResponse(w, r, "sede actualizada", updated, err)
}

// DeleteLocation elimina la sede en cascada: departamentos, turnos,
// plantillas y la pertenencia de los empleados.
func (h *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	location := r.Context().Value(LocationCtx).(domain.Location)

	err := h.roster.DeleteLocation(location.ID)
	h.mutationResponse(w, r, "sede eliminada junto con sus departamentos, turnos y plantillas", nil, err)
}
