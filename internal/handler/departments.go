package handler

import (
	"net/http"

	"github.com/duber-parra/minominapro/backend/internal/domain"
)

func (h *Handler) GetLocationDepartments(w http.ResponseWriter, r *http.Request) {
	location := r.Context().Value(LocationCtx).(domain.Location)

	h.successResponse(w, r, "departamentos obtenidos", h.roster.DepartmentsOf(location.ID))
}

func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	location := r.Context().Value(LocationCtx).(domain.Location)

	var req struct {
		Name string `json:"name" validate:"required"`
		Icon string `json:"icon" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	department, err := h.roster.CreateDepartment(location.ID, req.Name, domain.DepartmentIcon(req.Icon))
	h.mutationResponse(w, r, "departamento creado", department, err)
}

func (h *Handler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	department := r.Context().Value(DepartmentCtx).(domain.Department)

	var req struct {
		Name *string `json:"name"`
		Icon *string `json:"icon"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	var icon *domain.DepartmentIcon
	if req.Icon != nil {
		value := domain.DepartmentIcon(*req.Icon)
		icon = &value
	}

	updated, err := h.roster.UpdateDepartment(department.ID, req.Name, icon)
	h.mutationResponse(w, r, "departamento actualizado", updated, err)
}

// DeleteDepartment elimina el departamento y sus turnos en todas las fechas.
func (h *Handler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	department := r.Context().Value(DepartmentCtx).(domain.Department)

	err := h.roster.DeleteDepartment(department.ID)
	h.mutationResponse(w, r, "departamento eliminado junto con sus turnos", nil, err)
}
