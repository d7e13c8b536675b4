package handler

import (
	"net/http"

	"github.com/duber-parra/minominapro/backend/internal/domain"
)

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	// ?location= filtra por sede.
	if locationID := r.URL.Query().Get("location"); locationID != "" {
		if _, err := h.roster.Location(locationID); err != nil {
			h.errorResponse(w, r, "la sede no existe")
			return
		}
		h.successResponse(w, r, "empleados obtenidos", h.roster.EmployeesOf(locationID))
		return
	}

	h.successResponse(w, r, "empleados obtenidos", h.roster.Employees())
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          string   `json:"id" validate:"required"`
		Name        string   `json:"name" validate:"required"`
		LocationIDs []string `json:"locationIds" validate:"required,min=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee, err := h.roster.CreateEmployee(req.ID, req.Name, req.LocationIDs)
	h.mutationResponse(w, r, "empleado creado", employee, err)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(domain.Employee)

	h.successResponse(w, r, "empleado obtenido", employee)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(domain.Employee)

	var req struct {
		Name        *string  `json:"name"`
		LocationIDs []string `json:"locationIds"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	updated, err := h.roster.UpdateEmployee(employee.ID, req.Name, req.LocationIDs)
	h.mutationResponse(w, r, "empleado actualizado", updated, err)
}

// DeleteEmployee elimina al empleado y todos sus turnos.
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(domain.Employee)

	err := h.roster.DeleteEmployee(employee.ID)
	h.mutationResponse(w, r, "empleado eliminado junto con sus turnos", nil, err)
}
