package handler

import (
	"net/http"
	"time"

	"github.com/duber-parra/minominapro/backend/internal/domain"
	"github.com/duber-parra/minominapro/backend/internal/scheduler"
)

func (h *Handler) GetAllTemplates(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "plantillas obtenidas", h.templates.All())
}

// CreateTemplate extrae una plantilla diaria o semanal del calendario actual.
func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string `json:"name" validate:"required"`
		LocationID string `json:"locationId" validate:"required"`
		Type       string `json:"type" validate:"required,oneof=daily weekly"`
		// Para daily: la fecha a capturar. Para weekly: el lunes de la semana.
		Date string `json:"date" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	location, err := h.roster.Location(req.LocationID)
	if err != nil {
		h.errorResponse(w, r, "la sede no existe")
		return
	}

	date, err := scheduler.ParseDateKey(req.Date)
	if err != nil {
		h.errorResponse(w, r, "la fecha debe tener formato aaaa-mm-dd")
		return
	}

	templateType := domain.TemplateType(req.Type)
	var dateKeys []string
	switch templateType {
	case domain.TemplateDaily:
		dateKeys = []string{scheduler.FormatDateKey(date)}
	case domain.TemplateWeekly:
		if date.Weekday() != time.Monday {
			h.errorResponse(w, r, "la fecha de una plantilla semanal debe ser un lunes")
			return
		}
		dateKeys = scheduler.WeekKeys(date)
	}

	departmentIDs := make([]string, 0)
	for _, d := range h.roster.DepartmentsOf(location.ID) {
		departmentIDs = append(departmentIDs, d.ID)
	}

	template, err := h.templates.Extract(h.store, templateType, req.Name, location.ID, dateKeys, departmentIDs)
	h.mutationResponse(w, r, "plantilla guardada", template, err)
}

func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	template := r.Context().Value(TemplateCtx).(domain.Template)

	h.successResponse(w, r, "plantilla obtenida", template)
}

// ApplyTemplate rehidrata la plantilla sobre una fecha (diaria) o una semana
// (semanal, mapeando por posición del día, lunes primero).
func (h *Handler) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	template := r.Context().Value(TemplateCtx).(domain.Template)

	var req struct {
		// Para daily: la fecha destino. Para weekly: el lunes de la semana
		// destino.
		Date string `json:"date" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := scheduler.ParseDateKey(req.Date)
	if err != nil {
		h.errorResponse(w, r, "la fecha debe tener formato aaaa-mm-dd")
		return
	}

	var targetKeys []string
	switch template.Type {
	case domain.TemplateWeekly:
		if date.Weekday() != time.Monday {
			h.errorResponse(w, r, "la fecha destino de una plantilla semanal debe ser un lunes")
			return
		}
		targetKeys = scheduler.WeekKeys(date)
	default:
		targetKeys = []string{scheduler.FormatDateKey(date)}
	}

	report, err := h.templates.Apply(template, h.store, h.roster, targetKeys)
	h.mutationResponse(w, r, "plantilla aplicada", report, err)
}

func (h *Handler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	template := r.Context().Value(TemplateCtx).(domain.Template)

	err := h.templates.Delete(template.ID)
	h.mutationResponse(w, r, "plantilla eliminada", nil, err)
}
