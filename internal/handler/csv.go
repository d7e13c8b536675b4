package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/duber-parra/minominapro/backend/internal/domain"
	"github.com/duber-parra/minominapro/backend/internal/scheduler"
)

// locationInScope resuelve el parámetro ?location=, la sede que delimita los
// departamentos de la importación/exportación.
func (h *Handler) locationInScope(r *http.Request) (domain.Location, error) {
	locationID := r.URL.Query().Get("location")
	if locationID == "" {
		return domain.Location{}, fmt.Errorf("falta el parámetro location")
	}
	return h.roster.Location(locationID)
}

// ImportWeekCSV recibe el archivo CSV en el cuerpo y lo aplica sobre la
// semana en pantalla. Los fallos por fila se cuentan por categoría y no
// abortan el lote; reimportar el mismo archivo es idempotente.
func (h *Handler) ImportWeekCSV(w http.ResponseWriter, r *http.Request) {
	weekKeys := r.Context().Value(WeekKeysCtx).([]string)

	location, err := h.locationInScope(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	rawText, err := io.ReadAll(r.Body)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if len(rawText) == 0 {
		h.errorResponse(w, r, "el cuerpo de la petición está vacío")
		return
	}

	departments := h.roster.DepartmentsOf(location.ID)
	report, err := scheduler.ImportCSV(string(rawText), weekKeys, location, departments, h.roster, h.store)
	if err != nil && report.Applied == 0 && report.Skipped == 0 && report.Errored == 0 {
		h.mutationResponse(w, r, "", nil, err)
		return
	}
	h.mutationResponse(w, r, "importación procesada", report, err)
}

// ExportWeekCSV entrega la semana como CSV: una fila por turno, horas en
// formato de 12 horas y horas trabajadas con 2 decimales.
func (h *Handler) ExportWeekCSV(w http.ResponseWriter, r *http.Request) {
	weekKeys := r.Context().Value(WeekKeysCtx).([]string)

	location, err := h.locationInScope(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	departments := h.roster.DepartmentsOf(location.ID)
	csvText, err := scheduler.ExportCSV(weekKeys, departments, h.roster, h.store)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=turnos_%s.csv", weekKeys[0]))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(csvText)); err != nil {
		h.logInternalServerError(r, err)
	}
}
