package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/duber-parra/minominapro/backend/internal/domain"
	"github.com/duber-parra/minominapro/backend/internal/scheduler"
)

func (h *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	dateKey := r.Context().Value(DateKeyCtx).(string)

	date, err := scheduler.ParseDateKey(dateKey)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	h.holidays.EnsureYears(date.Year(), date.Year())

	h.successResponse(w, r, "día obtenido", map[string]any{
		"day":       h.store.Get(dateKey),
		"isHoliday": h.holidays.IsHoliday(date),
	})
}

func (h *Handler) UpsertAssignment(w http.ResponseWriter, r *http.Request) {
	dateKey := r.Context().Value(DateKeyCtx).(string)
	department := r.Context().Value(DepartmentCtx).(domain.Department)

	var req struct {
		ID             string `json:"id"`
		EmployeeID     string `json:"employeeId" validate:"required"`
		StartTime      string `json:"startTime" validate:"required"`
		EndTime        string `json:"endTime" validate:"required"`
		IncludeBreak   bool   `json:"includeBreak"`
		BreakStartTime string `json:"breakStartTime"`
		BreakEndTime   string `json:"breakEndTime"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if _, err := h.roster.Employee(req.EmployeeID); err != nil {
		h.errorResponse(w, r, "el empleado no existe")
		return
	}

	assignment := domain.Assignment{
		ID:             req.ID,
		EmployeeID:     req.EmployeeID,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		IncludeBreak:   req.IncludeBreak,
		BreakStartTime: req.BreakStartTime,
		BreakEndTime:   req.BreakEndTime,
	}
	if assignment.ID == "" {
		// Turno nuevo: la identidad se genera aquí y no se reutiliza jamás.
		assignment.ID = scheduler.NewAssignmentID(req.EmployeeID, dateKey, req.StartTime)
	}

	err := h.store.Upsert(dateKey, department.ID, assignment)
	h.mutationResponse(w, r, "turno guardado", assignment, err)
}

func (h *Handler) RemoveAssignment(w http.ResponseWriter, r *http.Request) {
	dateKey := r.Context().Value(DateKeyCtx).(string)
	department := r.Context().Value(DepartmentCtx).(domain.Department)
	assignmentID := chi.URLParam(r, "assignmentID")

	err := h.store.Remove(dateKey, department.ID, assignmentID)
	h.mutationResponse(w, r, "turno eliminado", nil, err)
}

func (h *Handler) ClearDay(w http.ResponseWriter, r *http.Request) {
	dateKey := r.Context().Value(DateKeyCtx).(string)

	err := h.store.ClearDay(dateKey)
	h.mutationResponse(w, r, "día vaciado", nil, err)
}

func (h *Handler) DuplicateDay(w http.ResponseWriter, r *http.Request) {
	dateKey := r.Context().Value(DateKeyCtx).(string)

	report, targetKey, err := scheduler.DuplicateDay(h.store, h.roster, dateKey)
	if err != nil && report.Copied == 0 && report.Skipped == 0 {
		h.mutationResponse(w, r, "", nil, err)
		return
	}
	h.mutationResponse(w, r, "día duplicado en "+targetKey, map[string]any{
		"targetDate": targetKey,
		"report":     report,
	}, err)
}

func (h *Handler) GetWeek(w http.ResponseWriter, r *http.Request) {
	weekKeys := r.Context().Value(WeekKeysCtx).([]string)

	// Una sola semana puede cruzar de año (fin de diciembre).
	startDate, err := scheduler.ParseDateKey(weekKeys[0])
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	endDate, err := scheduler.ParseDateKey(weekKeys[6])
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	h.holidays.EnsureYears(startDate.Year(), endDate.Year())

	days := make([]map[string]any, 0, len(weekKeys))
	for _, dateKey := range weekKeys {
		date, err := scheduler.ParseDateKey(dateKey)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		days = append(days, map[string]any{
			"day":       h.store.Get(dateKey),
			"isHoliday": h.holidays.IsHoliday(date),
		})
	}

	h.successResponse(w, r, "semana obtenida", days)
}

func (h *Handler) DuplicateWeek(w http.ResponseWriter, r *http.Request) {
	weekKeys := r.Context().Value(WeekKeysCtx).([]string)

	report, err := scheduler.DuplicateWeek(h.store, h.roster, weekKeys)
	if err != nil && report.Copied == 0 && report.Skipped == 0 {
		h.mutationResponse(w, r, "", nil, err)
		return
	}

	if report.Skipped > 0 {
		slog.Info("duplicación semanal con omisiones por conflicto", "copied", report.Copied, "skipped", report.Skipped)
	}
	h.mutationResponse(w, r, "semana duplicada", report, err)
}
