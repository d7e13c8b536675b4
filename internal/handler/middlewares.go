package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/duber-parra/minominapro/backend/internal/scheduler"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("petición procesada", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // con slog la traza queda ilegible
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) location(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locationID := chi.URLParam(r, "locationID")

		location, err := h.roster.Location(locationID)
		if err != nil {
			h.errorResponse(w, r, "la sede no existe")
			return
		}

		ctx := context.WithValue(r.Context(), LocationCtx, location)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) department(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		departmentID := chi.URLParam(r, "departmentID")

		department, err := h.roster.Department(departmentID)
		if err != nil {
			h.errorResponse(w, r, "el departamento no existe")
			return
		}

		ctx := context.WithValue(r.Context(), DepartmentCtx, department)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) employee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		employeeID := chi.URLParam(r, "employeeID")

		employee, err := h.roster.Employee(employeeID)
		if err != nil {
			h.errorResponse(w, r, "el empleado no existe")
			return
		}

		ctx := context.WithValue(r.Context(), EmployeeCtx, employee)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) template(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		templateID := chi.URLParam(r, "templateID")

		template, err := h.templates.Get(templateID)
		if err != nil {
			h.errorResponse(w, r, "la plantilla no existe")
			return
		}

		ctx := context.WithValue(r.Context(), TemplateCtx, template)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// scheduleDate valida el parámetro {date} y deja la clave de fecha en el
// contexto.
func (h *Handler) scheduleDate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dateParam := chi.URLParam(r, "date")

		date, err := scheduler.ParseDateKey(dateParam)
		if err != nil {
			h.errorResponse(w, r, "la fecha debe tener formato aaaa-mm-dd")
			return
		}

		ctx := context.WithValue(r.Context(), DateKeyCtx, scheduler.FormatDateKey(date))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// weekStart valida que {monday} sea un lunes y deja las 7 claves de la semana
// en el contexto.
func (h *Handler) weekStart(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mondayParam := chi.URLParam(r, "monday")

		monday, err := scheduler.ParseDateKey(mondayParam)
		if err != nil {
			h.errorResponse(w, r, "la fecha debe tener formato aaaa-mm-dd")
			return
		}
		if monday.Weekday() != time.Monday {
			h.errorResponse(w, r, "la fecha de inicio de semana debe ser un lunes")
			return
		}

		ctx := context.WithValue(r.Context(), WeekKeysCtx, scheduler.WeekKeys(monday))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
