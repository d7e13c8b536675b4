package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/duber-parra/minominapro/backend/internal/domain"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("error interno del servidor", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
		http.Error(w, "error interno del servidor", http.StatusInternalServerError)
	}
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: false,
		Message: msg,
		Data:    nil,
	})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.errorResponse(w, r, validationErrors[0].Translate(h.translator))
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.writeJSON(w, r, http.StatusInternalServerError, Response{
		Success: false,
		Message: "error interno del servidor",
		Data:    nil,
	})
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

// mutationResponse traduce el resultado de una mutación del núcleo a la
// envoltura de respuesta. Un fallo de persistencia no deshace la mutación en
// memoria: se responde éxito con una advertencia, una sola vez.
func (h *Handler) mutationResponse(w http.ResponseWriter, r *http.Request, msg string, data any, err error) {
	if err == nil {
		h.successResponse(w, r, msg, data)
		return
	}

	if errors.Is(err, domain.ErrPersistence) {
		slog.Error("fallo de persistencia, el estado en memoria sigue vigente", "method", r.Method, "path", r.URL.Path, "error", err)
		h.successResponse(w, r, msg+" (advertencia: no se pudo guardar en el almacenamiento externo)", data)
		return
	}

	var formatErr *domain.FormatError
	var conflictErr *domain.ConflictError
	switch {
	case errors.As(err, &formatErr), errors.As(err, &conflictErr):
		h.errorResponse(w, r, err.Error())
	case errors.Is(err, domain.ErrLocationNotFound),
		errors.Is(err, domain.ErrDepartmentNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrTemplateNotFound),
		errors.Is(err, domain.ErrAssignmentNotFound),
		errors.Is(err, domain.ErrEmptyTemplate),
		errors.Is(err, domain.ErrLastLocation):
		h.errorResponse(w, r, err.Error())
	default:
		h.internalServerError(w, r, err)
	}
}
