package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/duber-parra/minominapro/backend/internal/domain"
	"github.com/duber-parra/minominapro/backend/internal/scheduler"
)

// SendWeeklyReport arma el resumen de la semana y lo publica en la cola de
// correo; el worker de cmd/mail es quien lo envía.
func (h *Handler) SendWeeklyReport(w http.ResponseWriter, r *http.Request) {
	weekKeys := r.Context().Value(WeekKeysCtx).([]string)

	var req struct {
		Email      string `json:"email" validate:"required,email"`
		LocationID string `json:"locationId" validate:"required"`
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

	if h.mailChannel == nil {
		h.errorResponse(w, r, "el envío de correos no está disponible")
		return
	}

	departments := h.roster.DepartmentsOf(location.ID)
	csvText, err := scheduler.ExportCSV(weekKeys, departments, h.roster, h.store)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	assignments := 0
	totalHours := 0.0
	for _, dateKey := range weekKeys {
		date, err := scheduler.ParseDateKey(dateKey)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		day := h.store.Get(dateKey)
		for _, department := range departments {
			for _, a := range day.AssignmentsByDepartment[department.ID] {
				assignments++
				hours, err := scheduler.ComputeNetHours(a, date)
				if err != nil {
					slog.Error("no se pudo calcular la duración de un turno del reporte", "assignmentID", a.ID, "error", err)
				}
				totalHours += hours
			}
		}
	}

	mailData, err := json.Marshal(domain.MailMessage{
		Type: "weekly_schedule",
		To:   req.Email,
		Data: domain.WeeklyScheduleMailData{
			LocationName: location.Name,
			WeekStart:    weekKeys[0],
			WeekEnd:      weekKeys[6],
			Assignments:  assignments,
			TotalHours:   totalHours,
			CSV:          csvText,
		},
	})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "el resumen semanal fue encolado para envío por correo", nil)
}
