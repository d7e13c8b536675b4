package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/duber-parra/minominapro/backend/internal/config"
	"github.com/duber-parra/minominapro/backend/internal/repository"
	"github.com/duber-parra/minominapro/backend/internal/scheduler"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel

	store     *scheduler.Store
	roster    *scheduler.Roster
	templates *scheduler.TemplateManager
	holidays  *scheduler.Holidays

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, store *scheduler.Store, roster *scheduler.Roster, templates *scheduler.TemplateManager, holidays *scheduler.Holidays) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	es := es.New()
	uni := ut.New(es, es)
	trans, _ := uni.GetTranslator("es")
	if err := es_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,

		store:     store,
		roster:    roster,
		templates: templates,
		holidays:  holidays,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/health", h.Health)

	// Sedes y sus departamentos
	h.Mux.Route("/locations", func(r chi.Router) {
		r.Post("/", h.CreateLocation)
		r.Get("/", h.GetAllLocations)
		r.Route("/{locationID}", func(r chi.Router) {
			r.Use(h.location)
			r.Get("/", h.GetLocation)
			r.Patch("/", h.UpdateLocation)
			r.Delete("/", h.DeleteLocation)
			r.Route("/departments", func(r chi.Router) {
				r.Post("/", h.CreateDepartment)
				r.Get("/", h.GetLocationDepartments)
			})
		})
	})

	h.Mux.Route("/departments/{departmentID}", func(r chi.Router) {
		r.Use(h.department)
		r.Patch("/", h.UpdateDepartment)
		r.Delete("/", h.DeleteDepartment)
	})

	// Empleados
	h.Mux.Route("/employees", func(r chi.Router) {
		r.Post("/", h.CreateEmployee)
		r.Get("/", h.GetAllEmployees)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Use(h.employee)
			r.Get("/", h.GetEmployee)
			r.Patch("/", h.UpdateEmployee)
			r.Delete("/", h.DeleteEmployee)
		})
	})

	// Calendario
	h.Mux.Route("/schedule", func(r chi.Router) {
		r.Route("/day/{date}", func(r chi.Router) {
			r.Use(h.scheduleDate)
			r.Get("/", h.GetDay)
			r.Delete("/", h.ClearDay)
			r.Post("/duplicate", h.DuplicateDay)
			r.Route("/departments/{departmentID}", func(r chi.Router) {
				r.Use(h.department)
				r.Put("/assignments", h.UpsertAssignment)
				r.Delete("/assignments/{assignmentID}", h.RemoveAssignment)
			})
		})
		r.Route("/week/{monday}", func(r chi.Router) {
			r.Use(h.weekStart)
			r.Get("/", h.GetWeek)
			r.Post("/duplicate", h.DuplicateWeek)
			r.Post("/import", h.ImportWeekCSV)
			r.Get("/export.csv", h.ExportWeekCSV)
			r.Post("/report", h.SendWeeklyReport)
		})
	})

	// Plantillas
	h.Mux.Route("/templates", func(r chi.Router) {
		r.Post("/", h.CreateTemplate)
		r.Get("/", h.GetAllTemplates)
		r.Route("/{templateID}", func(r chi.Router) {
			r.Use(h.template)
			r.Get("/", h.GetTemplate)
			r.Post("/apply", h.ApplyTemplate)
			r.Delete("/", h.DeleteTemplate)
		})
	})

	h.Mux.Get("/holidays", h.GetHolidays)

	h.Mux.Route("/notes", func(r chi.Router) {
		r.Get("/", h.GetNotes)
		r.Put("/", h.UpdateNotes)
	})
}
