package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/duber-parra/minominapro/backend/internal/config"
	"github.com/duber-parra/minominapro/backend/internal/domain"
)

// KVStore es el colaborador de persistencia: un almacén clave-valor genérico.
// Get devuelve domain.ErrNoValue cuando la clave no existe.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Claves usadas en el almacén; cada una guarda una instantánea JSON completa.
const (
	keyLocations   = "locations"
	keyDepartments = "departments"
	keyEmployees   = "employees"
	keySchedule    = "schedule"
	keyTemplates   = "templates"
	keyNotes       = "notes"
)

type Repository struct {
	cfg *config.Config
	kv  KVStore
}

func NewRepository(cfg *config.Config, kv KVStore) *Repository {
	return &Repository{
		cfg: cfg,
		kv:  kv,
	}
}

func (r *Repository) key(name string) string {
	return r.cfg.Storage.KeyPrefix + ":" + name
}

func (r *Repository) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(r.cfg.Storage.OperationTimeout)*time.Second)
}

// load deserializa la clave en dst; una clave inexistente deja dst sin tocar
// (el llamador pasa como dst el estado inicial que le sirva).
func (r *Repository) load(name string, dst any) error {
	ctx, cancel := r.operationContext()
	defer cancel()

	value, err := r.kv.Get(ctx, r.key(name))
	if err != nil {
		if errors.Is(err, domain.ErrNoValue) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal([]byte(value), dst); err != nil {
		return fmt.Errorf("valor corrupto en la clave %s: %w", name, err)
	}
	return nil
}

func (r *Repository) save(name string, value any) error {
	serialized, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ctx, cancel := r.operationContext()
	defer cancel()
	return r.kv.Set(ctx, r.key(name), string(serialized))
}

func (r *Repository) LoadLocations() ([]domain.Location, error) {
	locations := make([]domain.Location, 0)
	err := r.load(keyLocations, &locations)
	return locations, err
}

func (r *Repository) SaveLocations(locations []domain.Location) error {
	return r.save(keyLocations, locations)
}

func (r *Repository) LoadDepartments() ([]domain.Department, error) {
	departments := make([]domain.Department, 0)
	err := r.load(keyDepartments, &departments)
	return departments, err
}

func (r *Repository) SaveDepartments(departments []domain.Department) error {
	return r.save(keyDepartments, departments)
}

func (r *Repository) LoadEmployees() ([]domain.Employee, error) {
	employees := make([]domain.Employee, 0)
	err := r.load(keyEmployees, &employees)
	return employees, err
}

func (r *Repository) SaveEmployees(employees []domain.Employee) error {
	return r.save(keyEmployees, employees)
}

func (r *Repository) LoadSchedule() (map[string]*domain.DaySchedule, error) {
	schedule := make(map[string]*domain.DaySchedule)
	err := r.load(keySchedule, &schedule)
	return schedule, err
}

func (r *Repository) SaveSchedule(schedule map[string]*domain.DaySchedule) error {
	return r.save(keySchedule, schedule)
}

func (r *Repository) LoadTemplates() ([]domain.Template, error) {
	templates := make([]domain.Template, 0)
	err := r.load(keyTemplates, &templates)
	return templates, err
}

func (r *Repository) SaveTemplates(templates []domain.Template) error {
	return r.save(keyTemplates, templates)
}

// Las notas son texto libre, se guardan sin serializar.
func (r *Repository) LoadNotes() (string, error) {
	ctx, cancel := r.operationContext()
	defer cancel()

	value, err := r.kv.Get(ctx, r.key(keyNotes))
	if err != nil {
		if errors.Is(err, domain.ErrNoValue) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (r *Repository) SaveNotes(notes string) error {
	ctx, cancel := r.operationContext()
	defer cancel()
	return r.kv.Set(ctx, r.key(keyNotes), notes)
}
