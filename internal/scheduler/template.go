package scheduler

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/duber-parra/minominapro/backend/internal/domain"
)

// TemplateManager guarda las plantillas en memoria y sabe extraer una
// instantánea reducida del calendario y rehidratarla contra el roster actual.
type TemplateManager struct {
	templates []domain.Template
	save      func(templates []domain.Template) error
}

func NewTemplateManager(save func(templates []domain.Template) error) *TemplateManager {
	return &TemplateManager{save: save}
}

func (m *TemplateManager) Load(templates []domain.Template) {
	m.templates = slices.Clone(templates)
}

func (m *TemplateManager) All() []domain.Template {
	return slices.Clone(m.templates)
}

func (m *TemplateManager) Get(id string) (domain.Template, error) {
	for _, t := range m.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Template{}, domain.ErrTemplateNotFound
}

func (m *TemplateManager) Delete(id string) error {
	index := slices.IndexFunc(m.templates, func(t domain.Template) bool { return t.ID == id })
	if index < 0 {
		return domain.ErrTemplateNotFound
	}
	m.templates = slices.Delete(m.templates, index, index+1)
	return m.persist()
}

// deleteByLocation elimina las plantillas de la sede sin persistir; lo usa la
// cascada de borrado de sedes, que guarda todas las claves al final.
func (m *TemplateManager) deleteByLocation(locationID string) {
	m.templates = slices.DeleteFunc(m.templates, func(t domain.Template) bool {
		return t.LocationID == locationID
	})
}

// Extract recorre las fechas pedidas y copia los turnos de los departamentos
// de la sede, reducidos a referencias de empleado por ID y sin ID de
// instancia. Si el rango completo no tiene ni un turno devuelve
// ErrEmptyTemplate en lugar de producir una plantilla vacía.
func (m *TemplateManager) Extract(store *Store, templateType domain.TemplateType, name, locationID string, dateKeys []string, departmentIDs []string) (domain.Template, error) {
	switch templateType {
	case domain.TemplateDaily:
		if len(dateKeys) != 1 {
			return domain.Template{}, fmt.Errorf("una plantilla diaria requiere exactamente una fecha")
		}
	case domain.TemplateWeekly:
		if len(dateKeys) != 7 {
			return domain.Template{}, fmt.Errorf("una plantilla semanal requiere las 7 fechas de la semana")
		}
	default:
		return domain.Template{}, fmt.Errorf("tipo de plantilla desconocido: %q", templateType)
	}

	days := make([]domain.TemplateDay, len(dateKeys))
	total := 0
	for i, dateKey := range dateKeys {
		days[i] = domain.TemplateDay{AssignmentsByDepartment: make(map[string][]domain.TemplateAssignment)}
		day := store.Get(dateKey)
		for _, departmentID := range departmentIDs {
			assignments := day.AssignmentsByDepartment[departmentID]
			if len(assignments) == 0 {
				continue
			}
			reduced := make([]domain.TemplateAssignment, 0, len(assignments))
			for _, a := range assignments {
				reduced = append(reduced, domain.TemplateAssignment{
					StartTime:      a.StartTime,
					EndTime:        a.EndTime,
					IncludeBreak:   a.IncludeBreak,
					BreakStartTime: a.BreakStartTime,
					BreakEndTime:   a.BreakEndTime,
					Employee:       domain.EmployeeRef{ID: a.EmployeeID},
				})
			}
			days[i].AssignmentsByDepartment[departmentID] = reduced
			total += len(reduced)
		}
	}
	if total == 0 {
		return domain.Template{}, domain.ErrEmptyTemplate
	}

	template := domain.Template{
		ID:         uuid.NewString(),
		Name:       name,
		LocationID: locationID,
		Type:       templateType,
		CreatedAt:  time.Now(),
		Days:       days,
	}
	m.templates = append(m.templates, template)
	return template, m.persist()
}

// ApplyReport resume una aplicación de plantilla: cuántos turnos entraron,
// cuántos se omitieron por conflicto y cuántos quedaron con un empleado que
// ya no existe en el roster (se muestran como "(ID: …)").
type ApplyReport struct {
	Applied      int `json:"applied"`
	Skipped      int `json:"skipped"`
	Placeholders int `json:"placeholders"`
}

// Apply rehidrata la plantilla sobre las fechas destino. Una plantilla diaria
// aplica a exactamente una fecha; una semanal mapea por posición del día de la
// semana (lunes primero) sobre la semana destino, sin importar las fechas
// absolutas de la semana original. Los conflictos se omiten y se cuentan, no
// abortan la operación.
func (m *TemplateManager) Apply(template domain.Template, store *Store, roster *Roster, targetKeys []string) (ApplyReport, error) {
	var report ApplyReport

	if len(targetKeys) != len(template.Days) {
		return report, fmt.Errorf("la plantilla cubre %d día(s) pero se recibieron %d fecha(s) destino", len(template.Days), len(targetKeys))
	}

	for i, day := range template.Days {
		targetKey := targetKeys[i]
		for departmentID, assignments := range day.AssignmentsByDepartment {
			for _, ta := range assignments {
				candidate := domain.Assignment{
					ID:             NewAssignmentID(ta.Employee.ID, targetKey, ta.StartTime),
					EmployeeID:     ta.Employee.ID,
					StartTime:      ta.StartTime,
					EndTime:        ta.EndTime,
					IncludeBreak:   ta.IncludeBreak,
					BreakStartTime: ta.BreakStartTime,
					BreakEndTime:   ta.BreakEndTime,
				}
				if err := store.insert(targetKey, departmentID, candidate); err != nil {
					report.Skipped++
					continue
				}
				report.Applied++
				// Un empleado que ya no existe no hace fallar la operación:
				// el turno entra igual y el nombre se resuelve como
				// "(ID: …)" al mostrarlo.
				if _, err := roster.Employee(ta.Employee.ID); err != nil {
					report.Placeholders++
				}
			}
		}
	}
	return report, store.persist()
}

func (m *TemplateManager) persist() error {
	if m.save == nil {
		return nil
	}
	if err := m.save(m.All()); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}
