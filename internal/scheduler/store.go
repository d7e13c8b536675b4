package scheduler

import (
	"fmt"
	"slices"

	"github.com/duber-parra/minominapro/backend/internal/domain"
)

// SaveFunc escribe la instantánea completa del calendario en el
// almacenamiento externo después de cada mutación exitosa.
type SaveFunc func(snapshot map[string]*domain.DaySchedule) error

// Store es el calendario en memoria, indexado por clave de fecha. Una fecha
// sin turnos no se almacena: la presencia de la entrada distingue "día
// tocado" de "día vacío", y varios llamadores dependen de esa diferencia.
type Store struct {
	days map[string]*domain.DaySchedule
	save SaveFunc
}

func NewStore(save SaveFunc) *Store {
	return &Store{
		days: make(map[string]*domain.DaySchedule),
		save: save,
	}
}

// Load reemplaza el estado en memoria con la instantánea cargada del
// almacenamiento. Las entradas vacías se descartan.
func (s *Store) Load(snapshot map[string]*domain.DaySchedule) {
	s.days = make(map[string]*domain.DaySchedule, len(snapshot))
	for dateKey, day := range snapshot {
		if day == nil || day.IsEmpty() {
			continue
		}
		day.Date = dateKey
		s.days[dateKey] = day.Clone()
	}
}

// Get devuelve una copia del día; si la fecha no existe devuelve un día vacío
// sin crear la entrada (valor por defecto de solo lectura).
func (s *Store) Get(dateKey string) *domain.DaySchedule {
	if day, exists := s.days[dateKey]; exists {
		return day.Clone()
	}
	return domain.NewDaySchedule(dateKey)
}

// Has informa si la fecha fue tocada (tiene al menos un turno).
func (s *Store) Has(dateKey string) bool {
	_, exists := s.days[dateKey]
	return exists
}

// Upsert valida el turno contra los demás turnos del día y lo inserta o
// reemplaza dentro del departamento. Si la validación falla no hay mutación.
// Un error de persistencia se devuelve envuelto en domain.ErrPersistence con
// la mutación ya aplicada en memoria.
func (s *Store) Upsert(dateKey, departmentID string, a domain.Assignment) error {
	if err := s.insert(dateKey, departmentID, a); err != nil {
		return err
	}
	return s.persist()
}

// insert es Upsert sin escritura al almacenamiento; las operaciones por lotes
// (duplicación, plantillas, importación CSV) lo usan y persisten una sola vez.
func (s *Store) insert(dateKey, departmentID string, a domain.Assignment) error {
	if err := ValidateAssignment(a, s.days[dateKey]); err != nil {
		return err
	}

	day, exists := s.days[dateKey]
	if !exists {
		day = domain.NewDaySchedule(dateKey)
		s.days[dateKey] = day
	}

	assignments := day.AssignmentsByDepartment[departmentID]
	replaced := false
	for i := range assignments {
		if assignments[i].ID == a.ID {
			assignments[i] = a
			replaced = true
			break
		}
	}
	if !replaced {
		assignments = append(assignments, a)
	}
	day.AssignmentsByDepartment[departmentID] = assignments
	return nil
}

// Remove elimina el turno. Si el departamento queda sin turnos se elimina su
// clave, y si el día queda vacío se elimina la entrada de la fecha.
func (s *Store) Remove(dateKey, departmentID, assignmentID string) error {
	day, exists := s.days[dateKey]
	if !exists {
		return domain.ErrAssignmentNotFound
	}

	assignments := day.AssignmentsByDepartment[departmentID]
	index := slices.IndexFunc(assignments, func(a domain.Assignment) bool {
		return a.ID == assignmentID
	})
	if index < 0 {
		return domain.ErrAssignmentNotFound
	}

	day.AssignmentsByDepartment[departmentID] = slices.Delete(assignments, index, index+1)
	s.prune(dateKey)
	return s.persist()
}

// ClearDay elimina la entrada de la fecha sin condiciones.
func (s *Store) ClearDay(dateKey string) error {
	delete(s.days, dateKey)
	return s.persist()
}

// Snapshot devuelve una copia profunda de todo el calendario, lista para
// serializar.
func (s *Store) Snapshot() map[string]*domain.DaySchedule {
	snapshot := make(map[string]*domain.DaySchedule, len(s.days))
	for dateKey, day := range s.days {
		snapshot[dateKey] = day.Clone()
	}
	return snapshot
}

// prune elimina las claves de departamento sin turnos y la entrada del día si
// queda completamente vacío.
func (s *Store) prune(dateKey string) {
	day, exists := s.days[dateKey]
	if !exists {
		return
	}
	for departmentID, assignments := range day.AssignmentsByDepartment {
		if len(assignments) == 0 {
			delete(day.AssignmentsByDepartment, departmentID)
		}
	}
	if day.IsEmpty() {
		delete(s.days, dateKey)
	}
}

// removeEmployeeAssignments elimina todos los turnos del empleado en todas
// las fechas. No persiste; el llamador decide cuándo guardar.
func (s *Store) removeEmployeeAssignments(employeeID string) {
	for dateKey, day := range s.days {
		for departmentID, assignments := range day.AssignmentsByDepartment {
			kept := assignments[:0]
			for _, a := range assignments {
				if a.EmployeeID != employeeID {
					kept = append(kept, a)
				}
			}
			day.AssignmentsByDepartment[departmentID] = kept
		}
		s.prune(dateKey)
	}
}

// removeDepartmentAssignments elimina los turnos de los departamentos dados
// en todas las fechas. No persiste.
func (s *Store) removeDepartmentAssignments(departmentIDs ...string) {
	for dateKey, day := range s.days {
		for _, departmentID := range departmentIDs {
			delete(day.AssignmentsByDepartment, departmentID)
		}
		s.prune(dateKey)
	}
}

// resetDepartments vacía los departamentos dados únicamente en las fechas
// dadas; es el paso de "reiniciar y reaplicar" de la importación CSV.
func (s *Store) resetDepartments(dateKeys []string, departmentIDs []string) {
	for _, dateKey := range dateKeys {
		day, exists := s.days[dateKey]
		if !exists {
			continue
		}
		for _, departmentID := range departmentIDs {
			delete(day.AssignmentsByDepartment, departmentID)
		}
		s.prune(dateKey)
	}
}

func (s *Store) persist() error {
	if s.save == nil {
		return nil
	}
	if err := s.save(s.Snapshot()); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}
