package scheduler

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/duber-parra/minominapro/backend/internal/domain"
)

// RosterPersistence agrupa las funciones de guardado del catálogo; cada clave
// del almacenamiento externo tiene la suya.
type RosterPersistence struct {
	SaveLocations   func(locations []domain.Location) error
	SaveDepartments func(departments []domain.Department) error
	SaveEmployees   func(employees []domain.Employee) error
}

// Roster es el catálogo en memoria de sedes, departamentos y empleados.
// Es el dueño de las cascadas de borrado: eliminar una sede arrastra sus
// departamentos, los turnos de esos departamentos en todas las fechas, las
// plantillas de la sede y la pertenencia de los empleados.
type Roster struct {
	locations   []domain.Location
	departments []domain.Department
	employees   []domain.Employee

	store     *Store
	templates *TemplateManager
	persist   RosterPersistence
}

func NewRoster(store *Store, templates *TemplateManager, persist RosterPersistence) *Roster {
	return &Roster{
		store:     store,
		templates: templates,
		persist:   persist,
	}
}

func (r *Roster) Load(locations []domain.Location, departments []domain.Department, employees []domain.Employee) {
	r.locations = slices.Clone(locations)
	r.departments = slices.Clone(departments)
	r.employees = slices.Clone(employees)
}

/**********************************************
 * Sedes
 **********************************************/

func (r *Roster) Locations() []domain.Location {
	return slices.Clone(r.locations)
}

func (r *Roster) Location(id string) (domain.Location, error) {
	for _, l := range r.locations {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Location{}, domain.ErrLocationNotFound
}

func (r *Roster) CreateLocation(name string) (domain.Location, error) {
	location := domain.Location{ID: uuid.NewString(), Name: name}
	r.locations = append(r.locations, location)
	return location, r.saveLocations()
}

func (r *Roster) UpdateLocation(id, name string) (domain.Location, error) {
	for i := range r.locations {
		if r.locations[i].ID == id {
			r.locations[i].Name = name
			return r.locations[i], r.saveLocations()
		}
	}
	return domain.Location{}, domain.ErrLocationNotFound
}

// DeleteLocation elimina la sede en cascada: sus departamentos, los turnos de
// esos departamentos en todas las fechas, las plantillas de la sede y la
// pertenencia de los empleados. Un empleado que se queda sin sedes se elimina
// junto con todos sus turnos.
func (r *Roster) DeleteLocation(id string) error {
	if _, err := r.Location(id); err != nil {
		return err
	}

	departmentIDs := make([]string, 0)
	for _, d := range r.departments {
		if d.LocationID == id {
			departmentIDs = append(departmentIDs, d.ID)
		}
	}

	r.locations = slices.DeleteFunc(r.locations, func(l domain.Location) bool { return l.ID == id })
	r.departments = slices.DeleteFunc(r.departments, func(d domain.Department) bool { return d.LocationID == id })
	r.store.removeDepartmentAssignments(departmentIDs...)
	r.templates.deleteByLocation(id)

	kept := r.employees[:0]
	for _, e := range r.employees {
		e.LocationIDs = slices.DeleteFunc(slices.Clone(e.LocationIDs), func(locID string) bool { return locID == id })
		if len(e.LocationIDs) == 0 {
			// Última sede del empleado: se elimina el empleado y sus turnos.
			r.store.removeEmployeeAssignments(e.ID)
			continue
		}
		kept = append(kept, e)
	}
	r.employees = kept

	return errors.Join(
		r.saveLocations(),
		r.saveDepartments(),
		r.saveEmployees(),
		r.store.persist(),
		r.templates.persist(),
	)
}

/**********************************************
 * Departamentos
 **********************************************/

func (r *Roster) Departments() []domain.Department {
	return slices.Clone(r.departments)
}

func (r *Roster) DepartmentsOf(locationID string) []domain.Department {
	departments := make([]domain.Department, 0)
	for _, d := range r.departments {
		if d.LocationID == locationID {
			departments = append(departments, d)
		}
	}
	return departments
}

func (r *Roster) Department(id string) (domain.Department, error) {
	for _, d := range r.departments {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Department{}, domain.ErrDepartmentNotFound
}

func (r *Roster) CreateDepartment(locationID, name string, icon domain.DepartmentIcon) (domain.Department, error) {
	if _, err := r.Location(locationID); err != nil {
		return domain.Department{}, err
	}
	if !icon.IsValid() {
		return domain.Department{}, fmt.Errorf("icono desconocido: %q", icon)
	}
	department := domain.Department{
		ID:         uuid.NewString(),
		Name:       name,
		LocationID: locationID,
		Icon:       icon,
	}
	r.departments = append(r.departments, department)
	return department, r.saveDepartments()
}

func (r *Roster) UpdateDepartment(id string, name *string, icon *domain.DepartmentIcon) (domain.Department, error) {
	for i := range r.departments {
		if r.departments[i].ID != id {
			continue
		}
		if name != nil {
			r.departments[i].Name = *name
		}
		if icon != nil {
			if !icon.IsValid() {
				return domain.Department{}, fmt.Errorf("icono desconocido: %q", *icon)
			}
			r.departments[i].Icon = *icon
		}
		return r.departments[i], r.saveDepartments()
	}
	return domain.Department{}, domain.ErrDepartmentNotFound
}

// DeleteDepartment elimina el departamento y sus turnos en todas las fechas.
func (r *Roster) DeleteDepartment(id string) error {
	if _, err := r.Department(id); err != nil {
		return err
	}
	r.departments = slices.DeleteFunc(r.departments, func(d domain.Department) bool { return d.ID == id })
	r.store.removeDepartmentAssignments(id)
	return errors.Join(r.saveDepartments(), r.store.persist())
}

/**********************************************
 * Empleados
 **********************************************/

func (r *Roster) Employees() []domain.Employee {
	return slices.Clone(r.employees)
}

func (r *Roster) EmployeesOf(locationID string) []domain.Employee {
	employees := make([]domain.Employee, 0)
	for _, e := range r.employees {
		if e.WorksAt(locationID) {
			employees = append(employees, e)
		}
	}
	return employees
}

func (r *Roster) Employee(id string) (domain.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Employee{}, domain.ErrEmployeeNotFound
}

func (r *Roster) CreateEmployee(id, name string, locationIDs []string) (domain.Employee, error) {
	if id == "" {
		return domain.Employee{}, fmt.Errorf("el ID del empleado es obligatorio")
	}
	if _, err := r.Employee(id); err == nil {
		return domain.Employee{}, fmt.Errorf("ya existe un empleado con ID %s", id)
	}
	if err := r.checkLocationIDs(locationIDs); err != nil {
		return domain.Employee{}, err
	}
	employee := domain.Employee{ID: id, Name: name, LocationIDs: slices.Clone(locationIDs)}
	r.employees = append(r.employees, employee)
	return employee, r.saveEmployees()
}

// UpdateEmployee cambia nombre y/o sedes. Dejar al empleado sin sedes se
// rechaza con ErrLastLocation; la única forma de que pierda la última es la
// cascada de borrado de la propia sede.
func (r *Roster) UpdateEmployee(id string, name *string, locationIDs []string) (domain.Employee, error) {
	for i := range r.employees {
		if r.employees[i].ID != id {
			continue
		}
		if name != nil {
			r.employees[i].Name = *name
		}
		if locationIDs != nil {
			if len(locationIDs) == 0 {
				return domain.Employee{}, domain.ErrLastLocation
			}
			if err := r.checkLocationIDs(locationIDs); err != nil {
				return domain.Employee{}, err
			}
			r.employees[i].LocationIDs = slices.Clone(locationIDs)
		}
		return r.employees[i], r.saveEmployees()
	}
	return domain.Employee{}, domain.ErrEmployeeNotFound
}

// DeleteEmployee elimina al empleado y todos sus turnos en todas las fechas.
func (r *Roster) DeleteEmployee(id string) error {
	if _, err := r.Employee(id); err != nil {
		return err
	}
	r.employees = slices.DeleteFunc(r.employees, func(e domain.Employee) bool { return e.ID == id })
	r.store.removeEmployeeAssignments(id)
	return errors.Join(r.saveEmployees(), r.store.persist())
}

func (r *Roster) checkLocationIDs(locationIDs []string) error {
	if len(locationIDs) == 0 {
		return domain.ErrLastLocation
	}
	for _, locationID := range locationIDs {
		if _, err := r.Location(locationID); err != nil {
			return fmt.Errorf("%w: %s", domain.ErrLocationNotFound, locationID)
		}
	}
	return nil
}

func (r *Roster) saveLocations() error {
	if r.persist.SaveLocations == nil {
		return nil
	}
	if err := r.persist.SaveLocations(r.Locations()); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (r *Roster) saveDepartments() error {
	if r.persist.SaveDepartments == nil {
		return nil
	}
	if err := r.persist.SaveDepartments(r.Departments()); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (r *Roster) saveEmployees() error {
	if r.persist.SaveEmployees == nil {
		return nil
	}
	if err := r.persist.SaveEmployees(r.Employees()); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}
