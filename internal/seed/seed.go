package seed

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/duber-parra/minominapro/backend/internal/domain"
	"github.com/duber-parra/minominapro/backend/internal/repository"
	"github.com/duber-parra/minominapro/backend/internal/scheduler"
	"github.com/duber-parra/minominapro/backend/internal/utils"
)

// Catalog inserta las sedes y departamentos de demostración.
func Catalog(repo *repository.Repository) ([]domain.Location, []domain.Department, error) {
	locations := []domain.Location{
		{ID: uuid.NewString(), Name: "Sede Centro"},
		{ID: uuid.NewString(), Name: "Sede Norte"},
	}

	departmentNames := []struct {
		name string
		icon domain.DepartmentIcon
	}{
		{"Cocina", domain.IconBuilding},
		{"Barra", domain.IconUsers},
		{"Servicio", domain.IconEdit},
		{"Administración", domain.IconBuilding2},
	}

	departments := make([]domain.Department, 0, len(locations)*len(departmentNames))
	for _, location := range locations {
		for _, d := range departmentNames {
			departments = append(departments, domain.Department{
				ID:         uuid.NewString(),
				Name:       d.name,
				LocationID: location.ID,
				Icon:       d.icon,
			})
		}
	}

	if err := repo.SaveLocations(locations); err != nil {
		return nil, nil, err
	}
	if err := repo.SaveDepartments(departments); err != nil {
		return nil, nil, err
	}

	slog.Info("catálogo de demostración insertado", "locations", len(locations), "departments", len(departments))
	return locations, departments, nil
}

// Employees inserta n empleados aleatorios repartidos entre las sedes.
func Employees(repo *repository.Repository, locations []domain.Location, n int) ([]domain.Employee, error) {
	if len(locations) == 0 {
		return nil, fmt.Errorf("no hay sedes: inserte primero el catálogo")
	}

	employees := make([]domain.Employee, 0, n)
	for i := 0; i < n; i++ {
		locationIDs := []string{locations[rand.Intn(len(locations))].ID}
		// Algunos empleados trabajan en todas las sedes.
		if rand.Intn(4) == 0 {
			locationIDs = locationIDs[:0]
			for _, location := range locations {
				locationIDs = append(locationIDs, location.ID)
			}
		}

		employees = append(employees, domain.Employee{
			ID:          utils.GenerateRandomEmployeeID(),
			Name:        utils.GenerateRandomFullName(),
			LocationIDs: locationIDs,
		})
	}

	if err := repo.SaveEmployees(employees); err != nil {
		return nil, err
	}

	slog.Info("empleados de demostración insertados", "count", len(employees))
	return employees, nil
}

// DemoWeek llena la semana actual con turnos aleatorios válidos; la
// invariante de un turno por empleado por día la garantiza el propio Store.
func DemoWeek(repo *repository.Repository, departments []domain.Department, employees []domain.Employee) error {
	if len(departments) == 0 || len(employees) == 0 {
		return fmt.Errorf("no hay catálogo o empleados: inserte primero los datos base")
	}

	store := scheduler.NewStore(repo.SaveSchedule)
	schedule, err := repo.LoadSchedule()
	if err != nil {
		return err
	}
	store.Load(schedule)

	now := time.Now()
	monday := now.AddDate(0, 0, -scheduler.WeekdayIndex(now))

	inserted := 0
	for _, dateKey := range scheduler.WeekKeys(monday) {
		for _, employee := range employees {
			if rand.Intn(3) == 0 {
				// Día libre.
				continue
			}
			department := departments[rand.Intn(len(departments))]
			a := utils.GenerateRandomShift(employee.ID)
			a.ID = scheduler.NewAssignmentID(employee.ID, dateKey, a.StartTime)
			if err := store.Upsert(dateKey, department.ID, a); err != nil {
				var conflict *domain.ConflictError
				if errors.As(err, &conflict) {
					// El empleado ya tenía turno ese día (semilla repetida).
					continue
				}
				return err
			}
			inserted++
		}
	}

	slog.Info("semana de demostración insertada", "assignments", inserted)
	return nil
}
