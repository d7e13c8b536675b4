package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duber-parra/minominapro/backend/internal/domain"
	"github.com/duber-parra/minominapro/backend/internal/scheduler"
)

func TestRoster_CreateLocation(t *testing.T) {
	_, _, roster := newTestEngine()

	location, err := roster.CreateLocation("Sede Sur")
	require.NoError(t, err)
	assert.NotEmpty(t, location.ID)

	found, err := roster.Location(location.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sede Sur", found.Name)
}

func TestRoster_UpdateLocation(t *testing.T) {
	_, _, roster := newTestEngine()

	updated, err := roster.UpdateLocation("loc1", "Sede Centro Renovada")
	require.NoError(t, err)
	assert.Equal(t, "Sede Centro Renovada", updated.Name)

	_, err = roster.UpdateLocation("loc99", "x")
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestRoster_CreateDepartment(t *testing.T) {
	_, _, roster := newTestEngine()

	department, err := roster.CreateDepartment("loc1", "Caja", domain.IconEdit)
	require.NoError(t, err)
	assert.Equal(t, "loc1", department.LocationID)

	_, err = roster.CreateDepartment("loc99", "Caja", domain.IconEdit)
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)

	_, err = roster.CreateDepartment("loc1", "Caja", domain.DepartmentIcon("estrella"))
	assert.Error(t, err)
}

func TestRoster_CreateEmployee(t *testing.T) {
	_, _, roster := newTestEngine()

	employee, err := roster.CreateEmployee("12345678", "Ana Torres", []string{"loc1"})
	require.NoError(t, err)
	assert.Equal(t, "12345678", employee.ID)

	// El ID lo aporta el llamador y debe ser único.
	_, err = roster.CreateEmployee("", "Sin ID", []string{"loc1"})
	assert.Error(t, err)
	_, err = roster.CreateEmployee("e1", "Duplicado", []string{"loc1"})
	assert.Error(t, err)
	_, err = roster.CreateEmployee("99", "Sin sedes", nil)
	assert.ErrorIs(t, err, domain.ErrLastLocation)
	_, err = roster.CreateEmployee("99", "Sede fantasma", []string{"loc99"})
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestRoster_UpdateEmployeeRejectsEmptyLocations(t *testing.T) {
	_, _, roster := newTestEngine()

	_, err := roster.UpdateEmployee("e1", nil, []string{})
	assert.ErrorIs(t, err, domain.ErrLastLocation)

	// nil significa "no cambiar las sedes".
	name := "Juan G."
	updated, err := roster.UpdateEmployee("e1", &name, nil)
	require.NoError(t, err)
	assert.Equal(t, "Juan G.", updated.Name)
	assert.Equal(t, []string{"loc1"}, updated.LocationIDs)
}

func TestRoster_DeleteEmployeeRemovesAssignments(t *testing.T) {
	store, _, roster := newTestEngine()
	require.NoError(t, store.Upsert("2026-03-02", "cocina", validAssignment("a1", "e1")))
	require.NoError(t, store.Upsert("2026-03-02", "barra", validAssignment("a2", "e2")))
	require.NoError(t, store.Upsert("2026-03-03", "cocina", validAssignment("a3", "e1")))

	require.NoError(t, roster.DeleteEmployee("e1"))

	_, err := roster.Employee("e1")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	assert.Empty(t, store.Get("2026-03-02").AssignmentsByDepartment["cocina"])
	assert.False(t, store.Has("2026-03-03"))
}

func TestRoster_DeleteDepartmentRemovesAssignments(t *testing.T) {
	store, _, roster := newTestEngine()
	require.NoError(t, store.Upsert("2026-03-02", "cocina", validAssignment("a1", "e1")))
	require.NoError(t, store.Upsert("2026-03-02", "barra", validAssignment("a2", "e2")))

	require.NoError(t, roster.DeleteDepartment("cocina"))

	_, err := roster.Department("cocina")
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
	day := store.Get("2026-03-02")
	assert.Empty(t, day.AssignmentsByDepartment["cocina"])
	assert.Len(t, day.AssignmentsByDepartment["barra"], 1)
}

func TestRoster_DeleteLocationCascade(t *testing.T) {
	store, templates, roster := newTestEngine()
	require.NoError(t, store.Upsert("2026-03-02", "cocina", validAssignment("a1", "e1")))
	require.NoError(t, store.Upsert("2026-03-02", "barra", validAssignment("a2", "e2")))

	template, err := templates.Extract(store, domain.TemplateDaily, "Lunes típico", "loc1", []string{"2026-03-02"}, []string{"cocina", "barra"})
	require.NoError(t, err)

	require.NoError(t, roster.DeleteLocation("loc1"))

	// La sede y sus departamentos desaparecen.
	_, err = roster.Location("loc1")
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
	assert.Empty(t, roster.DepartmentsOf("loc1"))

	// e1 solo trabajaba en loc1: se elimina junto con sus turnos. e2 también
	// trabaja en loc2 y sobrevive, solo pierde la pertenencia.
	_, err = roster.Employee("e1")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	e2, err := roster.Employee("e2")
	require.NoError(t, err)
	assert.Equal(t, []string{"loc2"}, e2.LocationIDs)

	// Los turnos de los departamentos de la sede desaparecen de todas las
	// fechas, y las plantillas de la sede también.
	assert.False(t, store.Has("2026-03-02"))
	_, err = templates.Get(template.ID)
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestRoster_DeleteLocationKeepsOtherLocations(t *testing.T) {
	store, _, roster := newTestEngine()

	department, err := roster.CreateDepartment("loc2", "Cocina Norte", domain.IconBuilding)
	require.NoError(t, err)
	require.NoError(t, store.Upsert("2026-03-02", department.ID, validAssignment("a1", "e3")))

	require.NoError(t, roster.DeleteLocation("loc1"))

	_, err = roster.Location("loc2")
	require.NoError(t, err)
	assert.Len(t, store.Get("2026-03-02").AssignmentsByDepartment[department.ID], 1)
	_, err = roster.Employee("e3")
	assert.NoError(t, err)
}

func TestRoster_EmployeesOf(t *testing.T) {
	_, _, roster := newTestEngine()

	atCentro := roster.EmployeesOf("loc1")
	ids := make([]string, 0, len(atCentro))
	for _, e := range atCentro {
		ids = append(ids, e.ID)
	}
	assert.ElementsMatch(t, []string{"e1", "e2"}, ids)
}

func TestRoster_PersistenceFailureWrapsErrPersistence(t *testing.T) {
	store := scheduler.NewStore(nil)
	templates := scheduler.NewTemplateManager(nil)
	roster := scheduler.NewRoster(store, templates, scheduler.RosterPersistence{
		SaveLocations: func([]domain.Location) error { return assert.AnError },
	})
	roster.Load(nil, nil, nil)

	location, err := roster.CreateLocation("Sede Sur")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)

	// La mutación quedó en memoria a pesar del fallo de guardado.
	_, lookupErr := roster.Location(location.ID)
	assert.NoError(t, lookupErr)
}
