package scheduler_test

import (
	"github.com/duber-parra/minominapro/backend/internal/domain"
	"github.com/duber-parra/minominapro/backend/internal/scheduler"
)

// Catálogo compartido por las pruebas del paquete: una sede con dos
// departamentos y dos empleados, más una segunda sede con su empleado.
var (
	fixtureLocation  = domain.Location{ID: "loc1", Name: "Sede Centro"}
	fixtureLocation2 = domain.Location{ID: "loc2", Name: "Sede Norte"}

	fixtureDepartments = []domain.Department{
		{ID: "cocina", Name: "Cocina", LocationID: "loc1", Icon: domain.IconBuilding},
		{ID: "barra", Name: "Barra", LocationID: "loc1", Icon: domain.IconUsers},
	}

	fixtureEmployees = []domain.Employee{
		{ID: "e1", Name: "Juan García", LocationIDs: []string{"loc1"}},
		{ID: "e2", Name: "María López", LocationIDs: []string{"loc1", "loc2"}},
		{ID: "e3", Name: "Carlos Pérez", LocationIDs: []string{"loc2"}},
	}
)

// newTestEngine arma un motor completo en memoria, sin persistencia.
func newTestEngine() (*scheduler.Store, *scheduler.TemplateManager, *scheduler.Roster) {
	store := scheduler.NewStore(nil)
	templates := scheduler.NewTemplateManager(nil)
	roster := scheduler.NewRoster(store, templates, scheduler.RosterPersistence{})
	roster.Load(
		[]domain.Location{fixtureLocation, fixtureLocation2},
		fixtureDepartments,
		fixtureEmployees,
	)
	return store, templates, roster
}
