package domain

import "slices"

type Employee struct {
	// El ID lo asigna la empresa (cédula o código interno) y es estable,
	// no se genera en este sistema.
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	LocationIDs []string `json:"locationIds"`
}

func (e *Employee) WorksAt(locationID string) bool {
	return slices.Contains(e.LocationIDs, locationID)
}
