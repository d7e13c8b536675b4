package domain

type DepartmentIcon string

// Los iconos se guardan como etiquetas simbólicas; la interfaz los resuelve
// a un componente visual, el núcleo nunca almacena referencias a funciones.
const (
	IconBuilding  DepartmentIcon = "Building"
	IconUsers     DepartmentIcon = "Users"
	IconEdit      DepartmentIcon = "Edit"
	IconBuilding2 DepartmentIcon = "Building2"
)

func (i DepartmentIcon) IsValid() bool {
	switch i {
	case IconBuilding, IconUsers, IconEdit, IconBuilding2:
		return true
	}
	return false
}

type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Department struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	LocationID string         `json:"locationId"`
	Icon       DepartmentIcon `json:"icon"`
}
