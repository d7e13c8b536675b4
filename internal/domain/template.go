package domain

import "time"

type TemplateType string

const (
	TemplateDaily  TemplateType = "daily"
	TemplateWeekly TemplateType = "weekly"
)

type EmployeeRef struct {
	ID string `json:"id"`
}

// TemplateAssignment es un turno reducido: sin ID de instancia y con el
// empleado referenciado solo por ID, para que la plantilla sobreviva a
// ediciones posteriores de nombre o sede.
type TemplateAssignment struct {
	StartTime      string      `json:"startTime"`
	EndTime        string      `json:"endTime"`
	IncludeBreak   bool        `json:"includeBreak"`
	BreakStartTime string      `json:"breakStartTime,omitempty"`
	BreakEndTime   string      `json:"breakEndTime,omitempty"`
	Employee       EmployeeRef `json:"employee"`
}

type TemplateDay struct {
	AssignmentsByDepartment map[string][]TemplateAssignment `json:"assignmentsByDepartment"`
}

type Template struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	LocationID string       `json:"locationId"`
	Type       TemplateType `json:"type"`
	CreatedAt  time.Time    `json:"createdAt"`
	// Para plantillas diarias Days tiene un solo elemento; para semanales
	// tiene 7 posiciones alineadas de lunes a domingo.
	Days []TemplateDay `json:"days"`
}
