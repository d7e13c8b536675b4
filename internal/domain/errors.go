package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoValue             = errors.New("no existe ningún valor para la clave")
	ErrLocationNotFound    = errors.New("la sede no existe")
	ErrDepartmentNotFound  = errors.New("el departamento no existe")
	ErrEmployeeNotFound    = errors.New("el empleado no existe")
	ErrAssignmentNotFound  = errors.New("el turno no existe")
	ErrTemplateNotFound    = errors.New("la plantilla no existe")
	ErrEmptyTemplate       = errors.New("no hay turnos en el rango para guardar como plantilla")
	ErrLastLocation        = errors.New("el empleado debe pertenecer al menos a una sede")
	ErrDurationComputation = errors.New("no se pudo calcular la duración del turno")
	// ErrPersistence indica que la mutación sí se aplicó en memoria pero no se
	// pudo escribir en el almacenamiento externo; el estado en memoria sigue
	// siendo la fuente de verdad.
	ErrPersistence = errors.New("no se pudo guardar en el almacenamiento")
)

// FormatError es un error de formato en los campos de un turno (horas o
// descanso mal formados). Siempre es recuperable y nunca deja mutación.
type FormatError struct {
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("campo %s inválido: %s", e.Field, e.Reason)
}

// ConflictError indica que el empleado ya tiene un turno ese día en
// cualquier departamento.
type ConflictError struct {
	EmployeeID string
	DateKey    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("el empleado %s ya tiene un turno asignado el %s", e.EmployeeID, e.DateKey)
}
