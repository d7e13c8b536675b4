package scheduler

import (
	"github.com/duber-parra/minominapro/backend/internal/domain"
)

// ValidateAssignment aplica las reglas de formato y la invariante central del
// calendario: un empleado solo puede tener un turno por día, sin importar el
// departamento. Es una función pura: no muta nada y es determinista.
//
// Devuelve nil, *domain.FormatError o *domain.ConflictError. Editar un turno
// existente (mismo ID) no cuenta como conflicto consigo mismo.
func ValidateAssignment(candidate domain.Assignment, day *domain.DaySchedule) error {
	if _, ok := parseClock(candidate.StartTime); !ok {
		return &domain.FormatError{Field: "startTime", Reason: "debe tener formato HH:MM"}
	}
	if _, ok := parseClock(candidate.EndTime); !ok {
		return &domain.FormatError{Field: "endTime", Reason: "debe tener formato HH:MM"}
	}

	if candidate.IncludeBreak {
		breakStart, startOK := parseClock(candidate.BreakStartTime)
		if !startOK {
			return &domain.FormatError{Field: "breakStartTime", Reason: "debe tener formato HH:MM"}
		}
		breakEnd, endOK := parseClock(candidate.BreakEndTime)
		if !endOK {
			return &domain.FormatError{Field: "breakEndTime", Reason: "debe tener formato HH:MM"}
		}
		if breakEnd <= breakStart {
			return &domain.FormatError{Field: "breakEndTime", Reason: "el fin del descanso debe ser posterior al inicio"}
		}
	}

	if day == nil {
		return nil
	}
	for _, assignments := range day.AssignmentsByDepartment {
		for _, existing := range assignments {
			if existing.EmployeeID == candidate.EmployeeID && existing.ID != candidate.ID {
				return &domain.ConflictError{EmployeeID: candidate.EmployeeID, DateKey: day.Date}
			}
		}
	}
	return nil
}
