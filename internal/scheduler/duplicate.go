package scheduler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/duber-parra/minominapro/backend/internal/domain"
)

// DuplicateReport resume una duplicación: los conflictos en el destino no
// abortan la operación, se cuentan y el llamador decide si el resultado
// parcial le sirve.
type DuplicateReport struct {
	Copied  int `json:"copied"`
	Skipped int `json:"skipped"`
	// DaysWithCopies solo aplica a la duplicación semanal: cuántos días de
	// origen produjeron al menos un turno copiado.
	DaysWithCopies int `json:"daysWithCopies,omitempty"`
}

// NewAssignmentID genera la identidad de un turno nuevo. El sufijo aleatorio
// garantiza unicidad incluso entre dos turnos con la misma hora de inicio.
func NewAssignmentID(employeeID, dateKey, startTime string) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s-%s-%s-%s", employeeID, dateKey, strings.ReplaceAll(startTime, ":", ""), suffix)
}

// DuplicateDay copia todos los turnos de la fecha de origen al día siguiente,
// con identidades nuevas y revalidando la invariante en el destino. La fecha
// de origen nunca se muta. Devuelve el reporte y la clave del día destino.
func DuplicateDay(store *Store, roster *Roster, sourceKey string) (DuplicateReport, string, error) {
	sourceDate, err := ParseDateKey(sourceKey)
	if err != nil {
		return DuplicateReport{}, "", err
	}
	targetKey := FormatDateKey(sourceDate.AddDate(0, 0, 1))

	report, err := copyDay(store, roster, sourceKey, targetKey)
	if err != nil {
		return report, targetKey, err
	}
	return report, targetKey, store.persist()
}

// DuplicateWeek copia cada día con turnos de la semana actual al día alineado
// por posición (lunes a lunes) de la semana siguiente.
func DuplicateWeek(store *Store, roster *Roster, weekKeys []string) (DuplicateReport, error) {
	var report DuplicateReport
	for _, sourceKey := range weekKeys {
		if !store.Has(sourceKey) {
			continue
		}
		sourceDate, err := ParseDateKey(sourceKey)
		if err != nil {
			return report, err
		}
		targetKey := FormatDateKey(sourceDate.AddDate(0, 0, 7))

		dayReport, err := copyDay(store, roster, sourceKey, targetKey)
		report.Copied += dayReport.Copied
		report.Skipped += dayReport.Skipped
		if dayReport.Copied > 0 {
			report.DaysWithCopies++
		}
		if err != nil {
			return report, err
		}
	}
	return report, store.persist()
}

func copyDay(store *Store, roster *Roster, sourceKey, targetKey string) (DuplicateReport, error) {
	var report DuplicateReport
	source := store.Get(sourceKey)

	for departmentID, assignments := range source.AssignmentsByDepartment {
		for _, original := range assignments {
			// Se vuelve a resolver el empleado contra el roster actual; un
			// empleado eliminado desde que se creó el origen se omite.
			if _, err := roster.Employee(original.EmployeeID); err != nil {
				report.Skipped++
				continue
			}

			duplicate := original
			duplicate.ID = NewAssignmentID(original.EmployeeID, targetKey, original.StartTime)
			if err := store.insert(targetKey, departmentID, duplicate); err != nil {
				var conflict *domain.ConflictError
				if errors.As(err, &conflict) {
					report.Skipped++
					continue
				}
				return report, err
			}
			report.Copied++
		}
	}
	return report, nil
}
