package scheduler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/duber-parra/minominapro/backend/internal/domain"
)

// Encabezados reconocidos en la importación, comparados sin distinguir
// mayúsculas. Solo Fecha, Incluye_Descanso y los descansos son opcionales.
const (
	headerEmployeeID   = "id_empleado"
	headerDate         = "fecha"
	headerDepartment   = "departamento"
	headerStartTime    = "hora_inicio"
	headerEndTime      = "hora_fin"
	headerIncludeBreak = "incluye_descanso"
	headerBreakStart   = "inicio_descanso"
	headerBreakEnd     = "fin_descanso"
)

// ImportReport resume una importación CSV. Los fallos por fila nunca abortan
// el lote; se cuentan por categoría en Reasons.
type ImportReport struct {
	Applied int            `json:"applied"`
	Skipped int            `json:"skipped"`
	Errored int            `json:"errored"`
	Reasons map[string]int `json:"reasons"`
}

func (r *ImportReport) skip(reason string) {
	r.Skipped++
	r.Reasons[reason]++
}

func (r *ImportReport) fail(reason string) {
	r.Errored++
	r.Reasons[reason]++
}

// ImportCSV interpreta el contenido tabular y lo aplica sobre la semana en
// pantalla. La fecha literal de cada fila solo determina la posición del día
// de la semana (lunes primero); la fecha absoluta destino sale de weekKeys.
// Antes de aplicar se vacían los departamentos en alcance dentro de la
// semana, de modo que reimportar el mismo archivo es idempotente.
func ImportCSV(rawText string, weekKeys []string, location domain.Location, departments []domain.Department, roster *Roster, store *Store) (ImportReport, error) {
	report := ImportReport{Reasons: make(map[string]int)}

	reader := csv.NewReader(strings.NewReader(rawText))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headerRecord, err := reader.Read()
	if err != nil {
		return report, fmt.Errorf("el archivo no tiene fila de encabezados")
	}
	columns := make(map[string]int, len(headerRecord))
	for i, name := range headerRecord {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF")))] = i
	}
	for _, required := range []string{headerEmployeeID, headerDepartment, headerStartTime, headerEndTime} {
		if _, ok := columns[required]; !ok {
			return report, fmt.Errorf("falta la columna obligatoria %s", required)
		}
	}

	departmentIDs := make([]string, 0, len(departments))
	departmentsByName := make(map[string]domain.Department, len(departments))
	for _, d := range departments {
		departmentIDs = append(departmentIDs, d.ID)
		departmentsByName[strings.ToLower(d.Name)] = d
	}

	// Reiniciar y reaplicar: la semana queda como la describe el archivo.
	store.resetDepartments(weekKeys, departmentIDs)

	defaultDate := FirstMondayOfYear(time.Now().Year())

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.fail("fila_ilegible")
			continue
		}

		field := func(name string) string {
			index, ok := columns[name]
			if !ok || index >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[index])
		}

		employeeID := field(headerEmployeeID)
		if employeeID == "" {
			report.fail("id_empleado_vacio")
			continue
		}
		employee, err := roster.Employee(employeeID)
		if err != nil {
			report.skip("empleado_desconocido")
			continue
		}
		if !employee.WorksAt(location.ID) {
			report.skip("empleado_fuera_de_sede")
			continue
		}

		department, ok := departmentsByName[strings.ToLower(field(headerDepartment))]
		if !ok {
			report.skip("departamento_desconocido")
			continue
		}

		rowDate := defaultDate
		if rawDate := field(headerDate); rawDate != "" {
			rowDate, err = ParseDateKey(rawDate)
			if err != nil {
				report.fail("fecha_invalida")
				continue
			}
		}
		targetKey := weekKeys[WeekdayIndex(rowDate)]

		includeBreak := isTruthy(field(headerIncludeBreak))
		candidate := domain.Assignment{
			ID:             NewAssignmentID(employeeID, targetKey, field(headerStartTime)),
			EmployeeID:     employeeID,
			StartTime:      field(headerStartTime),
			EndTime:        field(headerEndTime),
			IncludeBreak:   includeBreak,
			BreakStartTime: field(headerBreakStart),
			BreakEndTime:   field(headerBreakEnd),
		}

		if err := store.insert(targetKey, department.ID, candidate); err != nil {
			var conflict *domain.ConflictError
			if errors.As(err, &conflict) {
				report.skip("conflicto")
			} else {
				report.fail("formato_invalido")
			}
			continue
		}
		report.Applied++
	}

	return report, store.persist()
}

// isTruthy reconoce los valores afirmativos de Incluye_Descanso.
func isTruthy(value string) bool {
	switch strings.ToLower(value) {
	case "sí", "si", "true", "1":
		return true
	}
	return false
}

// Encabezados de la exportación, una fila por turno.
var exportHeader = []string{
	"ID_Empleado", "Nombre_Empleado", "Fecha", "Departamento",
	"Hora_Inicio", "Hora_Fin", "Incluye_Descanso",
	"Inicio_Descanso", "Fin_Descanso", "Horas_Trabajadas",
}

// ExportCSV genera el CSV de la semana: horas en formato de 12 horas y horas
// trabajadas con 2 decimales. Un empleado que ya no existe en el roster se
// exporta con el nombre "(ID: …)".
func ExportCSV(weekKeys []string, departments []domain.Department, roster *Roster, store *Store) (string, error) {
	var builder strings.Builder
	writer := csv.NewWriter(&builder)

	if err := writer.Write(exportHeader); err != nil {
		return "", err
	}

	for _, dateKey := range weekKeys {
		date, err := ParseDateKey(dateKey)
		if err != nil {
			return "", err
		}
		day := store.Get(dateKey)

		for _, department := range departments {
			for _, a := range day.AssignmentsByDepartment[department.ID] {
				name := "(ID: " + a.EmployeeID + ")"
				if employee, err := roster.Employee(a.EmployeeID); err == nil {
					name = employee.Name
				}

				includeBreak := "No"
				breakStart, breakEnd := "", ""
				if a.IncludeBreak {
					includeBreak = "Sí"
					breakStart = formatClock12(a.BreakStartTime)
					breakEnd = formatClock12(a.BreakEndTime)
				}

				hours, err := ComputeNetHours(a, date)
				if err != nil {
					slog.Error("no se pudo calcular la duración del turno exportado", "assignmentID", a.ID, "error", err)
				}

				record := []string{
					a.EmployeeID,
					name,
					dateKey,
					department.Name,
					formatClock12(a.StartTime),
					formatClock12(a.EndTime),
					includeBreak,
					breakStart,
					breakEnd,
					strconv.FormatFloat(hours, 'f', 2, 64),
				}
				if err := writer.Write(record); err != nil {
					return "", err
				}
			}
		}
	}

	writer.Flush()
	return builder.String(), writer.Error()
}
