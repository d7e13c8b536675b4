package scheduler

import (
	"fmt"
	"time"

	"github.com/duber-parra/minominapro/backend/internal/domain"
)

// ComputeNetHours calcula las horas netas trabajadas de un turno en una fecha.
// Si la hora de fin es anterior a la de inicio el turno cruza la medianoche y
// el fin se corre un día. Un descanso inválido o invertido aporta 0 minutos,
// nunca un valor negativo. Nunca entra en pánico: si las horas no se pueden
// interpretar devuelve 0 junto con un error envuelto en ErrDurationComputation
// para que el llamador lo registre.
func ComputeNetHours(a domain.Assignment, scheduleDate time.Time) (float64, error) {
	startMinutes, startOK := parseClock(a.StartTime)
	endMinutes, endOK := parseClock(a.EndTime)
	if !startOK || !endOK {
		return 0, fmt.Errorf("%w: horas %q-%q", domain.ErrDurationComputation, a.StartTime, a.EndTime)
	}

	year, month, day := scheduleDate.Date()
	start := time.Date(year, month, day, startMinutes/60, startMinutes%60, 0, 0, time.UTC)
	end := time.Date(year, month, day, endMinutes/60, endMinutes%60, 0, 0, time.UTC)
	if end.Before(start) {
		// Turno nocturno: termina al día siguiente.
		end = end.AddDate(0, 0, 1)
	}
	grossMinutes := int(end.Sub(start).Minutes())

	breakMinutes := 0
	if a.IncludeBreak {
		breakStart, startOK := parseClock(a.BreakStartTime)
		breakEnd, endOK := parseClock(a.BreakEndTime)
		if startOK && endOK && breakEnd > breakStart {
			breakMinutes = breakEnd - breakStart
		}
	}

	netMinutes := grossMinutes - breakMinutes
	if netMinutes < 0 {
		netMinutes = 0
	}
	return float64(netMinutes) / 60, nil
}
