package scheduler

import (
	"fmt"
	"time"
)

// DateKeyLayout es el formato de las claves de fecha del calendario.
const DateKeyLayout = "2006-01-02"

func ParseDateKey(key string) (time.Time, error) {
	date, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: debe tener formato aaaa-mm-dd", key)
	}
	return date, nil
}

func FormatDateKey(date time.Time) string {
	return date.Format(DateKeyLayout)
}

// WeekdayIndex devuelve la posición del día en una semana que empieza en
// lunes: lunes = 0 ... domingo = 6.
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// WeekKeys devuelve las 7 claves de fecha de la semana que empieza en monday.
func WeekKeys(monday time.Time) []string {
	keys := make([]string, 7)
	for i := range keys {
		keys[i] = FormatDateKey(monday.AddDate(0, 0, i))
	}
	return keys
}

// FirstMondayOfYear devuelve el primer lunes del año; es la fecha por defecto
// de las filas CSV que no traen columna Fecha.
func FirstMondayOfYear(year int) time.Time {
	date := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for date.Weekday() != time.Monday {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

// parseClock interpreta una hora "HH:MM" estricta (hora 00-23, minuto 00-59)
// y la devuelve como minutos desde medianoche.
func parseClock(value string) (int, bool) {
	if len(value) != 5 || value[2] != ':' {
		return 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if value[i] < '0' || value[i] > '9' {
			return 0, false
		}
	}
	hour := int(value[0]-'0')*10 + int(value[1]-'0')
	minute := int(value[3]-'0')*10 + int(value[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// formatClock12 convierte "HH:MM" a formato de 12 horas para la exportación.
// Una hora mal formada se devuelve tal cual.
func formatClock12(value string) string {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return value
	}
	return parsed.Format("03:04 PM")
}
