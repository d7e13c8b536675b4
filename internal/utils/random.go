package utils

import (
	"fmt"
	"math/rand"

	"github.com/duber-parra/minominapro/backend/internal/domain"
)

var commonFirstNames = []string{
	"Juan", "María", "Carlos", "Luisa", "Andrés", "Camila", "Diego", "Valentina",
	"Santiago", "Paula", "Felipe", "Daniela", "Mateo", "Sofía", "Sebastián",
	"Isabela", "Nicolás", "Gabriela", "Samuel", "Mariana",
}
var commonLastNames = []string{
	"García", "Rodríguez", "Martínez", "López", "González", "Pérez", "Sánchez",
	"Ramírez", "Torres", "Flórez", "Gómez", "Díaz", "Castro", "Vargas", "Rojas",
	"Moreno", "Jiménez", "Ortiz", "Herrera", "Mendoza",
}

func GenerateRandomFullName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	last := commonLastNames[rand.Intn(len(commonLastNames))]
	return first + " " + last
}

// GenerateRandomEmployeeID imita una cédula: 8 a 10 dígitos sin cero inicial.
func GenerateRandomEmployeeID() string {
	length := rand.Intn(3) + 8
	id := fmt.Sprintf("%d", rand.Intn(9)+1)
	for i := 1; i < length; i++ {
		id += fmt.Sprintf("%d", rand.Intn(10))
	}
	return id
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
var digits = "0123456789"

func GenerateRandomID(letterLength int, digitLength int) string {
	randomID := make([]rune, letterLength+digitLength)
	for i := range randomID {
		if i < letterLength {
			randomID[i] = letters[rand.Intn(len(letters))]
		} else {
			randomID[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(randomID)
}

// GenerateRandomShift produce un turno plausible: inicia entre las 06:00 y
// las 15:00, dura entre 4 y 9 horas y a veces lleva una hora de almuerzo.
func GenerateRandomShift(employeeID string) domain.Assignment {
	startHour := rand.Intn(10) + 6
	duration := rand.Intn(6) + 4
	endHour := (startHour + duration) % 24

	a := domain.Assignment{
		EmployeeID: employeeID,
		StartTime:  fmt.Sprintf("%02d:00", startHour),
		EndTime:    fmt.Sprintf("%02d:00", endHour),
	}
	if duration >= 6 && rand.Intn(2) == 0 {
		a.IncludeBreak = true
		a.BreakStartTime = fmt.Sprintf("%02d:00", (startHour+3)%24)
		a.BreakEndTime = fmt.Sprintf("%02d:00", (startHour+4)%24)
	}
	return a
}
