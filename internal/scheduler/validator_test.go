package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duber-parra/minominapro/backend/internal/domain"
	"github.com/duber-parra/minominapro/backend/internal/scheduler"
)

func validAssignment(id, employeeID string) domain.Assignment {
	return domain.Assignment{
		ID:         id,
		EmployeeID: employeeID,
		StartTime:  "09:00",
		EndTime:    "17:00",
	}
}

func TestValidateAssignment_Format(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(a *domain.Assignment)
		wantField string
	}{
		{
			name:      "hora de inicio ilegible",
			mutate:    func(a *domain.Assignment) { a.StartTime = "9am" },
			wantField: "startTime",
		},
		{
			name:      "hora de fin fuera de rango",
			mutate:    func(a *domain.Assignment) { a.EndTime = "24:00" },
			wantField: "endTime",
		},
		{
			name: "inicio de descanso ilegible",
			mutate: func(a *domain.Assignment) {
				a.IncludeBreak = true
				a.BreakStartTime = ""
				a.BreakEndTime = "13:00"
			},
			wantField: "breakStartTime",
		},
		{
			name: "descanso invertido",
			mutate: func(a *domain.Assignment) {
				a.IncludeBreak = true
				a.BreakStartTime = "13:00"
				a.BreakEndTime = "12:00"
			},
			wantField: "breakEndTime",
		},
		{
			name: "descanso de duración cero",
			mutate: func(a *domain.Assignment) {
				a.IncludeBreak = true
				a.BreakStartTime = "12:00"
				a.BreakEndTime = "12:00"
			},
			wantField: "breakEndTime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAssignment("a1", "e1")
			tt.mutate(&a)

			err := scheduler.ValidateAssignment(a, nil)
			var formatErr *domain.FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tt.wantField, formatErr.Field)
		})
	}
}

func TestValidateAssignment_BreakFieldsIgnoredWhenNotIncluded(t *testing.T) {
	a := validAssignment("a1", "e1")
	a.IncludeBreak = false
	a.BreakStartTime = "no aplica"

	assert.NoError(t, scheduler.ValidateAssignment(a, nil))
}

func TestValidateAssignment_ConflictAcrossDepartments(t *testing.T) {
	day := domain.NewDaySchedule("2026-03-02")
	day.AssignmentsByDepartment["cocina"] = []domain.Assignment{validAssignment("a1", "e1")}

	// Mismo empleado, otro departamento: la invariante cubre todo el día.
	candidate := validAssignment("a2", "e1")
	err := scheduler.ValidateAssignment(candidate, day)

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "e1", conflict.EmployeeID)
	assert.Equal(t, "2026-03-02", conflict.DateKey)
}

func TestValidateAssignment_EditingSameAssignmentIsNotAConflict(t *testing.T) {
	day := domain.NewDaySchedule("2026-03-02")
	day.AssignmentsByDepartment["cocina"] = []domain.Assignment{validAssignment("a1", "e1")}

	edited := validAssignment("a1", "e1")
	edited.EndTime = "18:00"

	assert.NoError(t, scheduler.ValidateAssignment(edited, day))
}

func TestValidateAssignment_OtherEmployeeSameDay(t *testing.T) {
	day := domain.NewDaySchedule("2026-03-02")
	day.AssignmentsByDepartment["cocina"] = []domain.Assignment{validAssignment("a1", "e1")}

	assert.NoError(t, scheduler.ValidateAssignment(validAssignment("a2", "e2"), day))
}

func TestValidateAssignment_NilDay(t *testing.T) {
	assert.NoError(t, scheduler.ValidateAssignment(validAssignment("a1", "e1"), nil))
}
