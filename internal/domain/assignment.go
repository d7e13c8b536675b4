package domain

type Assignment struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	// Horas en formato "HH:MM" de 24 horas. Si EndTime es menor que StartTime
	// el turno cruza la medianoche y termina al día siguiente.
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	IncludeBreak   bool   `json:"includeBreak"`
	BreakStartTime string `json:"breakStartTime,omitempty"`
	BreakEndTime   string `json:"breakEndTime,omitempty"`
}

type DaySchedule struct {
	Date                    string                  `json:"date"`
	AssignmentsByDepartment map[string][]Assignment `json:"assignmentsByDepartment"`
}

func NewDaySchedule(date string) *DaySchedule {
	return &DaySchedule{
		Date:                    date,
		AssignmentsByDepartment: make(map[string][]Assignment),
	}
}

func (d *DaySchedule) IsEmpty() bool {
	for _, assignments := range d.AssignmentsByDepartment {
		if len(assignments) > 0 {
			return false
		}
	}
	return true
}

func (d *DaySchedule) Clone() *DaySchedule {
	clone := NewDaySchedule(d.Date)
	for departmentID, assignments := range d.AssignmentsByDepartment {
		clone.AssignmentsByDepartment[departmentID] = append([]Assignment{}, assignments...)
	}
	return clone
}
