package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duber-parra/minominapro/backend/internal/scheduler"
)

func TestDuplicateDay(t *testing.T) {
	store, _, roster := newTestEngine()
	require.NoError(t, store.Upsert("2026-03-02", "cocina", validAssignment("a1", "e1")))
	require.NoError(t, store.Upsert("2026-03-02", "barra", validAssignment("a2", "e2")))

	report, targetKey, err := scheduler.DuplicateDay(store, roster, "2026-03-02")
	require.NoError(t, err)

	assert.Equal(t, "2026-03-03", targetKey)
	assert.Equal(t, 2, report.Copied)
	assert.Zero(t, report.Skipped)

	// El origen no se muta y las copias llevan identidad propia.
	source := store.Get("2026-03-02")
	target := store.Get("2026-03-03")
	require.Len(t, source.AssignmentsByDepartment["cocina"], 1)
	require.Len(t, target.AssignmentsByDepartment["cocina"], 1)
	assert.NotEqual(t, source.AssignmentsByDepartment["cocina"][0].ID, target.AssignmentsByDepartment["cocina"][0].ID)
	assert.Equal(t, "e1", target.AssignmentsByDepartment["cocina"][0].EmployeeID)
}

func TestDuplicateDay_SecondRunSkipsEverything(t *testing.T) {
	store, _, roster := newTestEngine()
	require.NoError(t, store.Upsert("2026-03-02", "cocina", validAssignment("a1", "e1")))

	_, _, err := scheduler.DuplicateDay(store, roster, "2026-03-02")
	require.NoError(t, err)

	// Los empleados ya tienen turno en el destino: todo se omite, nada aborta.
	report, _, err := scheduler.DuplicateDay(store, roster, "2026-03-02")
	require.NoError(t, err)
	assert.Zero(t, report.Copied)
	assert.Equal(t, 1, report.Skipped)

	target := store.Get("2026-03-03")
	assert.Len(t, target.AssignmentsByDepartment["cocina"], 1)
}

func TestDuplicateDay_UnknownEmployeeIsSkipped(t *testing.T) {
	store, _, roster := newTestEngine()
	require.NoError(t, store.Upsert("2026-03-02", "cocina", validAssignment("a1", "e1")))
	// Turno huérfano: el calendario puede contener empleados que ya no están
	// en el roster, la duplicación los resuelve de nuevo y los omite.
	require.NoError(t, store.Upsert("2026-03-02", "barra", validAssignment("a2", "e99")))

	report, _, err := scheduler.DuplicateDay(store, roster, "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Copied)
	assert.Equal(t, 1, report.Skipped)

	assert.Empty(t, store.Get("2026-03-03").AssignmentsByDepartment["barra"])
}

func TestDuplicateDay_InvalidSourceKey(t *testing.T) {
	store, _, roster := newTestEngine()

	_, _, err := scheduler.DuplicateDay(store, roster, "no-es-fecha")
	assert.Error(t, err)
}

func TestDuplicateWeek(t *testing.T) {
	store, _, roster := newTestEngine()
	weekKeys := scheduler.WeekKeys(mustParse(t, "2026-03-02"))

	require.NoError(t, store.Upsert("2026-03-02", "cocina", validAssignment("a1", "e1")))
	require.NoError(t, store.Upsert("2026-03-04", "barra", validAssignment("a2", "e2")))

	report, err := scheduler.DuplicateWeek(store, roster, weekKeys)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Copied)
	assert.Equal(t, 2, report.DaysWithCopies)

	// Cada día cae en la misma posición de la semana siguiente.
	assert.Len(t, store.Get("2026-03-09").AssignmentsByDepartment["cocina"], 1)
	assert.Len(t, store.Get("2026-03-11").AssignmentsByDepartment["barra"], 1)
	// Los días sin turnos del origen no crean entradas en el destino.
	assert.False(t, store.Has("2026-03-10"))
}

func TestDuplicateWeek_PartialConflicts(t *testing.T) {
	store, _, roster := newTestEngine()
	weekKeys := scheduler.WeekKeys(mustParse(t, "2026-03-02"))

	require.NoError(t, store.Upsert("2026-03-02", "cocina", validAssignment("a1", "e1")))
	require.NoError(t, store.Upsert("2026-03-02", "barra", validAssignment("a2", "e2")))
	// e1 ya tiene turno el lunes de la semana destino.
	require.NoError(t, store.Upsert("2026-03-09", "cocina", validAssignment("b1", "e1")))

	report, err := scheduler.DuplicateWeek(store, roster, weekKeys)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Copied)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.DaysWithCopies)
}

func TestNewAssignmentID_Unique(t *testing.T) {
	first := scheduler.NewAssignmentID("e1", "2026-03-02", "09:00")
	second := scheduler.NewAssignmentID("e1", "2026-03-02", "09:00")

	assert.NotEqual(t, first, second)
	assert.Contains(t, first, "e1-2026-03-02-0900")
}

func mustParse(t *testing.T, key string) time.Time {
	t.Helper()
	date, err := scheduler.ParseDateKey(key)
	require.NoError(t, err)
	return date
}
