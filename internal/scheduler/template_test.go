package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duber-parra/minominapro/backend/internal/domain"
	"github.com/duber-parra/minominapro/backend/internal/scheduler"
)

func TestTemplateManager_ExtractDaily(t *testing.T) {
	store, templates, _ := newTestEngine()
	require.NoError(t, store.Upsert("2026-03-02", "cocina", validAssignment("a1", "e1")))
	require.NoError(t, store.Upsert("2026-03-02", "barra", validAssignment("a2", "e2")))

	template, err := templates.Extract(store, domain.TemplateDaily, "Lunes típico", "loc1", []string{"2026-03-02"}, []string{"cocina", "barra"})
	require.NoError(t, err)

	assert.NotEmpty(t, template.ID)
	assert.Equal(t, domain.TemplateDaily, template.Type)
	require.Len(t, template.Days, 1)

	reduced := template.Days[0].AssignmentsByDepartment["cocina"]
	require.Len(t, reduced, 1)
	// El turno se reduce: referencia por ID de empleado y sin ID de instancia.
	assert.Equal(t, "e1", reduced[0].Employee.ID)
	assert.Equal(t, "09:00", reduced[0].StartTime)

	stored, err := templates.Get(template.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lunes típico", stored.Name)
}

func TestTemplateManager_ExtractEmptyRange(t *testing.T) {
	store, templates, _ := newTestEngine()

	_, err := templates.Extract(store, domain.TemplateDaily, "Vacía", "loc1", []string{"2026-03-02"}, []string{"cocina"})
	assert.ErrorIs(t, err, domain.ErrEmptyTemplate)
	assert.Empty(t, templates.All())
}

func TestTemplateManager_ExtractScopeSizes(t *testing.T) {
	store, templates, _ := newTestEngine()

	_, err := templates.Extract(store, domain.TemplateDaily, "x", "loc1", []string{"2026-03-02", "2026-03-03"}, nil)
	assert.Error(t, err)

	_, err = templates.Extract(store, domain.TemplateWeekly, "x", "loc1", []string{"2026-03-02"}, nil)
	assert.Error(t, err)
}

func TestTemplateManager_ApplyDaily(t *testing.T) {
	store, templates, roster := newTestEngine()
	require.NoError(t, store.Upsert("2026-03-02", "cocina", validAssignment("a1", "e1")))

	template, err := templates.Extract(store, domain.TemplateDaily, "Lunes típico", "loc1", []string{"2026-03-02"}, []string{"cocina"})
	require.NoError(t, err)

	report, err := templates.Apply(template, store, roster, []string{"2026-04-06"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Applied)
	assert.Zero(t, report.Skipped)
	assert.Zero(t, report.Placeholders)

	applied := store.Get("2026-04-06").AssignmentsByDepartment["cocina"]
	require.Len(t, applied, 1)
	assert.Equal(t, "e1", applied[0].EmployeeID)
	assert.NotEqual(t, "a1", applied[0].ID)
}

func TestTemplateManager_ApplyWeeklyMapsByPosition(t *testing.T) {
	store, templates, roster := newTestEngine()
	sourceWeek := scheduler.WeekKeys(mustParse(t, "2026-03-02"))
	require.NoError(t, store.Upsert(sourceWeek[2], "cocina", validAssignment("a1", "e1"))) // miércoles

	template, err := templates.Extract(store, domain.TemplateWeekly, "Semana base", "loc1", sourceWeek, []string{"cocina"})
	require.NoError(t, err)

	targetWeek := scheduler.WeekKeys(mustParse(t, "2026-05-04"))
	report, err := templates.Apply(template, store, roster, targetWeek)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Applied)
	// El turno del miércoles cae en el miércoles de la semana destino.
	assert.Len(t, store.Get("2026-05-06").AssignmentsByDepartment["cocina"], 1)
	assert.False(t, store.Has("2026-05-04"))
}

func TestTemplateManager_ApplyConflictsAreSkipped(t *testing.T) {
	store, templates, roster := newTestEngine()
	require.NoError(t, store.Upsert("2026-03-02", "cocina", validAssignment("a1", "e1")))

	template, err := templates.Extract(store, domain.TemplateDaily, "Lunes típico", "loc1", []string{"2026-03-02"}, []string{"cocina"})
	require.NoError(t, err)

	// e1 ya tiene turno en el destino.
	require.NoError(t, store.Upsert("2026-04-06", "barra", validAssignment("b1", "e1")))

	report, err := templates.Apply(template, store, roster, []string{"2026-04-06"})
	require.NoError(t, err)
	assert.Zero(t, report.Applied)
	assert.Equal(t, 1, report.Skipped)
}

func TestTemplateManager_ApplyCountsPlaceholders(t *testing.T) {
	store, templates, roster := newTestEngine()
	require.NoError(t, store.Upsert("2026-03-02", "cocina", validAssignment("a1", "e1")))

	template, err := templates.Extract(store, domain.TemplateDaily, "Lunes típico", "loc1", []string{"2026-03-02"}, []string{"cocina"})
	require.NoError(t, err)

	// El empleado desaparece después de crear la plantilla: el turno entra
	// igual pero se reporta como marcador de posición.
	require.NoError(t, roster.DeleteEmployee("e1"))

	report, err := templates.Apply(template, store, roster, []string{"2026-04-06"})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Applied)
	assert.Equal(t, 1, report.Placeholders)
}

func TestTemplateManager_ApplyScopeMismatch(t *testing.T) {
	store, templates, roster := newTestEngine()
	require.NoError(t, store.Upsert("2026-03-02", "cocina", validAssignment("a1", "e1")))

	template, err := templates.Extract(store, domain.TemplateDaily, "Lunes típico", "loc1", []string{"2026-03-02"}, []string{"cocina"})
	require.NoError(t, err)

	_, err = templates.Apply(template, store, roster, []string{"2026-04-06", "2026-04-07"})
	assert.Error(t, err)
}

func TestTemplateManager_Delete(t *testing.T) {
	store, templates, _ := newTestEngine()
	require.NoError(t, store.Upsert("2026-03-02", "cocina", validAssignment("a1", "e1")))

	template, err := templates.Extract(store, domain.TemplateDaily, "Lunes típico", "loc1", []string{"2026-03-02"}, []string{"cocina"})
	require.NoError(t, err)

	require.NoError(t, templates.Delete(template.ID))
	_, err = templates.Get(template.ID)
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)

	assert.ErrorIs(t, templates.Delete(template.ID), domain.ErrTemplateNotFound)
}
