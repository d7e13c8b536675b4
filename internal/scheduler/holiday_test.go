package scheduler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duber-parra/minominapro/backend/internal/domain"
	"github.com/duber-parra/minominapro/backend/internal/scheduler"
)

// ---- mock HolidayProvider ---------------------------------------------------

type mockHolidayProvider struct {
	getHolidays func(ctx context.Context, year int) ([]domain.Holiday, error)
}

func (m *mockHolidayProvider) GetHolidays(ctx context.Context, year int) ([]domain.Holiday, error) {
	return m.getHolidays(ctx, year)
}

var _ scheduler.HolidayProvider = (*mockHolidayProvider)(nil)

// ---- Holidays ---------------------------------------------------------------

func TestHolidays_EnsureYearsCachesAsynchronously(t *testing.T) {
	provider := &mockHolidayProvider{
		getHolidays: func(_ context.Context, year int) ([]domain.Holiday, error) {
			return []domain.Holiday{
				{Year: year, Month: 1, Day: 1},
				{Year: year, Month: 12, Day: 25},
			}, nil
		},
	}
	holidays := scheduler.NewHolidays(provider, time.Second)

	// Antes de consultar, la respuesta síncrona es "no festivo".
	newYear := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, holidays.IsHoliday(newYear))

	holidays.EnsureYears(2026, 2026)

	require.Eventually(t, func() bool {
		_, cached := holidays.CachedYear(2026)
		return cached
	}, time.Second, 5*time.Millisecond)

	assert.True(t, holidays.IsHoliday(newYear))
	assert.False(t, holidays.IsHoliday(time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)))

	dates, cached := holidays.CachedYear(2026)
	require.True(t, cached)
	assert.ElementsMatch(t, []string{"2026-01-01", "2026-12-25"}, dates)
}

func TestHolidays_ProviderFailureIsMemoizedAsEmptyYear(t *testing.T) {
	calls := 0
	provider := &mockHolidayProvider{
		getHolidays: func(_ context.Context, _ int) ([]domain.Holiday, error) {
			calls++
			return nil, errors.New("proveedor caído")
		},
	}
	holidays := scheduler.NewHolidays(provider, time.Second)

	holidays.EnsureYears(2026, 2026)
	require.Eventually(t, func() bool {
		_, cached := holidays.CachedYear(2026)
		return cached
	}, time.Second, 5*time.Millisecond)

	// El fallo se degrada a "año sin festivos" y no se reintenta.
	assert.False(t, holidays.IsHoliday(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)))
	holidays.EnsureYears(2026, 2026)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, calls)
}

func TestHolidays_InvalidDatesFromProviderAreDiscarded(t *testing.T) {
	provider := &mockHolidayProvider{
		getHolidays: func(_ context.Context, _ int) ([]domain.Holiday, error) {
			return []domain.Holiday{
				{Month: 1, Day: 1},
				{Month: 13, Day: 1},
				{Month: 2, Day: 40},
			}, nil
		},
	}
	holidays := scheduler.NewHolidays(provider, time.Second)

	holidays.EnsureYears(2026, 2026)
	require.Eventually(t, func() bool {
		_, cached := holidays.CachedYear(2026)
		return cached
	}, time.Second, 5*time.Millisecond)

	dates, _ := holidays.CachedYear(2026)
	assert.Equal(t, []string{"2026-01-01"}, dates)
}

// ---- HTTPHolidayProvider ----------------------------------------------------

func TestHTTPHolidayProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2026/CO", r.URL.Path)
		fmt.Fprint(w, `[{"year":2026,"month":1,"day":1}]`)
	}))
	defer srv.Close()

	provider := scheduler.NewHTTPHolidayProvider(srv.URL, "CO", time.Second)
	holidays, err := provider.GetHolidays(context.Background(), 2026)
	require.NoError(t, err)

	require.Len(t, holidays, 1)
	assert.Equal(t, 1, holidays[0].Month)
	assert.Equal(t, 1, holidays[0].Day)
}

func TestHTTPHolidayProvider_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	provider := scheduler.NewHTTPHolidayProvider(srv.URL, "CO", time.Second)
	_, err := provider.GetHolidays(context.Background(), 2026)
	assert.Error(t, err)
}

func TestHTTPHolidayProvider_NoURLConfigured(t *testing.T) {
	provider := scheduler.NewHTTPHolidayProvider("", "CO", time.Second)
	_, err := provider.GetHolidays(context.Background(), 2026)
	assert.Error(t, err)
}
