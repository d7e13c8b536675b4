package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/duber-parra/minominapro/backend/internal/domain"
)

// HolidayProvider es el colaborador externo de festivos; puede ser lento o
// fallar, el núcleo nunca propaga sus errores.
type HolidayProvider interface {
	GetHolidays(ctx context.Context, year int) ([]domain.Holiday, error)
}

// HTTPHolidayProvider consulta GET {baseURL}/{año}/{país} esperando un arreglo
// JSON de objetos {year, month, day}.
type HTTPHolidayProvider struct {
	baseURL string
	country string
	client  *http.Client
}

func NewHTTPHolidayProvider(baseURL, country string, timeout time.Duration) *HTTPHolidayProvider {
	return &HTTPHolidayProvider{
		baseURL: baseURL,
		country: country,
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *HTTPHolidayProvider) GetHolidays(ctx context.Context, year int) ([]domain.Holiday, error) {
	if p.baseURL == "" {
		return nil, fmt.Errorf("no hay URL configurada para el proveedor de festivos")
	}

	url := fmt.Sprintf("%s/%d/%s", p.baseURL, year, p.country)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("el proveedor de festivos respondió %d", resp.StatusCode)
	}

	var holidays []domain.Holiday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, err
	}
	return holidays, nil
}

// Holidays es la caché de festivos por año. Es una caché explícita propiedad
// de la instancia, no estado global de módulo, para que cada proceso (y cada
// prueba) arranque limpio.
type Holidays struct {
	provider     HolidayProvider
	fetchTimeout time.Duration

	mu       sync.RWMutex
	years    map[int]map[string]struct{} // año -> claves de fecha festivas
	fetching map[int]bool
}

func NewHolidays(provider HolidayProvider, fetchTimeout time.Duration) *Holidays {
	return &Holidays{
		provider:     provider,
		fetchTimeout: fetchTimeout,
		years:        make(map[int]map[string]struct{}),
		fetching:     make(map[int]bool),
	}
}

// EnsureYears lanza, sin bloquear, una consulta por cada año del rango que
// aún no esté en caché. Un fallo del proveedor (error, respuesta malformada)
// se degrada a "sin festivos conocidos para ese año" y queda memorizado por
// la vida del proceso.
func (h *Holidays) EnsureYears(startYear, endYear int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for year := startYear; year <= endYear; year++ {
		if _, cached := h.years[year]; cached || h.fetching[year] {
			continue
		}
		h.fetching[year] = true
		go h.fetch(year)
	}
}

func (h *Holidays) fetch(year int) {
	ctx, cancel := context.WithTimeout(context.Background(), h.fetchTimeout)
	defer cancel()

	dates := make(map[string]struct{})
	holidays, err := h.provider.GetHolidays(ctx, year)
	if err != nil {
		slog.Warn("no se pudieron obtener los festivos, se asume un año sin festivos", "year", year, "error", err)
	} else {
		for _, holiday := range holidays {
			if holiday.Month < 1 || holiday.Month > 12 || holiday.Day < 1 || holiday.Day > 31 {
				continue
			}
			date := time.Date(year, time.Month(holiday.Month), holiday.Day, 0, 0, 0, 0, time.UTC)
			dates[FormatDateKey(date)] = struct{}{}
		}
	}

	h.mu.Lock()
	h.years[year] = dates
	delete(h.fetching, year)
	h.mu.Unlock()
}

// IsHoliday responde de forma síncrona; mientras la caché del año no esté
// poblada devuelve false en lugar de bloquear la operación en curso.
func (h *Holidays) IsHoliday(date time.Time) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	dates, cached := h.years[date.Year()]
	if !cached {
		return false
	}
	_, isHoliday := dates[FormatDateKey(date)]
	return isHoliday
}

// CachedYear devuelve las fechas festivas conocidas del año, ordenables por
// el llamador, y si el año ya fue consultado.
func (h *Holidays) CachedYear(year int) ([]string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	dates, cached := h.years[year]
	if !cached {
		return nil, false
	}
	keys := make([]string, 0, len(dates))
	for key := range dates {
		keys = append(keys, key)
	}
	return keys, true
}
