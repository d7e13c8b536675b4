package handler

import (
	"net/http"
	"slices"
	"strconv"
)

// GetHolidays dispara la consulta de los años pedidos (sin bloquear) y
// devuelve lo que haya en caché. Un año aún no consultado aparece con
// cached=false y sin fechas; el cliente puede volver a preguntar.
func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	fromYear, err := strconv.Atoi(r.URL.Query().Get("from"))
	if err != nil {
		h.errorResponse(w, r, "el parámetro from debe ser un año")
		return
	}
	toYear, err := strconv.Atoi(r.URL.Query().Get("to"))
	if err != nil {
		h.errorResponse(w, r, "el parámetro to debe ser un año")
		return
	}
	if toYear < fromYear {
		h.errorResponse(w, r, "el parámetro to no puede ser menor que from")
		return
	}

	h.holidays.EnsureYears(fromYear, toYear)

	years := make([]map[string]any, 0, toYear-fromYear+1)
	for year := fromYear; year <= toYear; year++ {
		dates, cached := h.holidays.CachedYear(year)
		slices.Sort(dates)
		years = append(years, map[string]any{
			"year":   year,
			"cached": cached,
			"dates":  dates,
		})
	}

	h.successResponse(w, r, "festivos obtenidos", years)
}
