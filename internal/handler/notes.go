package handler

import "net/http"

func (h *Handler) GetNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.repository.LoadNotes()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "notas obtenidas", map[string]string{"notes": notes})
}

func (h *Handler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Notes string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.SaveNotes(req.Notes); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "notas guardadas", nil)
}
