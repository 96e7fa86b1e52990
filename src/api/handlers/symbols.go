package handlers

import (
	"context"
	"net/http"
	"time"
)

func (h *Handler) GetSymbols(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	symbols, err := h.Controller.GetSymbols(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, symbols, http.StatusOK)
}
