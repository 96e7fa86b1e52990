package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"itradebook/src/schemas"
	"itradebook/src/utils"
)

func (h *Handler) Rebuild(w http.ResponseWriter, r *http.Request) {
	// A multi-month rebuild walks every date sequentially, so the budget
	// is deliberately generous.
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Minute)
	defer cancel()

	var req schemas.RebuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	summary, err := h.Controller.Rebuild(ctx, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, summary, http.StatusOK)
}
