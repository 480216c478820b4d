package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tracker/src/schemas"
	"tracker/src/utils"
)

func (h *Handler) PostToken(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var tokenRequestCreds = new(schemas.TokenRequest)

	err := json.NewDecoder(r.Body).Decode(tokenRequestCreds)
	if err != nil {
		h.HandleErrors(w, r, utils.BadRequest("invalid request body"))
		return
	}

	tokenResponse, err := h.Controller.IssueToken(ctx, tokenRequestCreds.Username, tokenRequestCreds.Password)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, tokenResponse, http.StatusOK)
}
