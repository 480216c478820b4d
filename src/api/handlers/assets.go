package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"tracker/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAllAssets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assets, err := h.Controller.GetAllAssets(ctx)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, assets, http.StatusOK)
}

func (h *Handler) GetAssetByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, r, utils.BadRequest("asset id must be an integer"))
		return
	}

	asset, err := h.Controller.GetAssetByID(ctx, id)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, asset, http.StatusOK)
}
