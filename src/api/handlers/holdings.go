package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"tracker/src/schemas"
	"tracker/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAllHoldings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	holdings, err := h.Controller.GetAllHoldings(ctx)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	if len(holdings) == 0 {
		h.HandleErrors(w, r, utils.NotFound("No holdings found"))
		return
	}

	h.respond(w, r, holdings, http.StatusOK)
}

func (h *Handler) GetHoldingByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, r, utils.BadRequest("holding id must be an integer"))
		return
	}

	holding, err := h.Controller.GetHoldingByID(ctx, id)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, holding, http.StatusOK)
}

func (h *Handler) BuyAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.BuyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, r, utils.BadRequest("invalid request body"))
		return
	}
	if req.AssetID <= 0 {
		h.HandleErrors(w, r, utils.BadRequest("asset_id must be a positive integer"))
		return
	}

	res, err := h.Controller.BuyAsset(ctx, &req)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, res, http.StatusCreated)
}

func (h *Handler) SellHolding(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.SellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, r, utils.BadRequest("invalid request body"))
		return
	}
	if req.HoldingID <= 0 {
		h.HandleErrors(w, r, utils.BadRequest("holding_id must be a positive integer"))
		return
	}

	res, err := h.Controller.SellHolding(ctx, &req)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, res, http.StatusOK)
}
