package handlers

import (
	"context"
	"net/http"
	"time"
)

func (h *Handler) GetAllTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	transactions, err := h.Controller.GetAllTransactions(ctx)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, transactions, http.StatusOK)
}

func (h *Handler) GetSettlement(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	settlement, err := h.Controller.GetSettlement(ctx)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, settlement, http.StatusOK)
}

func (h *Handler) GetNetWorthHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	snapshots, err := h.Controller.GetNetWorthHistory(ctx)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, snapshots, http.StatusOK)
}
