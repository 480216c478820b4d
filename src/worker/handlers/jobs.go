package handlers

import (
	"net/http"
)

// RunPriceFeed triggers a single price perturbation outside the schedule.
func (h *Handler) RunPriceFeed(w http.ResponseWriter, r *http.Request) {
	if err := h.Controller.RunPriceFeed(r.Context()); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, map[string]string{"message": "price feed executed"}, http.StatusOK)
}

// RunNetWorthSnapshot triggers today's net-worth snapshot immediately.
func (h *Handler) RunNetWorthSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.Controller.SnapshotNetWorth(r.Context()); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, map[string]string{"message": "net worth snapshot executed"}, http.StatusOK)
}
