package handlers

import (
	"context"
	"net/http"
	"time"
)

func (h *Handler) GetPortfolioSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	summary, err := h.Controller.GetPortfolioSummary(ctx)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, summary, http.StatusOK)
}

func (h *Handler) GetPortfolioReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	report, err := h.Controller.GetPortfolioReport(ctx)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report))
}
