package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"tracker/src/api/controllers"
	"tracker/src/config"
	"tracker/src/database"
	"tracker/src/services"
	"tracker/src/utils"
	redis_utils "tracker/src/utils/redis"

	"github.com/jackc/pgx/v5"
)

type Handler struct {
	Controller controllers.IController
}

func NewHandler(cfg *config.Config) (*Handler, error) {
	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	// Redis is optional; the API works without the summary cache
	var cache *redis_utils.RedisHandler
	if cfg.Databases.Redis.Host != "" {
		cache, err = redis_utils.NewRedisHandler(cfg)
		if err != nil {
			return nil, err
		}
	}

	controller := controllers.NewController(db, cache, cfg)
	return &Handler{Controller: controller}, nil
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// HandleErrors maps service errors to status codes. Storage failures log
// their detail and surface only a generic message.
func (h *Handler) HandleErrors(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr *utils.HTTPError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		h.respond(w, nil, map[string]string{"error": "Request timed out"}, http.StatusGatewayTimeout)
	case errors.As(err, &httpErr):
		h.respond(w, nil, map[string]string{"error": httpErr.Message}, httpErr.Code)
	case errors.Is(err, services.ErrAssetNotFound):
		h.respond(w, nil, map[string]string{"error": "Asset not found"}, http.StatusNotFound)
	case errors.Is(err, services.ErrHoldingNotFound):
		h.respond(w, nil, map[string]string{"error": "Holding not found"}, http.StatusNotFound)
	case errors.Is(err, services.ErrInsufficientFunds):
		h.respond(w, nil, map[string]string{"error": "Insufficient funds"}, http.StatusBadRequest)
	case errors.Is(err, services.ErrInvalidQuantity):
		h.respond(w, nil, map[string]string{"error": "Invalid quantity"}, http.StatusBadRequest)
	case errors.Is(err, pgx.ErrNoRows):
		h.respond(w, nil, map[string]string{"error": "Not found"}, http.StatusNotFound)
	case err != nil:
		utils.LoggerFromContext(r.Context()).Errorf("internal error on %s %s: %v", r.Method, r.URL.Path, err)
		h.respond(w, nil, map[string]string{"error": "Internal server error"}, http.StatusInternalServerError)
	default:
		h.respond(w, nil, map[string]string{"error": "Unhandled error"}, http.StatusInternalServerError)
	}
}

func Healthcheck(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		fmt.Fprintf(w, "Im alive!")
	} else {
		fmt.Fprintf(w, "Method not available: %s", r.Method)
	}
}
