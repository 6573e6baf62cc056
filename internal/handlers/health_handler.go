// internal/handlers/health_handler.go
package handlers

import (
	"context"
	"net/http"

	"rocketreading/internal/config"
	"rocketreading/internal/middleware"
	"rocketreading/internal/model"
	"rocketreading/internal/webutil"
)

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		webutil.HandleError(w, middleware.GetLogger(r.Context()), err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.HealthResponse{Status: "ok", Version: config.AppVersion})
}
