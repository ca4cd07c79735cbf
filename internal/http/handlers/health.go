package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/contacts-be/internal/http/respond"
	"github.com/hongminglow/contacts-be/internal/storage"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports uptime and database reachability.
type HealthHandler struct {
	pinger    storage.Pinger
	startedAt time.Time
}

// NewHealthHandler creates a health endpoint handler.
func NewHealthHandler(pinger storage.Pinger, startedAt time.Time) *HealthHandler {
	return &HealthHandler{pinger: pinger, startedAt: startedAt}
}

// Register wires the handler into the router.
func (h *HealthHandler) Register(r chi.Router) {
	r.Get("/health", h.handle)
}

func (h *HealthHandler) handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		log.Printf("health check: database ping failed: %v", err)
		respond.Error(w, http.StatusInternalServerError, "error connecting to the database")
		return
	}

	respond.JSON(w, http.StatusOK, "ok", map[string]string{
		"uptime": time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}
