package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/zhaosongzhu/financial-app-backend/internal/api/middleware"
)

// HealthHandler reports whether the external-service clients initialized at
// process start. Initialization failures do not crash the process; affected
// routes degrade to 500s and this endpoint surfaces the reason.
type HealthHandler struct {
	storeReady bool
	aiReady    bool
	log        zerolog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(storeReady, aiReady bool, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		storeReady: storeReady,
		aiReady:    aiReady,
		log:        log,
	}
}

// Root handles GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Hello, World!"))
}

// Healthcheck handles GET /healthcheck
func (h *HealthHandler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	switch {
	case !h.storeReady:
		middleware.WriteError(w, http.StatusInternalServerError, "Document store client is not initialized")
	case !h.aiReady:
		middleware.WriteError(w, http.StatusInternalServerError, "AI inference client is not initialized")
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("All services are up and running"))
	}
}
