package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is a dependency the health check can probe
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Store     string    `json:"store,omitempty"`
}

type HealthHandler struct {
	serviceName  string
	version      string
	storeBackend string
	store        Pinger
}

// NewHealthHandler creates a health handler. A "memory" backend is reported as-is without probing.
func NewHealthHandler(serviceName, version, storeBackend string, store Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName:  serviceName,
		version:      version,
		storeBackend: storeBackend,
		store:        store,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	storeStatus := h.storeBackend
	if h.store != nil && h.storeBackend != "memory" {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.store.Ping(pingCtx); err != nil {
			storeStatus = "down"
		} else {
			storeStatus = "up"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Store:     storeStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
