package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/table-reservations/internal/httpresp"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Health(c *gin.Context) {
	httpresp.OK(c, gin.H{"status": "ok"})
}

// Ready reports whether the store answers. It is 200 either way; the body
// carries the verdict.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	ready := h.store.Ping(ctx) == nil
	httpresp.OK(c, gin.H{"ready": ready})
}
