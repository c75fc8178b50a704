package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/payledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/api/dto"
)

// PingFunc checks a backing dependency
type PingFunc func(ctx context.Context) error

// MirrorHandler handles the remote mirror HTTP requests
type MirrorHandler struct {
	mirror usecase.MirrorUseCase
	ping   PingFunc
	logger coreport.Logger
}

// NewMirrorHandler creates a new mirror handler instance; ping may be nil
func NewMirrorHandler(mirror usecase.MirrorUseCase, ping PingFunc, logger coreport.Logger) *MirrorHandler {
	return &MirrorHandler{
		mirror: mirror,
		ping:   ping,
		logger: logger,
	}
}

// Sync handles POST /sync
func (h *MirrorHandler) Sync(c *gin.Context) {
	var req entity.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	resp, err := h.mirror.Apply(c.Request.Context(), &req)
	if err != nil {
		writeError(c, h.logger, "mirror_sync", err)
		return
	}

	h.logger.Debug("Device snapshot applied", map[string]any{
		"device_id":    req.DeviceID,
		"transactions": len(resp.Transactions),
		"contacts":     len(resp.Contacts),
	})
	c.JSON(http.StatusOK, resp)
}

// Health handles GET /health
func (h *MirrorHandler) Health(c *gin.Context) {
	if h.ping == nil {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "unknown"})
		return
	}

	if err := h.ping(c.Request.Context()); err != nil {
		h.logger.Warn("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"})
}
