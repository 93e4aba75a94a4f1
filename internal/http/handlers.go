package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quotientlabs/contfrac/internal/logging"
	"github.com/quotientlabs/contfrac/internal/middleware"
	"github.com/quotientlabs/contfrac/internal/monitoring"
	"github.com/quotientlabs/contfrac/internal/service"
	"github.com/quotientlabs/contfrac/internal/types"
)

// Handlers bundles the dependencies of the HTTP endpoints
type Handlers struct {
	registry *service.Registry
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// NewHandlers creates the handler set
func NewHandlers(registry *service.Registry, logger *logging.Logger, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		registry: registry,
		logger:   logger,
		metrics:  metrics,
	}
}

// Root describes the service
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "contfrac",
		"version": "1.0",
		"endpoints": []string{
			"/health",
			"/services",
			"/services/execute",
			"/metrics",
		},
	})
}

// Health reports service health
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"services": h.registry.Stats(),
	})
}

// ListServices lists all registered services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var appCtx *types.Context
	if rid, ok := middleware.GetRequestID(c); ok {
		appCtx = &types.Context{RequestID: &rid}
	}

	timer := monitoring.NewTimer(h.metrics, req.ToolID)
	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		timer.Stop("error")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if result.Success {
		timer.Stop("ok")
	} else {
		timer.Stop("failure")
		h.metrics.RecordToolError(req.ToolID)
		h.logger.Debug("tool execution failed",
			zap.String("tool", req.ToolID),
			zap.Stringp("error", result.Error),
		)
	}

	c.JSON(http.StatusOK, result)
}
