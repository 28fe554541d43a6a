package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func(ctx context.Context) error
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func(ctx context.Context) error) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
	}
}

// Check handles GET /health requests. It answers 503 when the database is unreachable.
func (h *HealthController) Check(c *gin.Context) {
	status := http.StatusOK
	response := HealthResponse{
		Status:    "ok",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if h.dbHealthChecker == nil || h.dbHealthChecker(c.Request.Context()) != nil {
		status = http.StatusServiceUnavailable
		response.Status = "degraded"
		response.Database = "disconnected"
	}

	c.JSON(status, response)
}
