package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker    func() bool
	cacheHealthChecker func() bool
	rollupSource       string
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string `json:"status"`
	Database     string `json:"database"`
	Cache        string `json:"cache"`
	RollupSource string `json:"rollup_source"`
	Timestamp    string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// A nil cache checker reports the in-memory dismissal store.
func NewHealthController(dbHealthChecker, cacheHealthChecker func() bool, rollupSource string) *HealthController {
	return &HealthController{
		dbHealthChecker:    dbHealthChecker,
		cacheHealthChecker: cacheHealthChecker,
		rollupSource:       rollupSource,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	status := "ok"

	dbStatus := "disconnected"
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
	} else {
		status = "degraded"
	}

	cacheStatus := "memory"
	if h.cacheHealthChecker != nil {
		cacheStatus = "connected"
		if !h.cacheHealthChecker() {
			cacheStatus = "disconnected"
			status = "degraded"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:       status,
		Database:     dbStatus,
		Cache:        cacheStatus,
		RollupSource: h.rollupSource,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}
