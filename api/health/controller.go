// Package health exposes liveness/readiness probes and a full health
// report with a database ping.
package health

import (
	"database/sql"
	"net/http"
	"runtime"
	"time"

	"shopapi/config"

	"github.com/gin-gonic/gin"
)

// Controller health check controller.
type Controller struct {
	config    *config.Config
	db        *sql.DB
	startTime time.Time
}

// NewController creates the health controller. db may be nil when the
// application runs on the in-memory store.
func NewController(cfg *config.Config, db *sql.DB) *Controller {
	return &Controller{
		config:    cfg,
		db:        db,
		startTime: time.Now(),
	}
}

// RegisterRoutes registers the health endpoints.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.Health)
	router.GET("/health/live", c.Liveness)
	router.GET("/health/ready", c.Readiness)
}

// HealthResponse full health report.
type HealthResponse struct {
	Status    string           `json:"status"`
	Version   string           `json:"version"`
	Uptime    string           `json:"uptime"`
	Timestamp string           `json:"timestamp"`
	Checks    map[string]Check `json:"checks,omitempty"`
	System    *SystemInfo      `json:"system,omitempty"`
}

// Check one health check item.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// SystemInfo runtime details, development mode only.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
}

// Health reports overall health including a database ping.
func (c *Controller) Health(ctx *gin.Context) {
	checks := make(map[string]Check)
	overallStatus := "healthy"

	if c.db != nil {
		dbCheck := c.checkDatabase()
		checks["database"] = dbCheck
		if dbCheck.Status != "healthy" {
			overallStatus = "unhealthy"
		}
	}

	resp := HealthResponse{
		Status:    overallStatus,
		Version:   c.config.App.Version,
		Uptime:    time.Since(c.startTime).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	}

	if c.config.IsDevelopment() {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)
		resp.System = &SystemInfo{
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
			MemAlloc:     memStats.Alloc,
		}
	}

	statusCode := http.StatusOK
	if overallStatus == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}
	ctx.JSON(statusCode, resp)
}

// Liveness liveness probe.
func (c *Controller) Liveness(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness readiness probe: ready once the database answers a ping.
func (c *Controller) Readiness(ctx *gin.Context) {
	if c.db != nil {
		if err := c.db.Ping(); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not_ready",
				"message": "database not available",
			})
			return
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (c *Controller) checkDatabase() Check {
	start := time.Now()
	err := c.db.Ping()
	latency := time.Since(start)

	if err != nil {
		return Check{Status: "unhealthy", Message: err.Error(), Latency: latency.String()}
	}
	return Check{Status: "healthy", Latency: latency.String()}
}
