// Package api wires controllers and middleware into the gin engine.
package api

import (
	"shopapi/api/health"
	"shopapi/api/item"
	"shopapi/api/member"
	"shopapi/api/middleware"
	"shopapi/api/order"
	"shopapi/config"

	"github.com/gin-gonic/gin"
)

// Router route configuration.
type Router struct {
	engine           *gin.Engine
	config           *config.Config
	healthController *health.Controller
	memberController *member.Controller
	itemController   *item.Controller
	orderController  *order.Controller
}

// NewRouter creates the engine with the middleware chain installed.
func NewRouter(
	cfg *config.Config,
	healthController *health.Controller,
	memberController *member.Controller,
	itemController *item.Controller,
	orderController *order.Controller,
) *Router {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Order matters: the request id must exist before anything logs.
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logging())
	engine.Use(middleware.CORS(&cfg.CORS))
	engine.Use(middleware.RateLimit(&cfg.Server.RateLimit))

	return &Router{
		engine:           engine,
		config:           cfg,
		healthController: healthController,
		memberController: memberController,
		itemController:   itemController,
		orderController:  orderController,
	}
}

// SetupRoutes registers all routes under /api/v1.
func (r *Router) SetupRoutes() {
	apiGroup := r.engine.Group("/api/v1")
	{
		r.healthController.RegisterRoutes(apiGroup)
		r.memberController.RegisterRoutes(apiGroup)
		r.itemController.RegisterRoutes(apiGroup)
		r.orderController.RegisterRoutes(apiGroup)
	}

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/api/v1/health",
		})
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
