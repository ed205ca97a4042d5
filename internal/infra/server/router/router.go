// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/signals/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/signals/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	signalController     *controller.SignalController
	rollupController     *controller.RollupController
	categoryController   *controller.CategoryController
	creditCardController *controller.CreditCardController
	investmentController *controller.InvestmentController
	budgetController     *controller.BudgetController
	entryController      *controller.EntryController
	signalRateLimiter    *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	signalController *controller.SignalController,
	rollupController *controller.RollupController,
	categoryController *controller.CategoryController,
	creditCardController *controller.CreditCardController,
	investmentController *controller.InvestmentController,
	budgetController *controller.BudgetController,
	entryController *controller.EntryController,
	signalRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		signalController:     signalController,
		rollupController:     rollupController,
		categoryController:   categoryController,
		creditCardController: creditCardController,
		investmentController: investmentController,
		budgetController:     budgetController,
		entryController:      entryController,
		signalRateLimiter:    signalRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupRollupRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupRollupRoutes exposes the rollup contracts under /api so another instance can
// use this one as its upstream.
func (r *Router) setupRollupRoutes() {
	if r.rollupController == nil || r.authMiddleware == nil {
		return
	}

	api := r.engine.Group("/api")
	api.Use(r.authMiddleware.Authenticate())
	{
		api.GET("/alerts/budget", r.rollupController.BudgetAlerts)
		api.GET("/alerts/due-dates", r.rollupController.DueDateAlerts)
		api.GET("/analysis/trends", r.rollupController.Trends)
		api.GET("/reports/by-category", r.rollupController.CategoryReport)
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	if r.authMiddleware == nil {
		return
	}

	// API v1 group, every route requires authentication
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())

	// Signal routes
	if r.signalController != nil {
		signals := v1.Group("/signals")
		if r.signalRateLimiter != nil {
			signals.Use(r.signalRateLimiter.Middleware())
		}
		{
			signals.GET("/alerts", r.signalController.Alerts)
			signals.POST("/alerts/:id/dismiss", r.signalController.Dismiss)
			signals.GET("/trends", r.signalController.Trends)
			signals.GET("/reports", r.signalController.Reports)
		}
	}

	// Category routes
	if r.categoryController != nil {
		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.PATCH("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}
	}

	// Credit card routes
	if r.creditCardController != nil {
		cards := v1.Group("/credit-cards")
		{
			cards.GET("", r.creditCardController.List)
			cards.POST("", r.creditCardController.Create)
			cards.PATCH("/:id", r.creditCardController.Update)
			cards.DELETE("/:id", r.creditCardController.Delete)
		}
	}

	// Investment routes
	if r.investmentController != nil {
		investments := v1.Group("/investments")
		{
			investments.GET("", r.investmentController.List)
			investments.POST("", r.investmentController.Create)
			investments.PATCH("/:id", r.investmentController.Update)
			investments.DELETE("/:id", r.investmentController.Delete)
		}
	}

	// Budget routes
	if r.budgetController != nil {
		budgets := v1.Group("/budgets")
		{
			budgets.GET("", r.budgetController.List)
			budgets.PUT("", r.budgetController.Upsert)
			budgets.DELETE("/:id", r.budgetController.Delete)
		}
	}

	// Entry routes
	if r.entryController != nil {
		entries := v1.Group("/entries")
		{
			entries.GET("", r.entryController.List)
			entries.POST("", r.entryController.Create)
			entries.POST("/:id/pay", r.entryController.Pay)
			entries.DELETE("/:id", r.entryController.Delete)
		}
	}
}
