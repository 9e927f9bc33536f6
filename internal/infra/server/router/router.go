// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/centavo/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	accountController     *controller.AccountController
	transactionController *controller.TransactionController
	futureEntryController *controller.FutureEntryController
	installmentController *controller.InstallmentController
	dashboardController   *controller.DashboardController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	accountController *controller.AccountController,
	transactionController *controller.TransactionController,
	futureEntryController *controller.FutureEntryController,
	installmentController *controller.InstallmentController,
	dashboardController *controller.DashboardController,
) *Router {
	return &Router{
		healthController:      healthController,
		accountController:     accountController,
		transactionController: transactionController,
		futureEntryController: futureEntryController,
		installmentController: installmentController,
		dashboardController:   dashboardController,
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
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Account routes
		if r.accountController != nil {
			accounts := v1.Group("/accounts")
			{
				accounts.GET("", r.accountController.List)
				accounts.POST("", r.accountController.Create)
				accounts.PUT("/:id", r.accountController.Update)
				accounts.DELETE("/:id", r.accountController.Delete)
			}
		}

		// Transaction routes
		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Future entry routes
		if r.futureEntryController != nil {
			futureEntries := v1.Group("/future-entries")
			{
				futureEntries.GET("", r.futureEntryController.List)
				futureEntries.POST("", r.futureEntryController.Create)
				futureEntries.POST("/:id/pay", r.futureEntryController.Pay)
				futureEntries.DELETE("/:id", r.futureEntryController.Delete)
			}
		}

		// Installment purchase routes
		if r.installmentController != nil {
			purchases := v1.Group("/installment-purchases")
			{
				purchases.GET("", r.installmentController.List)
				purchases.POST("", r.installmentController.Create)
				purchases.DELETE("/:id", r.installmentController.Delete)
			}
		}

		// Dashboard routes
		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/summary", r.dashboardController.GetSummary)
				dashboard.GET("/timeline", r.dashboardController.GetTimeline)
				dashboard.GET("/category-grid", r.dashboardController.GetCategoryGrid)
				dashboard.GET("/net-worth-history", r.dashboardController.GetNetWorthHistory)
				dashboard.GET("/card-statement/:id", r.dashboardController.GetCardStatement)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
