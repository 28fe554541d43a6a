// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/bookkeeper/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/bookkeeper/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	expenseController *controller.ExpenseController
	incomeController  *controller.IncomeController
	walletController  *controller.WalletController
	lookupController  *controller.LookupController
	summaryController *controller.SummaryController
	authMiddleware    *middleware.AuthMiddleware
	gate              middleware.SlotAcquirer
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	expenseController *controller.ExpenseController,
	incomeController *controller.IncomeController,
	walletController *controller.WalletController,
	lookupController *controller.LookupController,
	summaryController *controller.SummaryController,
	authMiddleware *middleware.AuthMiddleware,
	gate middleware.SlotAcquirer,
) *Router {
	return &Router{
		healthController:  healthController,
		expenseController: expenseController,
		incomeController:  incomeController,
		walletController:  walletController,
		lookupController:  lookupController,
		summaryController: summaryController,
		authMiddleware:    authMiddleware,
		gate:              gate,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.Trace())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes registers the ledger routes. Every route needs a valid
// bearer token and a free storage slot.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate(), middleware.ConnectionGate(r.gate))

	expenses := v1.Group("/expenses")
	{
		expenses.GET("", r.expenseController.List)
		expenses.POST("", r.expenseController.Create)
		expenses.GET("/latest", r.expenseController.Latest)
		expenses.GET("/:id", r.expenseController.Get)
		expenses.PUT("/:id", r.expenseController.Update)
		expenses.DELETE("/:id", r.expenseController.Delete)
	}

	incomes := v1.Group("/incomes")
	{
		incomes.GET("", r.incomeController.List)
		incomes.POST("", r.incomeController.Create)
		incomes.GET("/latest", r.incomeController.Latest)
		incomes.GET("/:id", r.incomeController.Get)
		incomes.PUT("/:id", r.incomeController.Update)
		incomes.DELETE("/:id", r.incomeController.Delete)
	}

	wallets := v1.Group("/wallets")
	{
		wallets.GET("", r.walletController.List)
		wallets.POST("/transfer", r.walletController.Transfer)
	}

	v1.GET("/categories", r.lookupController.Categories)
	v1.GET("/parent-categories", r.lookupController.ParentCategories)
	v1.GET("/tags", r.lookupController.Tags)

	v1.POST("/summaries/generate/raw", r.summaryController.Generate)
}
