package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/rajabpour4097/businessmanagement/internal/config"
	"github.com/rajabpour4097/businessmanagement/internal/http/handlers"
	"github.com/rajabpour4097/businessmanagement/internal/http/middleware"
	"github.com/rajabpour4097/businessmanagement/internal/policy"
	"github.com/rajabpour4097/businessmanagement/internal/services"
	"github.com/rajabpour4097/businessmanagement/internal/token"
)

type Dependencies struct {
	Config           *config.Config
	Tokens           *token.Manager
	AuthService      *services.AuthService
	UserService      *services.UserService
	AccountService   *services.AccountService
	ProductService   *services.ProductService
	TaskService      *services.TaskService
	FinanceService   *services.FinanceService
	InventoryService *services.InventoryService
	Logger           *slog.Logger
	RateLimiter      *middleware.RateLimiter
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))

	authHandler := handlers.NewAuthHandler(deps.AuthService)
	profileHandler := handlers.NewProfileHandler(deps.UserService, deps.AuthService)
	userHandler := handlers.NewUserHandler(deps.UserService)
	accountHandler := handlers.NewAccountHandler(deps.AccountService)
	productHandler := handlers.NewProductHandler(deps.ProductService)
	taskHandler := handlers.NewTaskHandler(deps.TaskService)
	financeHandler := handlers.NewFinanceHandler(deps.FinanceService)
	inventoryHandler := handlers.NewInventoryHandler(deps.InventoryService)

	router.GET("/healthz", handlers.Health)

	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.Use(deps.RateLimiter.Middleware())
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	protected := api.Group("")
	protected.Use(middleware.Auth(deps.Tokens))
	{
		protected.GET("/profile", profileHandler.Get)
		protected.PUT("/profile", profileHandler.Update)
		protected.POST("/change-password", profileHandler.ChangePassword)

		// The user list deliberately stays open to both roles and returns
		// an empty set for accounting callers; everything else on the
		// roster is management only.
		protected.GET("/users", userHandler.List)
		protected.GET("/users/:id", userHandler.Get)

		management := protected.Group("")
		management.Use(middleware.RequireCapability(policy.ManagementOnly))
		{
			management.POST("/users", userHandler.Create)
			management.PUT("/users/:id", userHandler.Update)
			management.DELETE("/users/:id", userHandler.Delete)
		}

		records := protected.Group("")
		records.Use(middleware.RequireCapability(policy.AccountingOrManagement))
		{
			records.GET("/accounts", accountHandler.List)
			records.POST("/accounts", accountHandler.Create)
			records.GET("/accounts/:id", accountHandler.Get)
			records.PUT("/accounts/:id", accountHandler.Update)
			records.DELETE("/accounts/:id", accountHandler.Delete)

			records.GET("/products", productHandler.List)
			records.POST("/products", productHandler.Create)
			records.GET("/products/:id", productHandler.Get)
			records.PUT("/products/:id", productHandler.Update)
			records.DELETE("/products/:id", productHandler.Delete)

			records.GET("/tasks", taskHandler.List)
			records.POST("/tasks", taskHandler.Create)
			records.GET("/tasks/:id", taskHandler.Get)
			records.PUT("/tasks/:id", taskHandler.Update)
			records.DELETE("/tasks/:id", taskHandler.Delete)

			records.GET("/overdue-accounts", financeHandler.ListOverdue)
			records.POST("/overdue-accounts", financeHandler.CreateOverdue)
			records.GET("/overdue-accounts/:id", financeHandler.GetOverdue)
			records.PUT("/overdue-accounts/:id", financeHandler.UpdateOverdue)
			records.DELETE("/overdue-accounts/:id", financeHandler.DeleteOverdue)

			records.GET("/discrepancies", financeHandler.ListDiscrepancies)
			records.POST("/discrepancies", financeHandler.CreateDiscrepancy)
			records.GET("/discrepancies/:id", financeHandler.GetDiscrepancy)
			records.PUT("/discrepancies/:id", financeHandler.UpdateDiscrepancy)
			records.DELETE("/discrepancies/:id", financeHandler.DeleteDiscrepancy)

			records.GET("/follow-ups", financeHandler.ListFollowUps)
			records.POST("/follow-ups", financeHandler.CreateFollowUp)
			records.GET("/follow-ups/:id", financeHandler.GetFollowUp)
			records.PUT("/follow-ups/:id", financeHandler.UpdateFollowUp)
			records.DELETE("/follow-ups/:id", financeHandler.DeleteFollowUp)

			records.GET("/payable-checks", financeHandler.ListPayableChecks)
			records.POST("/payable-checks", financeHandler.CreatePayableCheck)
			records.GET("/payable-checks/:id", financeHandler.GetPayableCheck)
			records.PUT("/payable-checks/:id", financeHandler.UpdatePayableCheck)
			records.DELETE("/payable-checks/:id", financeHandler.DeletePayableCheck)

			records.GET("/receivable-checks", financeHandler.ListReceivableChecks)
			records.POST("/receivable-checks", financeHandler.CreateReceivableCheck)
			records.GET("/receivable-checks/:id", financeHandler.GetReceivableCheck)
			records.PUT("/receivable-checks/:id", financeHandler.UpdateReceivableCheck)
			records.DELETE("/receivable-checks/:id", financeHandler.DeleteReceivableCheck)

			records.GET("/ongoing-debts", financeHandler.ListDebts)
			records.POST("/ongoing-debts", financeHandler.CreateDebt)
			records.GET("/ongoing-debts/:id", financeHandler.GetDebt)
			records.PUT("/ongoing-debts/:id", financeHandler.UpdateDebt)
			records.DELETE("/ongoing-debts/:id", financeHandler.DeleteDebt)

			records.GET("/financial/summary", financeHandler.Summary)

			records.GET("/inventory/transactions", inventoryHandler.List)
			records.POST("/inventory/transactions", inventoryHandler.Create)
			records.GET("/inventory/transactions/:id", inventoryHandler.Get)
		}
	}

	return router
}
