package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rajabpour4097/businessmanagement/internal/config"
	"github.com/rajabpour4097/businessmanagement/internal/db"
	transport "github.com/rajabpour4097/businessmanagement/internal/http"
	"github.com/rajabpour4097/businessmanagement/internal/http/middleware"
	"github.com/rajabpour4097/businessmanagement/internal/repo"
	"github.com/rajabpour4097/businessmanagement/internal/services"
	"github.com/rajabpour4097/businessmanagement/internal/token"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := db.Migrate(ctx, cfg.DBURL); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	dbConn, err := db.Connect(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	gormConn, err := db.ConnectGorm(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to connect gorm", "error", err)
		os.Exit(1)
	}
	defer gormConn.Close()

	redisClient, err := db.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	if err := db.EnsureSeedUsers(ctx, dbConn.Pool, cfg.RequestTimeout); err != nil {
		logger.Error("failed to seed users", "error", err)
		os.Exit(1)
	}

	userRepo := repo.NewUserRepo(dbConn.Pool, cfg.RequestTimeout)
	accountRepo := repo.NewAccountRepo(gormConn.DB)
	productRepo := repo.NewProductRepo(gormConn.DB)
	taskRepo := repo.NewTaskRepo(gormConn.DB)
	financeRepo := repo.NewFinanceRepo(gormConn.DB)
	inventoryTxRepo := repo.NewInventoryTxRepo(gormConn.DB)
	revocationRepo := repo.NewRevocationRepo(redisClient)

	tokens := token.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, revocationRepo)
	authService := services.NewAuthService(userRepo, tokens, cfg)
	userService := services.NewUserService(userRepo, cfg)
	accountService := services.NewAccountService(accountRepo)
	productService := services.NewProductService(productRepo)
	taskService := services.NewTaskService(taskRepo)
	financeService := services.NewFinanceService(financeRepo)
	inventoryService := services.NewInventoryService(inventoryTxRepo)

	router := transport.NewRouter(transport.Dependencies{
		Config:           cfg,
		Tokens:           tokens,
		AuthService:      authService,
		UserService:      userService,
		AccountService:   accountService,
		ProductService:   productService,
		TaskService:      taskService,
		FinanceService:   financeService,
		InventoryService: inventoryService,
		Logger:           logger,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitPerMinute),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.RequestTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErrors:
		logger.Error("http server stopped unexpectedly", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("http server stopped")
}

func newLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env != "prod" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}
