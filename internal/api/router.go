package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/uptrace/bun"

	"github.com/osmss/inventory-system/internal/api/handler"
	"github.com/osmss/inventory-system/internal/api/middleware"
	"github.com/osmss/inventory-system/internal/core/domain"
	"github.com/osmss/inventory-system/internal/core/service"
	rediscache "github.com/osmss/inventory-system/internal/infrastructure/db/redis"
	"github.com/osmss/inventory-system/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *bun.DB, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	supplyRepo := sqlite.NewSupplyRepository(db)
	historyRepo := sqlite.NewHistoryRepository(db)
	userRepo := sqlite.NewUserRepository(db)
	cache := rediscache.NewCache(rdb)

	supplyService := service.NewSupplyService(supplyRepo, userRepo, cache, cache, log)
	reportService := service.NewReportService(historyRepo, log)
	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, cache, log)

	supplyHandler := handler.NewSupplyHandler(supplyService)
	historyHandler := handler.NewHistoryHandler(historyRepo)
	reportHandler := handler.NewReportHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	authMiddleware := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Protected routes ---
	protected := e.Group("", authMiddleware)

	protected.POST("/create-item", supplyHandler.Create)
	protected.PUT("/update-item/:id", supplyHandler.UpdateStock)
	protected.GET("/items", supplyHandler.List)
	protected.GET("/items-name", supplyHandler.Names)

	protected.GET("/supply-histories", historyHandler.List)

	protected.GET("/lowstock-report", reportHandler.LowStock)
	protected.GET("/stock-movemnt-report", reportHandler.Movement)

	protected.POST("/add-user", userHandler.Add, adminOnly)
	protected.PUT("/update-user/:id", userHandler.Update, adminOnly)
	protected.GET("/users", userHandler.List, adminOnly)

	return e
}
