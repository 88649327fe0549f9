package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carlosmateus/maintenance-system/internal/api/handler"
	"github.com/carlosmateus/maintenance-system/internal/api/middleware"
	"github.com/carlosmateus/maintenance-system/internal/core/domain"
	"github.com/carlosmateus/maintenance-system/internal/core/ports"
	"github.com/carlosmateus/maintenance-system/internal/core/service"
	mongodb "github.com/carlosmateus/maintenance-system/internal/infrastructure/db/mongo"
	redisdb "github.com/carlosmateus/maintenance-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(client *mongo.Client, db *mongo.Database, rdb *redis.Client, sessionTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("maintenance"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	sessionRepo := mongodb.NewSessionRepository(db)
	reportRepo := mongodb.NewReportRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	techRepo := mongodb.NewTechnicianRepository(client, db)

	// Typed as the port so a nil *redis.Client never becomes a non-nil
	// interface holding a nil cache.
	var sessionCache ports.SessionCache
	if rdb != nil {
		sessionCache = redisdb.NewSessionCache(rdb)
	}

	authService := service.NewAuthService(userRepo, sessionRepo, sessionCache, sessionTTL, log)
	reportService := service.NewReportService(reportRepo, log)
	techService := service.NewTechnicianService(userRepo, roleRepo, techRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	reportHandler := handler.NewReportHandler(reportService)
	techHandler := handler.NewTechnicianHandler(techService)

	authMiddleware := middleware.Auth(authService)
	adminOnly := middleware.RBAC("roster", domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout, authMiddleware)

	// --- Report routes (role-scoped inside the service) ---
	reports := e.Group("/reports", authMiddleware)
	reports.GET("", reportHandler.List)
	reports.POST("", reportHandler.Create)
	reports.PUT("/:id", reportHandler.Update)
	reports.DELETE("/:id", reportHandler.Delete)

	// --- Technician roster (admin only) ---
	technicians := e.Group("/technicians", authMiddleware, adminOnly)
	technicians.GET("", techHandler.List)
	technicians.POST("", techHandler.Create)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
