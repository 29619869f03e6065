package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tarefalabs/tarefas-api/internal/api/handler"
	"github.com/tarefalabs/tarefas-api/internal/api/middleware"
	"github.com/tarefalabs/tarefas-api/internal/core/auth"
	"github.com/tarefalabs/tarefas-api/internal/core/service"
	mongodb "github.com/tarefalabs/tarefas-api/internal/infrastructure/db/mongo"
	redisdb "github.com/tarefalabs/tarefas-api/internal/infrastructure/db/redis"
	"github.com/tarefalabs/tarefas-api/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit dispatcher's workers live until ctx is cancelled.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tarefas"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	var limiter *redisdb.LoginLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb)
	}

	hasher := auth.NewPasswordHasher()
	second := auth.NewTOTPVerifier()
	tokens := auth.NewTokenIssuer(jwtSecret, auth.DefaultTokenTTL)

	var authService *service.AuthService
	if limiter != nil {
		authService = service.NewAuthService(userRepo, hasher, second, tokens, limiter, dispatcher, log)
	} else {
		authService = service.NewAuthService(userRepo, hasher, second, tokens, nil, dispatcher, log)
	}
	userService := service.NewUserService(userRepo, taskRepo, hasher, authService, dispatcher, log)
	taskService := service.NewTaskService(taskRepo, authService, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)

	authenticated := middleware.Auth(authService)

	// --- Public routes ---
	e.POST("/registro", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Users ---
	users := e.Group("/usuarios", authenticated)
	users.GET("", userHandler.List, middleware.Require(authService, auth.OpUserListAll))
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete, middleware.Require(authService, auth.OpUserDelete))

	// --- Tasks ---
	tasks := e.Group("/tarefas", authenticated)
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.POST("", taskHandler.Create, middleware.Require(authService, auth.OpTaskCreate))
	tasks.PUT("/:id", taskHandler.Update, middleware.Require(authService, auth.OpTaskUpdate))
	tasks.DELETE("/:id", taskHandler.Delete, middleware.Require(authService, auth.OpTaskDelete))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
