package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smart-erp/identity-service/internal/api/handler"
	"github.com/smart-erp/identity-service/internal/api/middleware"
	"github.com/smart-erp/identity-service/internal/core/domain"
	"github.com/smart-erp/identity-service/internal/core/ports"
	"github.com/smart-erp/identity-service/internal/core/token"
)

// Dependencies carries everything the router needs to wire the handlers.
type Dependencies struct {
	Accounts  ports.AccountService
	Roles     ports.RoleService
	Validator *token.Validator
	Mongo     *mongo.Database
	Redis     *redis.Client
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("identity"))

	authHandler := handler.NewAuthHandler(deps.Accounts)
	userHandler := handler.NewUserHandler(deps.Accounts)
	roleHandler := handler.NewRoleHandler(deps.Roles)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	authRequired := middleware.Auth(deps.Validator)

	auth := e.Group("/auth", authRequired)
	auth.GET("/user/:id", userHandler.Get)
	auth.DELETE("/user/:id", userHandler.Delete)
	auth.GET("/users", userHandler.List, middleware.RBAC(domain.RoleAdmin))
	auth.GET("/user/:id/roles", userHandler.GetRoles)
	auth.POST("/user/:id/roles", userHandler.AssignRole)

	auth.GET("/roles", roleHandler.List)
	auth.POST("/role", roleHandler.Create)
	auth.GET("/role/:id", roleHandler.Get)
	auth.PUT("/role/:id", roleHandler.Update)
	auth.DELETE("/role/:id", roleHandler.Delete)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
