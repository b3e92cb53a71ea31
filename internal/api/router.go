package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/growtiva/crm-api/docs"
	"github.com/growtiva/crm-api/internal/api/handler"
	"github.com/growtiva/crm-api/internal/api/middleware"
	"github.com/growtiva/crm-api/internal/core/service"
	"github.com/growtiva/crm-api/internal/infrastructure/config"
	"github.com/growtiva/crm-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Configuration is injected here once; nothing below reads it ambiently.
func NewRouter(pool *pgxpool.Pool, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.FrontendOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("crm"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	prospectRepo := postgres.NewProspectRepository(pool)
	contentItemRepo := postgres.NewContentItemRepository(pool)

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, tokens, hasher, log))
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo, hasher, log))
	clientHandler := handler.NewClientHandler(service.NewClientService(clientRepo, log))
	prospectHandler := handler.NewProspectHandler(service.NewProspectService(prospectRepo, log))
	contentItemHandler := handler.NewContentItemHandler(service.NewContentItemService(contentItemRepo, clientRepo, log))

	authMiddleware := middleware.Auth(tokens)

	// --- Public routes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	e.POST("/token", authHandler.Login)

	// --- Users ---
	users := e.Group("/users", authMiddleware)
	users.GET("/me", authHandler.Me)
	users.GET("", userHandler.List, middleware.RequireAdmin)
	users.POST("", userHandler.Create, middleware.RequireAdmin)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete, middleware.RequireAdmin)

	// --- Clients ---
	clients := e.Group("/clients", authMiddleware)
	clients.GET("", clientHandler.List)
	clients.POST("", clientHandler.Create)
	clients.GET("/:id", clientHandler.Get)
	clients.PUT("/:id", clientHandler.Update)
	clients.DELETE("/:id", clientHandler.Delete)

	// --- Prospects ---
	prospects := e.Group("/prospects", authMiddleware)
	prospects.GET("", prospectHandler.List)
	prospects.GET("/recommended", prospectHandler.Recommended)
	prospects.POST("", prospectHandler.Create)
	prospects.GET("/:id", prospectHandler.Get)
	prospects.PUT("/:id", prospectHandler.Update)
	prospects.DELETE("/:id", prospectHandler.Delete)

	// --- Content items ---
	contentItems := e.Group("/content-items", authMiddleware)
	contentItems.GET("", contentItemHandler.List)
	contentItems.POST("", contentItemHandler.Create)
	contentItems.GET("/:id", contentItemHandler.Get)
	contentItems.PUT("/:id", contentItemHandler.Update)
	contentItems.DELETE("/:id", contentItemHandler.Delete)

	return e
}
