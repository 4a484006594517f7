package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/localmark/store-directory/internal/api/handler"
	"github.com/localmark/store-directory/internal/api/middleware"
	"github.com/localmark/store-directory/internal/core/domain"
	"github.com/localmark/store-directory/internal/core/service"
	"github.com/localmark/store-directory/internal/infrastructure/config"
	"github.com/localmark/store-directory/internal/infrastructure/db/memory"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *memory.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("directory"))

	// --- Repositories ---
	userRepo := memory.NewUserRepository(db)
	storeRepo := memory.NewStoreRepository(db)
	ratingRepo := memory.NewRatingRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, log)
	storeService := service.NewStoreService(storeRepo, ratingRepo, userRepo, log)
	ratingService := service.NewRatingService(ratingRepo, storeRepo, userRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	storeHandler := handler.NewStoreHandler(storeService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	// --- Route-level middleware ---
	auth := middleware.Auth(cfg.JWTSecret, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	ownerOrAdmin := middleware.RBAC(domain.RoleStoreOwner, domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/verify", authHandler.Verify, auth)

	// --- User routes ---
	users := e.Group("/users", auth)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/stats", userHandler.Stats, adminOnly)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Store routes ---
	// Self/ownership checks beyond the role gate live in the services.
	e.GET("/stores", storeHandler.List)
	e.GET("/stores/my-stores", storeHandler.MyStores, auth, ownerOrAdmin)
	e.GET("/stores/stats", storeHandler.Stats, auth, adminOnly)
	e.GET("/stores/:id", storeHandler.Get)
	e.POST("/stores", storeHandler.Create, auth, ownerOrAdmin)
	e.PUT("/stores/:id", storeHandler.Update, auth)
	e.DELETE("/stores/:id", storeHandler.Delete, auth)

	// --- Rating routes ---
	e.GET("/ratings/store/:storeId", ratingHandler.ListByStore)
	ratings := e.Group("/ratings", auth)
	ratings.POST("", ratingHandler.Submit)
	ratings.GET("/user/:userId", ratingHandler.ListByUser)
	ratings.GET("/:id", ratingHandler.Get)
	ratings.PUT("/:id", ratingHandler.Update)
	ratings.DELETE("/:id", ratingHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
