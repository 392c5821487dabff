package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/user-catalog-api/docs"
	"github.com/99minutos/user-catalog-api/internal/api/handler"
	"github.com/99minutos/user-catalog-api/internal/api/middleware"
	"github.com/99minutos/user-catalog-api/internal/core/ports"
)

const (
	metricsNamespace = "usercatalog"
	metricsSubsystem = "http"
)

// Deps is everything the router wires into handlers and middleware.
type Deps struct {
	Accounts ports.AccountService
	Users    ports.UserService
	Catalog  ports.CatalogService
	Access   ports.AccessControl

	// Health lists the dependencies pinged by GET /health/ready.
	Health map[string]handler.Pinger

	Log          zerolog.Logger
	AllowOrigins []string

	// Registerer and Gatherer back the HTTP metrics and GET /metrics.
	// Nil means the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     d.AllowOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  metricsNamespace,
		Subsystem:  metricsSubsystem,
		Registerer: d.Registerer,
	}))

	// --- Dependencies ---
	accountHandler := handler.NewAccountHandler(d.Accounts)
	userHandler := handler.NewUserHandler(d.Users)
	productHandler := handler.NewProductHandler(d.Catalog)
	healthHandler := handler.NewHealthHandler(d.Health)
	auth := middleware.Auth(d.Access)

	// --- Account routes ---
	e.POST("/register", accountHandler.Register)
	e.POST("/token", accountHandler.Token)
	e.GET("/profile", accountHandler.Profile, auth)
	e.GET("/verify-token", accountHandler.VerifyToken, auth)

	// --- User management (authenticated + active) ---
	users := e.Group("/users", auth)
	users.GET("", userHandler.List)
	users.GET("/", userHandler.List)
	users.POST("", userHandler.Create)
	users.POST("/", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Product catalog (open) ---
	e.GET("/products", productHandler.List)
	e.POST("/products", productHandler.Create)
	e.GET("/products/:id", productHandler.Get)
	e.PUT("/products/:id", productHandler.Update)
	e.DELETE("/products/:id", productHandler.Delete)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
