package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/mercadillo/storefront/docs"
	"github.com/mercadillo/storefront/internal/api/handler"
	"github.com/mercadillo/storefront/internal/api/middleware"
	"github.com/mercadillo/storefront/internal/core/domain"
	"github.com/mercadillo/storefront/internal/core/ports"
	"github.com/mercadillo/storefront/internal/core/service"
	"github.com/mercadillo/storefront/internal/core/token"
)

// Deps carries everything the router needs. main wires the Mongo and Redis
// implementations; tests substitute in-memory ones.
type Deps struct {
	Users    ports.UserRepository
	Products ports.ProductRepository
	Messages ports.MessageRepository
	Limiter  ports.RateLimiter
	Tokens   *token.Issuer
	Logger   zerolog.Logger

	// SecureCookies marks the session cookie Secure (production).
	SecureCookies bool

	// Registry scopes the HTTP metrics. Nil means the process-wide default
	// registry; tests pass a fresh one so routers can be built repeatedly.
	Registry *prometheus.Registry

	// Mongo and Redis back the readiness probe only; either may be nil.
	Mongo *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if d.Registry != nil {
		registerer = d.Registry
		gatherer = d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "storefront",
		Registerer: registerer,
	}))

	// --- Dependencies ---
	authService := service.NewAuthService(d.Users, d.Tokens, d.Logger)
	productService := service.NewProductService(d.Products, d.Logger)
	messageService := service.NewMessageService(d.Messages, d.Users, d.Logger)

	authHandler := handler.NewAuthHandler(authService, d.Tokens.TTL(), d.SecureCookies)
	productHandler := handler.NewProductHandler(productService)
	messageHandler := handler.NewMessageHandler(messageService)

	session := middleware.Session(d.Tokens)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login, middleware.RateLimit(d.Limiter))
	e.POST("/auth/register", authHandler.Register)
	e.GET("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, session)

	// --- Session-gated API ---
	api := e.Group("/api", session)

	api.GET("/products", productHandler.List)
	api.GET("/products/:ref", productHandler.Get)
	api.POST("/products", productHandler.Create, adminOnly)
	api.PUT("/products/:ref", productHandler.Update, adminOnly)
	api.DELETE("/products/:ref", productHandler.Delete, adminOnly)

	api.POST("/messages", messageHandler.Send)
	api.GET("/messages/mine", messageHandler.Mine)
	api.GET("/messages", messageHandler.Conversation, adminOnly)
	api.GET("/messages/partners", messageHandler.Partners, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
