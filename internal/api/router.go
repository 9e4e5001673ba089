package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/swiftcargo/tracking-api/docs" // swagger spec, registered at init
	"github.com/swiftcargo/tracking-api/internal/api/handler"
	"github.com/swiftcargo/tracking-api/internal/api/middleware"
	"github.com/swiftcargo/tracking-api/internal/core/service"
	"github.com/swiftcargo/tracking-api/internal/infrastructure/config"
	mongodb "github.com/swiftcargo/tracking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/swiftcargo/tracking-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all dependencies wired and routes
// registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("tracking"))

	// --- Dependencies ---
	shipmentRepo := mongodb.NewShipmentRepository(db)
	quoteRepo := mongodb.NewQuoteRepository(db)
	authRepo := mongodb.NewAuthRepository(db)
	cache := redisdb.NewTrackingCache(rdb, cfg.Redis.CacheTTL)

	shipmentService := service.NewShipmentService(shipmentRepo, cache, log)
	quoteService := service.NewQuoteService(quoteRepo, log)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)

	authHandler := handler.NewAuthHandler(authService)
	shipmentHandler := handler.NewShipmentHandler(shipmentService)
	trackingHandler := handler.NewTrackingHandler(shipmentService)
	quoteHandler := handler.NewQuoteHandler(quoteService)

	// --- Public routes ---
	api := e.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/track/:trackingNumber", trackingHandler.Track)
	api.POST("/quotes", quoteHandler.Create)
	api.GET("/health", handler.NewHealthHandler().Liveness)
	api.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)

	// --- Protected routes ---
	protected := api.Group("", middleware.Auth(cfg.JWTSecret))
	protected.GET("/quotes", quoteHandler.List)
	protected.PATCH("/quotes/:id", quoteHandler.Patch)
	protected.DELETE("/quotes/:id", quoteHandler.Delete)
	protected.GET("/shipments", shipmentHandler.List)
	protected.POST("/shipments", shipmentHandler.Create)
	protected.PATCH("/shipments/:id", shipmentHandler.Patch)
	protected.DELETE("/shipments/:id", shipmentHandler.Delete)
	protected.POST("/shipments/:id/events", shipmentHandler.AppendEvent)
	protected.DELETE("/shipments/:id/events/:eventId", shipmentHandler.RemoveEvent)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
