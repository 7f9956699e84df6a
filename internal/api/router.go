package api

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SyedUsman-Dev/Biz-directory/internal/api/handler"
	"github.com/SyedUsman-Dev/Biz-directory/internal/api/middleware"
	"github.com/SyedUsman-Dev/Biz-directory/internal/core/service"
	mongodb "github.com/SyedUsman-Dev/Biz-directory/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	businessRepo := mongodb.NewBusinessRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)

	authz := service.NewAuthorizer(userRepo)
	aggregator := service.NewRatingAggregator(reviewRepo, businessRepo, log)

	authService := service.NewAuthService(userRepo, jwtSecret, tokenTTL, log)
	businessService := service.NewBusinessService(businessRepo, reviewRepo, authz, log)
	reviewService := service.NewReviewService(reviewRepo, businessRepo, userRepo, authz, aggregator, log)

	authHandler := handler.NewAuthHandler(authService)
	businessHandler := handler.NewBusinessHandler(businessService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	authRequired := middleware.Auth(jwtSecret)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, authRequired)

	// --- Business routes ---
	api.GET("/businesses", businessHandler.List)
	api.GET("/businesses/search", businessHandler.Search)
	api.GET("/businesses/:business_id", businessHandler.Get)
	api.POST("/businesses", businessHandler.Create, authRequired)
	api.PUT("/businesses/:business_id", businessHandler.Update, authRequired)
	api.DELETE("/businesses/:business_id", businessHandler.Delete, authRequired)

	// --- Review routes ---
	api.GET("/businesses/:business_id/reviews", reviewHandler.ListForBusiness)
	api.POST("/businesses/:business_id/reviews", reviewHandler.Create, authRequired)
	api.GET("/reviews/:review_id", reviewHandler.Get)
	api.PUT("/reviews/:review_id", reviewHandler.Update, authRequired)
	api.DELETE("/reviews/:review_id", reviewHandler.Delete, authRequired)

	return e
}
