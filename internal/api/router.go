package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/miramar/hotel-api/internal/api/handler"
	"github.com/miramar/hotel-api/internal/api/middleware"
	"github.com/miramar/hotel-api/internal/core/domain"
	"github.com/miramar/hotel-api/internal/core/service"
	"github.com/miramar/hotel-api/internal/core/token"
	mongodb "github.com/miramar/hotel-api/internal/infrastructure/db/mongo"
	redisdb "github.com/miramar/hotel-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, issuer *token.Issuer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hotel"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	reservationRepo := mongodb.NewReservationRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)

	authService := service.NewAuthService(userRepo, issuer, throttle, log)
	userService := service.NewUserService(userRepo, log)
	reservationService := service.NewReservationService(reservationRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	reservationHandler := handler.NewReservationHandler(reservationService)

	requireToken := middleware.Auth(issuer)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- User routes ---
	users := e.Group("/users", requireToken)
	users.GET("", userHandler.List, middleware.Authorize(domain.RoleSuperAdmin))
	users.GET("/:email", userHandler.GetByEmail)
	users.PATCH("", userHandler.UpdateProfile)

	// --- Reservation routes ---
	reservations := e.Group("/reservations", requireToken)
	reservations.POST("", reservationHandler.Create)
	reservations.GET("", reservationHandler.List, middleware.Authorize(domain.RoleAdmin))
	reservations.GET("/user/:email", reservationHandler.ListByUserEmail)
	reservations.PATCH("/:id", reservationHandler.Update)
	reservations.POST("/:id/cancel", reservationHandler.Cancel)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
