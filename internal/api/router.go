package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/userhub/account-service/internal/api/handler"
	"github.com/userhub/account-service/internal/api/middleware"
	"github.com/userhub/account-service/internal/core/ports"
	"github.com/userhub/account-service/internal/core/service"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	accounts ports.AccountService,
	tokens *service.TokenService,
	db *mongo.Database,
	rdb *redis.Client,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("account"))

	// --- Auth routes ---
	accountHandler := handler.NewAccountHandler(accounts)
	e.POST("/api/auth/register", accountHandler.Register)
	e.POST("/api/auth/login", accountHandler.Login)
	e.POST("/api/auth/verify-otp", accountHandler.VerifyConfirm)
	e.POST("/api/auth/resend-verify-otp", accountHandler.ResendConfirmOTP)
	e.GET("/api/auth/me", accountHandler.Me, middleware.Auth(tokens))

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
