package main

import (
	"errors"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/taskgate/internal/pkg/config"
	"github.com/piresc/taskgate/internal/pkg/database"
	"github.com/piresc/taskgate/internal/pkg/health"
	"github.com/piresc/taskgate/internal/pkg/logger"
	"github.com/piresc/taskgate/internal/pkg/middleware"
	"github.com/piresc/taskgate/internal/pkg/nats"
	"github.com/piresc/taskgate/internal/pkg/server"
	authGatewayHTTP "github.com/piresc/taskgate/services/auth/gateway/http"
	authGatewayNATS "github.com/piresc/taskgate/services/auth/gateway/nats"
	authHandler "github.com/piresc/taskgate/services/auth/handler"
	authRepository "github.com/piresc/taskgate/services/auth/repository"
	authUsecase "github.com/piresc/taskgate/services/auth/usecase"
	todoGatewayHTTP "github.com/piresc/taskgate/services/todo/gateway/http"
	todoHandler "github.com/piresc/taskgate/services/todo/handler"
	todoUsecase "github.com/piresc/taskgate/services/todo/usecase"
)

func main() {
	appName := "taskgate"
	configPath := "config/taskgate.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL for the auth audit trail
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis for OTP sessions, the session registry and rate limits
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS for OTP delivery notifications
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	requestTimeout := time.Duration(configs.Services.RequestTimeout) * time.Second

	// Initialize repositories
	authStore := authRepository.NewRedisAuthStore(redisClient)
	auditRepo := authRepository.NewAuditRepo(postgresClient.GetDB())

	// Initialize gateways
	identityGW := authGatewayHTTP.NewIdentityClient(configs.Services.IdentityServiceURL, requestTimeout)
	deliveryGW := authGatewayNATS.NewDeliveryClient(natsClient)
	todoGW := todoGatewayHTTP.NewTodoClient(configs.Services.TodoServiceURL, requestTimeout)

	// Initialize usecases
	authUC := authUsecase.NewAuthUC(authStore, authStore, auditRepo, identityGW, deliveryGW, configs)
	todoUC := todoUsecase.NewTodoUC(todoGW, configs)

	// Initialize handlers
	authH := authHandler.NewHandler(authUC, authStore, configs)
	todoH := todoHandler.NewHandler(todoUC, authStore, configs)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	// Rate limit the anonymous auth endpoints
	rateLimiter := noopMiddleware()
	if configs.RateLimit.Enabled {
		rateLimiter = middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: redisClient.GetClient(),
			Limit:       configs.RateLimit.Limit,
			Period:      time.Duration(configs.RateLimit.PeriodSeconds) * time.Second,
		})
	}

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, map[string]health.CheckFunc{
		"postgres": func() error { return postgresClient.GetDB().Ping() },
		"redis":    func() error { return redisClient.GetClient().Ping(redisClient.GetClient().Context()).Err() },
		"nats": func() error {
			if !natsClient.GetConn().IsConnected() {
				return errors.New("nats connection lost")
			}
			return nil
		},
	})

	// Register service routes
	authH.RegisterRoutes(e, rateLimiter)
	todoH.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}

func noopMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return next
	}
}
