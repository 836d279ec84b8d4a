package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gazelia/storefront/internal/pkg/cache"
	"github.com/gazelia/storefront/internal/pkg/config"
	"github.com/gazelia/storefront/internal/pkg/constants"
	"github.com/gazelia/storefront/internal/pkg/database"
	"github.com/gazelia/storefront/internal/pkg/email"
	"github.com/gazelia/storefront/internal/pkg/health"
	"github.com/gazelia/storefront/internal/pkg/logger"
	"github.com/gazelia/storefront/internal/pkg/middleware"
	natspkg "github.com/gazelia/storefront/internal/pkg/nats"
	"github.com/gazelia/storefront/internal/pkg/server"

	adminHandler "github.com/gazelia/storefront/services/admin/handler"
	adminRepository "github.com/gazelia/storefront/services/admin/repository"
	adminUsecase "github.com/gazelia/storefront/services/admin/usecase"
	catalogHandler "github.com/gazelia/storefront/services/catalog/handler"
	catalogRepository "github.com/gazelia/storefront/services/catalog/repository"
	catalogUsecase "github.com/gazelia/storefront/services/catalog/usecase"
	contactHandler "github.com/gazelia/storefront/services/contact/handler"
	contactRepository "github.com/gazelia/storefront/services/contact/repository"
	contactUsecase "github.com/gazelia/storefront/services/contact/usecase"
	distanceGateway "github.com/gazelia/storefront/services/distance/gateway"
	distanceHandler "github.com/gazelia/storefront/services/distance/handler"
	distanceRepository "github.com/gazelia/storefront/services/distance/repository"
	distanceUsecase "github.com/gazelia/storefront/services/distance/usecase"
	notificationsHandler "github.com/gazelia/storefront/services/notifications/handler"
	notificationsRepository "github.com/gazelia/storefront/services/notifications/repository"
	notificationsUsecase "github.com/gazelia/storefront/services/notifications/usecase"
	resellersHandler "github.com/gazelia/storefront/services/resellers/handler"
	resellersRepository "github.com/gazelia/storefront/services/resellers/repository"
	resellersUsecase "github.com/gazelia/storefront/services/resellers/usecase"
)

func main() {
	appName := "storefront-api"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Infrastructure clients
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	producer, err := natspkg.NewProducer(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	sender, err := email.NewSESV2Sender(context.Background(), configs.Email.Region, configs.Email.FromAddress)
	if err != nil {
		zapLogger.Fatal("Failed to initialize email sender", logger.Err(err))
	}

	templates, err := email.NewTemplateManager()
	if err != nil {
		zapLogger.Fatal("Failed to parse email templates", logger.Err(err))
	}

	// Distance service
	distanceStore := cache.NewRedisStore(redisClient)
	distanceRepo := distanceRepository.NewDistanceRepository(distanceStore, time.Duration(configs.Distance.CacheTTL)*time.Second)
	routingGW := distanceGateway.NewOSRMGateway(configs.Routing)
	distanceUC := distanceUsecase.NewDistanceUC(configs.Distance, distanceRepo, routingGW)

	// Catalog service
	catalogRepo := catalogRepository.NewCatalogRepository(postgresClient.DB)
	catalogUC := catalogUsecase.NewCatalogUC(catalogRepo)

	// Reseller directory
	resellerRepo := resellersRepository.NewResellerRepository(postgresClient.DB)
	resellerUC := resellersUsecase.NewResellerUC(resellerRepo, distanceUC)

	// Contact relays
	leadRepo := contactRepository.NewLeadRepository(postgresClient.DB)
	contactUC := contactUsecase.NewContactUC(configs.Email, leadRepo, sender, templates)

	// Push notifications
	notificationRepo := notificationsRepository.NewNotificationRepository(redisClient)
	notificationUC := notificationsUsecase.NewNotificationUC(notificationRepo, catalogUC, producer)

	// Back office
	adminRepo := adminRepository.NewAdminRepository(postgresClient.DB)
	adminUC := adminUsecase.NewAdminUC(configs, adminRepo)

	// HTTP wiring
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	adminAuth := middleware.JWTAuthMiddleware(configs.JWT)
	contactRateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Key:         constants.KeyRateLimitPrefix,
		Limit:       configs.Contact.RateLimit,
		Period:      time.Duration(configs.Contact.RatePeriod) * time.Second,
	})

	distanceHandler.NewHTTPHandler(distanceUC).RegisterRoutes(e)
	catalogHandler.NewHTTPHandler(catalogUC).RegisterRoutes(e)
	resellersHandler.NewHTTPHandler(resellerUC).RegisterRoutes(e)
	contactHandler.NewHTTPHandler(contactUC).RegisterRoutes(e, contactRateLimiter)
	notificationsHandler.NewHTTPHandler(notificationUC).RegisterRoutes(e, adminAuth)
	adminHandler.NewHTTPHandler(adminUC).RegisterRoutes(e, adminAuth)

	// Cleanup on shutdown
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(context.Context) error { producer.Stop(); return nil })
	shutdownManager.Register(func(context.Context) error { return redisClient.Close() })
	shutdownManager.Register(func(context.Context) error { return postgresClient.Close() })

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Cleanup finished with errors", logger.Err(err))
	}
}
