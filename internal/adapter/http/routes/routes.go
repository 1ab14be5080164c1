package routes

import (
	"context"
	"log"
	"os"

	"boq_service/internal/adapter/http/handlers"
	repository2 "boq_service/internal/adapter/persistence/repository"
	"boq_service/internal/config"
	"boq_service/internal/infrastructure/catalog"
	"boq_service/internal/infrastructure/database"
	"boq_service/internal/infrastructure/export"
	"boq_service/internal/infrastructure/identity"
	"boq_service/internal/infrastructure/logging"
	"boq_service/internal/infrastructure/stream"
	"boq_service/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.Environment)
	defer func() { _ = logger.Sync() }()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, logger)

	if err := router.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes(cfg *config.Config, logger *zap.Logger) {
	ddb := database.ConnectDynamoDB(logger)
	if os.Getenv("DYNAMODB_ENDPOINT") != "" {
		// Local DynamoDB: bootstrap the ledger table on startup.
		if err := database.EnsureAccessRequestsTable(context.Background(), ddb, cfg.AccessRequestsTable, logger); err != nil {
			logger.Fatal("failed to ensure access requests table", zap.Error(err))
		}
	}

	sqlDB, err := database.OpenSQLite(cfg.BOQDBPath, cfg.BOQDBMaxOpenConns, cfg.BOQDBMaxIdleConns, cfg.BOQDBMaxLifetime)
	if err != nil {
		logger.Fatal("failed to open boq store", zap.Error(err))
	}
	if err := database.MigrateSQLite(sqlDB); err != nil {
		logger.Fatal("failed to migrate boq store", zap.Error(err))
	}

	accessRepo := repository2.NewAccessRequestDynamoRepository(ddb)
	boqRepo := repository2.NewBoqSqliteRepository(sqlDB)
	bus := stream.NewBroker(logger)

	accessUseCase := usecase.NewAccessRequestUseCase(accessRepo, bus, cfg.TrustedDomain, cfg.AdminEmail)
	catalogUseCase := usecase.NewCatalogUseCase(catalog.NewSheetSource(cfg.CatalogSheetURL, cfg.CatalogTimeout))
	boqUseCase := usecase.NewBoqUseCase(boqRepo, export.NewXlsxExporter())

	sessions := identity.NewSessionStore(cfg.SessionTTL)
	verifier := identity.NewHTTPVerifier(cfg.IdentityVerifyURL, cfg.IdentityTimeout)

	gate := handlers.NewAccessGate(accessUseCase, sessions, cfg.SessionCookieName)
	authHandler := handlers.NewAuthHandler(verifier, sessions, accessUseCase, cfg.SessionCookieName, cfg.CookieSecure)
	accessHandler := handlers.NewAccessRequestHandler(accessUseCase)
	boqHandler := handlers.NewBoqHandler(boqUseCase, catalogUseCase)
	profileHandler := handlers.NewProfileHandler(cfg.CookieSecure)

	// Rotas publicas
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAccessRoutes(v1, gate, accessHandler)
	addBoqRoutes(v1, gate, boqHandler, profileHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
