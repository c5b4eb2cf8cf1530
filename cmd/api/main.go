package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/stokk/inventory-service/config"
	"github.com/stokk/inventory-service/pkg/broker"
	"github.com/stokk/inventory-service/pkg/cache"
	"github.com/stokk/inventory-service/pkg/database/postgres"
	"github.com/stokk/inventory-service/pkg/i18n"
	"github.com/stokk/inventory-service/pkg/logger"
	"github.com/stokk/inventory-service/pkg/search"

	alertH "github.com/stokk/inventory-service/internal/alert/handler"
	alertRepoPkg "github.com/stokk/inventory-service/internal/alert/repository"
	alertUCPkg "github.com/stokk/inventory-service/internal/alert/usecase"

	catH "github.com/stokk/inventory-service/internal/category/handler"
	catRepoPkg "github.com/stokk/inventory-service/internal/category/repository"
	catUCPkg "github.com/stokk/inventory-service/internal/category/usecase"

	dashH "github.com/stokk/inventory-service/internal/dashboard/handler"
	dashRepoPkg "github.com/stokk/inventory-service/internal/dashboard/repository"
	dashUCPkg "github.com/stokk/inventory-service/internal/dashboard/usecase"

	invH "github.com/stokk/inventory-service/internal/inventory/handler"
	invRepoPkg "github.com/stokk/inventory-service/internal/inventory/repository"
	invUCPkg "github.com/stokk/inventory-service/internal/inventory/usecase"

	labelH "github.com/stokk/inventory-service/internal/label/handler"
	labelUCPkg "github.com/stokk/inventory-service/internal/label/usecase"

	prodH "github.com/stokk/inventory-service/internal/product/handler"
	prodRepoPkg "github.com/stokk/inventory-service/internal/product/repository"
	prodUCPkg "github.com/stokk/inventory-service/internal/product/usecase"

	saleH "github.com/stokk/inventory-service/internal/sale/handler"
	saleListenerPkg "github.com/stokk/inventory-service/internal/sale/listener"
	saleRepoPkg "github.com/stokk/inventory-service/internal/sale/repository"
	saleUCPkg "github.com/stokk/inventory-service/internal/sale/usecase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 1.5 Initialize i18n
	i18n.Init()
	if err := i18n.Load("locales/active.en.json"); err != nil {
		log.Printf("Failed to load en locales: %v", err)
	}
	if err := i18n.Load("locales/active.pt.json"); err != nil {
		log.Printf("Failed to load pt locales: %v", err)
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories
	catRepo := catRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)
	alertRepo := alertRepoPkg.NewPGRepository(db)
	saleRepo := saleRepoPkg.NewPGRepository(db)
	dashRepo := dashRepoPkg.NewDashboardRepository(db, appLogger)

	// 5. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5.5 Initialize Kafka Consumer
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 5.8 Initialize Elasticsearch
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch (Search features might be limited)", zap.Error(err))
		esClient = nil
	} else {
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 6. Initialize UseCases
	locale := cfg.Server.Locale
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, catRepo, alertRepo, redisClient, esClient, locale, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, locale, appLogger)
	alertUC := alertUCPkg.NewAlertUseCase(alertRepo, appLogger)
	saleUC := saleUCPkg.NewSaleUseCase(saleRepo, prodRepo, invUC, locale, appLogger)
	dashUC := dashUCPkg.NewDashboardUseCase(dashRepo, appLogger)
	labelUC := labelUCPkg.NewLabelUseCase(prodRepo, appLogger)

	// 6.5 Initialize Listeners
	saleListener := saleListenerPkg.NewSaleListener(kafkaConsumer, saleUC, appLogger)

	// Start Listener
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go saleListener.Start(ctx)

	// 7. Initialize Handlers & Router
	if cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	catH.NewCategoryHandler(catUC, appLogger).RegisterRoutes(api)
	prodH.NewProductHandler(prodUC, appLogger).RegisterRoutes(api)
	invH.NewInventoryHandler(invUC, appLogger).RegisterRoutes(api)
	alertH.NewAlertHandler(alertUC, appLogger).RegisterRoutes(api)
	saleH.NewSaleHandler(saleUC, appLogger).RegisterRoutes(api)
	dashH.NewDashboardHandler(dashUC, appLogger).RegisterRoutes(api)
	labelH.NewLabelHandler(labelUC, appLogger).RegisterRoutes(api)

	// 8. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
