package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/health_facility_locator/internal/config"
	v1 "github.com/shenikar/health_facility_locator/internal/handler/http/v1"
	"github.com/shenikar/health_facility_locator/internal/locator"
	"github.com/shenikar/health_facility_locator/internal/overpass"
	"github.com/shenikar/health_facility_locator/internal/repository"
	"github.com/shenikar/health_facility_locator/internal/service"
	"github.com/shenikar/health_facility_locator/internal/webhook"
	"github.com/shenikar/health_facility_locator/pkg/logger"
	"github.com/shenikar/health_facility_locator/pkg/postgres"
	redisclient "github.com/shenikar/health_facility_locator/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/health_facility_locator/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 5 * time.Second

// @title Health Facility Locator API
// @version 1.0
// @description Finds hospitals, pharmacies, diagnostic labs and blood banks near a device and books lab tests.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст отменяется по SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Вебхуки: издатель и воркер доставки
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)

	// Источник данных OpenStreetMap и поиск
	overpassClient := overpass.NewClient(cfg.OverpassURL, cfg.OverpassUserAgent, cfg.OverpassTimeout, log)
	facilityLocator := locator.New(overpassClient, log, locator.Options{
		MaxMinutes: cfg.DefaultMaxMinutes,
		SpeedKmh:   cfg.DefaultSpeedKmh,
	})

	// Инициализация репозиториев
	searchRepo := repository.NewSearchRepository(dbpool)
	bookingRepo := repository.NewBookingRepository(dbpool, redisClient, log)
	donorRepo := repository.NewDonorRepository(dbpool)

	// Инициализация сервисов
	facilityService := service.NewFacilityService(facilityLocator, searchRepo, log, cfg)
	bookingService := service.NewBookingService(bookingRepo, webhookPublisher, log)
	donorService := service.NewDonorService(donorRepo, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(facilityService, bookingService, donorService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return webhookWorker.Run(gctx)
	})

	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting HTTP server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Received shutdown signal, shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Application stopped with error")
		return
	}
	log.Info("Server gracefully stopped")
}
