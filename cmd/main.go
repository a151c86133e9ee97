package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/alertcare_dispatch/internal/config"
	"github.com/shenikar/alertcare_dispatch/internal/feeds"
	v1 "github.com/shenikar/alertcare_dispatch/internal/handler/http/v1"
	"github.com/shenikar/alertcare_dispatch/internal/notify"
	"github.com/shenikar/alertcare_dispatch/internal/repository"
	"github.com/shenikar/alertcare_dispatch/internal/scorer"
	"github.com/shenikar/alertcare_dispatch/internal/service"
	"github.com/shenikar/alertcare_dispatch/pkg/logger"
	"github.com/shenikar/alertcare_dispatch/pkg/mqtt"
	"github.com/shenikar/alertcare_dispatch/pkg/postgres"
	redisclient "github.com/shenikar/alertcare_dispatch/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/alertcare_dispatch/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title AlertCare Dispatch API
// @version 1.0
// @description Patient stability prediction, care-team alerting and hospital dispatch.
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
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

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
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, int32(cfg.DBMaxConns))
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := service.NewMetrics(registry)

	// Каналы доставки уведомлений
	sinks := []notify.Sink{notify.NewWebhookSink(cfg, log)}
	if cfg.MQTTBroker != "" {
		mqttClient, err := mqtt.NewClient(mqtt.Options{
			Broker:   cfg.MQTTBroker,
			ClientID: cfg.MQTTClientID,
			Username: cfg.MQTTUsername,
			Password: cfg.MQTTPassword,
		})
		if err != nil {
			log.Fatalf("Failed to connect to MQTT broker: %v", err)
		}
		defer mqttClient.Disconnect()
		sinks = append(sinks, notify.NewMQTTSink(mqttClient, cfg.MQTTAlertTopic))
		log.Info("Successfully connected to MQTT broker")
	} else {
		log.Warn("MQTT_BROKER is not configured. Health Connect bridge notifications are disabled.")
	}

	// Инициализация издателя и воркера уведомлений
	alertPublisher := notify.NewRedisPublisher(redisClient)
	notifyWorker := notify.NewWorker(redisClient, log, sinks...)
	notifyWorker.Start(ctx)

	// Инициализация репозиториев
	readingRepo := repository.NewReadingRepository(dbpool)
	predictionRepo := repository.NewPredictionRepository(dbpool)
	alertRepo := repository.NewAlertRepository(dbpool)
	careTeamRepo := repository.NewCareTeamRepository(dbpool)
	facilityRepo := repository.NewFacilityRepository(dbpool, redisClient)
	ticketRepo := repository.NewTicketRepository(dbpool)
	escalationRepo := repository.NewEscalationRepository(dbpool)
	overrideStore := repository.NewRedisOverrideStore(redisClient)

	var bedReserver service.BedReserver
	if cfg.BedReservationEnabled {
		bedReserver = repository.NewRedisBedReserver(redisClient, cfg.BedReservationTTL)
	}

	// Внешние клиенты
	scorerClient := scorer.NewClient(cfg.ScorerURL, cfg.ScorerTimeout, log)
	bedCensus := feeds.NewBedCensusClient(cfg.BedCensusURL, cfg.FeedTimeout)
	oxygenSensor := feeds.NewOxygenSensorClient(cfg.OxygenSensorURL, cfg.FeedTimeout)
	transportTracker := feeds.NewTransportTrackerClient(cfg.TransportTrackerURL, cfg.FeedTimeout)

	// Инициализация сервисов
	overrideRegistry := service.NewOverrideRegistry(overrideStore, facilityRepo, log, metrics)
	aggregator := service.NewResourceAggregator(bedCensus, oxygenSensor, transportTracker, overrideRegistry, service.AggregatorConfig{
		FeedTimeout:      cfg.FeedTimeout,
		MinSafeOxygenPSI: cfg.MinSafeOxygenPSI,
		FanoutLimit:      cfg.FacilityFanoutLimit,
	}, log, metrics)
	dispatchScorer := service.NewDispatchScorer(facilityRepo, log)
	dispatcher := service.NewDispatchOrchestrator(facilityRepo, careTeamRepo, aggregator, dispatchScorer, ticketRepo, bedReserver, log, metrics)
	gateway := service.NewPredictionGateway(readingRepo, predictionRepo, scorerClient, service.GatewayConfig{
		Window:        cfg.PredictionWindow(),
		MinHistory:    time.Duration(cfg.MinHistoryHours) * time.Hour,
		ScorerTimeout: cfg.ScorerTimeout,
	}, log, metrics)
	router := service.NewAlertRouter(careTeamRepo, alertRepo, alertPublisher, cfg.AlertSuppressionEnabled, log, metrics)
	pipeline := service.NewPipeline(gateway, router, dispatcher, cfg.AutoDispatchPreview, log, metrics)
	escalations := service.NewEscalationManager(careTeamRepo, careTeamRepo, dispatcher, escalationRepo, cfg.EscalationAccessTTL, log, metrics)

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Services{
		Predictions: pipeline,
		Alerts:      router,
		Dispatch:    dispatcher,
		Overrides:   overrideRegistry,
		Escalations: escalations,
	}, map[string]v1.HealthProbe{
		"database": dbpool.Ping,
		"redis":    func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		"scorer":   scorerClient.Health,
	}, log, cfg)

	// Настройка Gin роутера
	engine := gin.Default()
	api := engine.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus и Swagger UI
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: engine,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Остановка воркера уведомлений
	cancel()

	log.Info("Server gracefully stopped")
}
