package main

// @title Smart City Dashboard API
// @version 1.0.0
// @description Бэкенд городского дашборда: отчет по точке карты (трафик, экология, безопасность, инфраструктура, тренды), GeoJSON-слои датасетов и поиск по OpenStreetMap.
// @description
// @description Основные возможности:
// @description - Отчет по координате с вердиктом и трендами
// @description - Станции качества воздуха и воды, загруженность перекрестков
// @description - Геокодирование через Nominatim и объекты OSM через Overpass
// @description - Сводка по области просмотра

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8001
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	_ "github.com/smartcity-dashboard/docs"
	"github.com/smartcity-dashboard/internal/config"
	httpDelivery "github.com/smartcity-dashboard/internal/delivery/http"
	"github.com/smartcity-dashboard/internal/delivery/http/handler"
	"github.com/smartcity-dashboard/internal/domain/repository"
	"github.com/smartcity-dashboard/internal/infrastructure/nominatim"
	"github.com/smartcity-dashboard/internal/infrastructure/overpass"
	"github.com/smartcity-dashboard/internal/pkg/logger"
	"github.com/smartcity-dashboard/internal/repository/cache"
	"github.com/smartcity-dashboard/internal/repository/filedata"
	"github.com/smartcity-dashboard/internal/usecase"
	"github.com/smartcity-dashboard/internal/worker"
	"github.com/smartcity-dashboard/internal/worker/snapshot"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Smart City Dashboard backend")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("data_dir", cfg.Data.Dir),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	// 3. Open data directory
	store, err := filedata.New(&cfg.Data, log)
	if err != nil {
		log.Fatal("Failed to open data directory", zap.Error(err))
	}

	healthCheckers := map[string]handler.HealthChecker{
		"data": store,
	}

	// 4. Connect to Redis (optional)
	var cacheRepo repository.CacheRepository
	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisClient)
		healthCheckers["redis"] = redisClient
		log.Info("Redis connected")
	} else {
		cacheRepo = cache.NewNoopCacheRepository()
		log.Info("Redis disabled, caching is off")
	}

	// 5. Initialize Repositories
	clock := clockwork.NewRealClock()

	environmentRepo := filedata.NewEnvironmentRepository(store, log)
	trafficRepo := filedata.NewTrafficRepository(store, clock, log)
	geocoder := nominatim.NewNominatimClient(&cfg.Nominatim, log)
	placesRepo := overpass.NewPlacesRepository(&cfg.Overpass, log)

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	probeUC := usecase.NewProbeUseCase(
		trafficRepo,
		geocoder,
		clock,
		usecase.NewClockJitterSource(clock),
		cfg.Probe.GeocodeTimeout,
		log,
	)

	geocodeUC := usecase.NewGeocodeUseCase(
		geocoder,
		placesRepo,
		cacheRepo,
		cfg.Cache.SearchCacheTTL,
		cfg.Cache.PlacesCacheTTL,
		cfg.Overpass.DefaultCity,
		log,
	)

	datasetUC := usecase.NewDatasetUseCase(environmentRepo, trafficRepo, log)
	analyticsUC := usecase.NewAnalyticsUseCase(environmentRepo, log)

	log.Info("Use cases initialized")

	// 7. Start background workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var workerManager *worker.WorkerManager
	if cfg.Worker.Enabled {
		workerManager = worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)
		workerManager.Register(snapshot.NewRefreshWorker(
			trafficRepo,
			clock,
			cfg.Worker.SnapshotRefreshInterval,
			log,
		))

		if err := workerManager.Start(ctx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

	// 8. Initialize HTTP Handlers
	healthHandler := handler.NewHealthHandler(healthCheckers, log)
	probeHandler := handler.NewProbeHandler(probeUC, log)
	geocodeHandler := handler.NewGeocodeHandler(geocodeUC, log)
	dataHandler := handler.NewDataHandler(datasetUC, log)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		healthHandler,
		probeHandler,
		geocodeHandler,
		dataHandler,
		analyticsHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	cancel()
	if workerManager != nil {
		if err := workerManager.Stop(); err != nil {
			log.Error("Failed to stop workers", zap.Error(err))
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
