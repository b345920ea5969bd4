package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/platform"
	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/platform/push"
	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/platform/simulated"
	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/repository/memory"
	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/entity"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/zapgo-backend/internal/infrastructure/cache"
	"github.com/marcos-nsantos/zapgo-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/zapgo-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/zapgo-backend/internal/infrastructure/events"
	"github.com/marcos-nsantos/zapgo-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/zapgo-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/zapgo-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/clock"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/dispatch"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/location"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/mapview"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/navigation"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/station"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/viewport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queue := dispatch.NewQueue(logger)
	defer queue.Close()
	clk := clock.NewReal()

	// Location source
	var (
		source platform.LocationService
		sink   handler.FixSink
	)
	switch cfg.Location.Source {
	case config.LocationSourceSimulated:
		source = simulated.NewSource(simulated.Config{
			Interval:          cfg.Location.SimulatedInterval,
			BatchSize:         cfg.Location.SimulatedBatch,
			PermissionGranted: cfg.Location.PermissionGranted,
		}, clk, logger)
	default:
		pushSource := push.NewSource(cfg.Location.PermissionGranted, logger)
		source, sink = pushSource, pushSource
	}

	// Station store
	var stationRepo repository.StationRepository
	switch cfg.Stations.Store {
	case config.StationStorePostgres:
		pool, err := database.NewPostgresPool(ctx, cfg.Database, logger)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		if err := database.RunMigrations(ctx, pool, cfg.Database.MigrationsPath); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		pgRepo := postgres.NewStationRepo(pool)
		if err := pgRepo.Seed(ctx, entity.DefaultStations()); err != nil {
			logger.Fatal("failed to seed stations", zap.Error(err))
		}
		stationRepo = pgRepo
	default:
		stationRepo = memory.NewStationRepo(entity.DefaultStations())
	}

	// Core
	defaultRegion, err := valueobject.NewMapRegion(
		valueobject.NewCoordinate(cfg.Viewport.DefaultLatitude, cfg.Viewport.DefaultLongitude),
		valueobject.NewSpan(cfg.Viewport.SpanLatitude, cfg.Viewport.SpanLongitude),
	)
	if err != nil {
		logger.Fatal("invalid default viewport", zap.Error(err))
	}
	controller, err := viewport.NewController(viewport.Config{
		DefaultRegion: defaultRegion,
		OverrideTTL:   cfg.Viewport.OverrideTTL,
	}, clk, logger)
	if err != nil {
		logger.Fatal("failed to create viewport controller", zap.Error(err))
	}
	tracker := location.NewTracker(source, queue, logger)
	defer tracker.Stop()

	broadcaster := events.NewBroadcaster(logger)
	defer broadcaster.Close()

	// Use cases
	session := mapview.NewSession(tracker, controller, stationRepo, queue, broadcaster, logger)
	stationSvc := station.NewService(stationRepo, session, tracker)
	navigator := navigation.NewNavigator(session, logger)

	// Middleware
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, logger)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		StationHandler:  handler.NewStationHandler(stationSvc),
		LocationHandler: handler.NewLocationHandler(session, sink),
		ViewportHandler: handler.NewViewportHandler(session),
		ScreenHandler:   handler.NewScreenHandler(navigator),
		EventsHandler:   handler.NewEventsHandler(broadcaster, session),
		RateLimiter:     rateLimiter,
		Logger:          logger,
		Environment:     cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		// Event streams only end when the broadcaster closes.
		broadcaster.Close()
		return srv.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return
	}

	logger.Info("server stopped")
}
