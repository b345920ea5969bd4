package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/zapgo-backend/internal/infrastructure/middleware"
)

type Router struct {
	engine          *gin.Engine
	stationHandler  *handler.StationHandler
	locationHandler *handler.LocationHandler
	viewportHandler *handler.ViewportHandler
	screenHandler   *handler.ScreenHandler
	eventsHandler   *handler.EventsHandler
	rateLimiter     *middleware.RateLimiter
	logger          *zap.Logger
}

type RouterConfig struct {
	StationHandler  *handler.StationHandler
	LocationHandler *handler.LocationHandler
	ViewportHandler *handler.ViewportHandler
	ScreenHandler   *handler.ScreenHandler
	EventsHandler   *handler.EventsHandler
	// RateLimiter guards fix ingestion. Nil disables limiting.
	RateLimiter *middleware.RateLimiter
	Logger      *zap.Logger
	Environment string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:          engine,
		stationHandler:  cfg.StationHandler,
		locationHandler: cfg.LocationHandler,
		viewportHandler: cfg.ViewportHandler,
		screenHandler:   cfg.ScreenHandler,
		eventsHandler:   cfg.EventsHandler,
		rateLimiter:     cfg.RateLimiter,
		logger:          cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	{
		stations := api.Group("/stations")
		{
			stations.GET("", r.stationHandler.List)
			stations.GET("/nearest", r.stationHandler.Nearest)
			stations.GET("/:id", r.stationHandler.Get)
		}

		loc := api.Group("/location")
		{
			loc.GET("", r.locationHandler.Get)
			loc.POST("/start", r.locationHandler.Start)
			loc.POST("/stop", r.locationHandler.Stop)

			fixes := []gin.HandlerFunc{r.locationHandler.PushFixes}
			if r.rateLimiter != nil {
				fixes = append([]gin.HandlerFunc{r.rateLimiter.Limit()}, fixes...)
			}
			loc.POST("/fixes", fixes...)
		}

		viewport := api.Group("/viewport")
		{
			viewport.GET("", r.viewportHandler.Get)
			viewport.PUT("", r.viewportHandler.Set)
			viewport.DELETE("/override", r.viewportHandler.Release)
			viewport.POST("/focus-stations", r.viewportHandler.FocusStations)
		}

		screen := api.Group("/screen")
		{
			screen.GET("", r.screenHandler.Get)
			screen.PUT("", r.screenHandler.Navigate)
		}

		api.GET("/events", r.eventsHandler.Stream)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
