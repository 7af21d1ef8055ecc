package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/g-guevara/ramos-api/api/swagger"
	"github.com/g-guevara/ramos-api/internal/handler"
	"github.com/g-guevara/ramos-api/internal/middleware"
	"github.com/g-guevara/ramos-api/internal/repository"
	"github.com/g-guevara/ramos-api/internal/service"
	"github.com/g-guevara/ramos-api/pkg/cache"
	"github.com/g-guevara/ramos-api/pkg/config"
	"github.com/g-guevara/ramos-api/pkg/database"
	"github.com/g-guevara/ramos-api/pkg/logger"
	corsmiddleware "github.com/g-guevara/ramos-api/pkg/middleware/cors"
	reqidmiddleware "github.com/g-guevara/ramos-api/pkg/middleware/requestid"
)

// @title Ramos API
// @version 0.1.0
// @description Weekly class schedule planning engine
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Planner.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, planner cache disabled", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if redisClient != nil {
		cacheRepo = repository.NewCacheRepository(redisClient, logr)
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Planner.CacheTTL, logr, redisClient != nil)

	catalogRepo := repository.NewCatalogRepository(db)
	validate := validator.New()

	catalogSvc := service.NewCatalogService(catalogRepo, cacheSvc, validate, logr)
	plannerSvc := service.NewPlannerService(catalogRepo, cacheSvc, metricsSvc, logr, service.PlannerConfig{
		MaxAttempts:     cfg.Planner.MaxAttempts,
		MaxCombinations: cfg.Planner.MaxCombinations,
		CacheTTL:        cfg.Planner.CacheTTL,
	})
	exportSvc := service.NewExportService()

	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	plannerHandler := handler.NewPlannerHandler(plannerSvc, exportSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		catalogs := api.Group("/catalogs")
		{
			catalogs.POST("", catalogHandler.Import)
			catalogs.GET("", catalogHandler.List)
			catalogs.GET("/:id", catalogHandler.Get)
			catalogs.DELETE("/:id", catalogHandler.Delete)
		}

		planner := api.Group("/planner")
		{
			planner.POST("/preview", plannerHandler.Preview)
			planner.POST("/recommend", plannerHandler.Recommend)
			planner.POST("/combinations", plannerHandler.Combinations)
			planner.POST("/export", plannerHandler.Export)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
