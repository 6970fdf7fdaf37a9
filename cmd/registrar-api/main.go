package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/registrar-mock-api/api/swagger"
	"github.com/noah-isme/registrar-mock-api/internal/handler"
	"github.com/noah-isme/registrar-mock-api/internal/middleware"
	"github.com/noah-isme/registrar-mock-api/internal/repository"
	"github.com/noah-isme/registrar-mock-api/internal/service"
	"github.com/noah-isme/registrar-mock-api/pkg/cache"
	"github.com/noah-isme/registrar-mock-api/pkg/config"
	"github.com/noah-isme/registrar-mock-api/pkg/jobs"
	"github.com/noah-isme/registrar-mock-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/registrar-mock-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/registrar-mock-api/pkg/middleware/requestid"
)

// @title Registrar Partner API (mock)
// @version 0.1.0
// @description Fixture-backed partner integration API for program enrollment testing
// @BasePath /api/v0
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

	store, err := repository.NewFixtureStore(cfg.Fixtures.File)
	if err != nil {
		logr.Sugar().Fatalw("failed to load registry fixtures", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, continuing without cache", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(client, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, true)
		}
	}

	validate := validator.New()

	tokenSvc := service.NewTokenService(service.TokenConfig{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		Expiry:         cfg.JWT.Expiration,
		PartnerKeyHash: cfg.JWT.PartnerKeyHash,
	}, validate, logr)

	programSvc := service.NewProgramService(store, cacheSvc, logr)
	enrollmentSvc := service.NewEnrollmentService(store, cfg.Enrollments.MaxBatchSize, validate, metricsSvc, logr)
	exportSvc := service.NewExportService(programSvc, logr)

	auditQueue := jobs.NewQueue("enrollment-audit", auditHandler(logr), jobs.QueueConfig{
		Workers:    cfg.Audit.Workers,
		BufferSize: cfg.Audit.BufferSize,
		MaxRetries: cfg.Audit.MaxRetries,
		Logger:     logr,
	})
	auditQueue.Start(context.Background())
	defer auditQueue.Stop()

	authHandler := handler.NewAuthHandler(tokenSvc)
	programHandler := handler.NewProgramHandler(programSvc, exportSvc)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc, auditQueue, logr)

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
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/token", authHandler.Token)

	protected := api.Group("")
	protected.Use(middleware.JWT(tokenSvc))
	protected.GET("/programs", programHandler.List)
	protected.GET("/programs/:program_key", programHandler.Retrieve)
	protected.GET("/programs/:program_key/courses", programHandler.ListCourses)
	protected.GET("/programs/:program_key/courses/export", programHandler.ExportCourses)
	protected.POST("/programs/:program_key/enrollments", enrollmentHandler.Create)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// auditHandler dumps enrollment batch outcomes to the log, standing in for a
// real audit sink.
func auditHandler(logr *zap.Logger) jobs.Handler {
	return func(ctx context.Context, job jobs.Job) error {
		logr.Debug("enrollment audit",
			zap.String("job_id", job.ID),
			zap.String("type", job.Type),
			zap.Any("payload", job.Payload),
		)
		return nil
	}
}
