package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"editorial-workflow/internal/audit"
	"editorial-workflow/internal/config"
	"editorial-workflow/internal/handler"
	"editorial-workflow/internal/infrastructure/database"
	"editorial-workflow/internal/logger"
	"editorial-workflow/internal/metrics"
	"editorial-workflow/internal/middleware"
	"editorial-workflow/internal/repository"
	"editorial-workflow/internal/service"
	"editorial-workflow/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	articleRepo := repository.NewPostgresArticleRepository(pool)
	accountRepo := repository.NewPostgresAccountRepository(pool)
	auditRepo := repository.NewPostgresAuditRepository(pool)

	// Initialize audit recorder with background retry
	recorder := audit.NewRecorder(auditRepo, audit.Options{
		QueueSize:     cfg.AuditRetryQueueSize,
		Workers:       cfg.AuditRetryWorkers,
		RetryInterval: cfg.AuditRetryInterval,
	})

	// Initialize workflow service
	workflow := service.NewWorkflow(
		articleRepo,
		accountRepo,
		auditRepo,
		recorder,
		validator.NewValidator(),
		cfg.AuditListCap,
	)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(workflow)
	accountHandler := handler.NewAccountHandler(workflow)
	auditHandler := handler.NewAuditHandler(workflow)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes; everything below requires a resolved actor
	v1 := router.Group("/api/v1", middleware.Actor())
	{
		articles := v1.Group("/articles")
		{
			articles.POST("", articleHandler.CreateArticle)
			articles.GET("", articleHandler.ListArticles)
			articles.GET("/:id", articleHandler.GetArticle)
			articles.PATCH("/:id", articleHandler.UpdateArticle)
			articles.DELETE("/:id", articleHandler.DeleteArticle)
			articles.POST("/:id/submit", articleHandler.SubmitArticle)
			articles.POST("/:id/review", articleHandler.ReviewArticle)
			articles.POST("/:id/publish", articleHandler.PublishArticle)
		}

		v1.PUT("/accounts/:id/role", accountHandler.UpdateRole)
		v1.GET("/audit", auditHandler.ListAuditEntries)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Stop the audit retry workers before the pool goes away
	logger.Info("Closing audit recorder")
	recorder.Close()

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
