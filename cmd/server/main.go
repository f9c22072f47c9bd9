package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fieldmap/backend/internal/application/importing"
	"github.com/fieldmap/backend/internal/application/schemafields"
	"github.com/fieldmap/backend/internal/infrastructure/cache"
	"github.com/fieldmap/backend/internal/infrastructure/config"
	"github.com/fieldmap/backend/internal/infrastructure/csvimport"
	"github.com/fieldmap/backend/internal/infrastructure/logger"
	"github.com/fieldmap/backend/internal/infrastructure/persistence"
	"github.com/fieldmap/backend/internal/interfaces/http/handler"
	"github.com/fieldmap/backend/internal/interfaces/http/middleware"
	"github.com/fieldmap/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Fieldmap Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	fieldRepo := persistence.NewGormSchemaFieldRepository(db.DB)
	agentRepo := persistence.NewGormAgentRepository(db.DB)

	// Mapping sessions live in Redis when configured, otherwise in process memory
	sessions := newSessionStore(cfg, log)
	defer sessions.Close()

	// Initialize application services
	sampler := csvimport.NewSampler(
		csvimport.WithMaxRows(cfg.Import.MaxSampleRows),
		csvimport.WithPreviewRows(cfg.Import.PreviewRows),
		csvimport.WithMaxColumns(cfg.Import.MaxColumns),
	)
	mappingService := importing.NewMappingService(fieldRepo, agentRepo, sessions, sampler, cfg.Import.SessionTTL, log)
	schemaFieldService := schemafields.NewService(fieldRepo, log)

	// Initialize HTTP handlers
	mappingHandler := handler.NewMappingHandler(mappingService)
	schemaFieldHandler := handler.NewSchemaFieldHandler(schemaFieldService)
	systemHandler := handler.NewSystemHandler(db, version)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health endpoints stay outside the tenant-scoped API group
	systemHandler.RegisterRoutes(engine)

	router.NewRouter(engine, router.WithGroupMiddleware(middleware.RequireTenant())).
		Register(mappingHandler).
		Register(schemaFieldHandler).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newSessionStore picks the mapping session backend. A configured Redis host
// is preferred; connection failures fall back to the in-memory store so the
// server still comes up in development.
func newSessionStore(cfg *config.Config, log *zap.Logger) cache.SessionStore {
	if cfg.Redis.Host == "" {
		log.Info("Using in-memory mapping session store")
		return cache.NewInMemorySessionStore()
	}

	store, err := cache.NewRedisSessionStore(cache.RedisOptions{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, falling back to in-memory session store",
			zap.String("addr", cfg.Redis.Addr()),
			zap.Error(err),
		)
		return cache.NewInMemorySessionStore()
	}

	log.Info("Using Redis mapping session store", zap.String("addr", cfg.Redis.Addr()))
	return store
}
