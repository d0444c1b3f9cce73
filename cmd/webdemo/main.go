package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nsm-dev/webdemo/internal/application/message"
	"github.com/nsm-dev/webdemo/internal/config"
	eventsmemory "github.com/nsm-dev/webdemo/pkg/adapters/events/memory"
	"github.com/nsm-dev/webdemo/pkg/adapters/metrics/prometheus"
	storagememory "github.com/nsm-dev/webdemo/pkg/adapters/storage/memory"
	storageredis "github.com/nsm-dev/webdemo/pkg/adapters/storage/redis"
	"github.com/nsm-dev/webdemo/pkg/api/http"
	"github.com/nsm-dev/webdemo/pkg/api/websocket"
	apiports "github.com/nsm-dev/webdemo/pkg/ports"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting demo server",
		zap.String("project", cfg.ProjectName),
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	// Listen ports: hardcoded defaults overlaid by the nsm ports file
	listen, err := config.LoadPorts(cfg.PortsFile)
	if err != nil {
		logger.Warn("failed to load port overrides, using defaults", zap.Error(err))
	} else {
		logger.Info("using nsm port configuration",
			zap.Int("http", listen.HTTP),
			zap.Int("https", listen.HTTPS),
			zap.String("host", listen.Host))
	}

	// Initialize message history store
	var store apiports.MessageStore
	var redisClient *goredis.Client

	switch cfg.Store.Backend {
	case "redis":
		redisClient = goredis.NewClient(&goredis.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			MaxRetries:   cfg.Redis.MaxRetries,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("failed to connect to Redis", zap.Error(err))
		}
		logger.Info("connected to Redis", zap.String("addr", cfg.Redis.Addr))

		store = storageredis.NewMessageStore(redisClient, cfg.Store.HistorySize, cfg.Store.TTL, logger)
	default:
		store = storagememory.NewMessageStore(cfg.Store.HistorySize)
	}

	// Initialize adapters and application components
	eventBus := eventsmemory.NewEventBus()
	metricsCollector := prometheus.NewCollector()
	processor := message.NewProcessor(store, eventBus, metricsCollector, logger)

	// Initialize API server
	httpServer := http.NewServer(&http.Config{
		Addr:        listen.Addr(),
		ProjectName: cfg.ProjectName,
		Domain:      cfg.Domain,
		Version:     cfg.Version,
		NSMEnabled:  cfg.NSMEnabled(),
		StaticDir:   cfg.StaticDir,
		Processor:   processor,
		Store:       store,
		Metrics:     metricsCollector,
		Logger:      logger,
	})

	wsHandler := websocket.NewHandler(eventBus, metricsCollector, logger)
	httpServer.SetupWebSocket(wsHandler)

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("demo server started",
		zap.String("addr", listen.Addr()),
		zap.String("domain", cfg.Domain),
		zap.Bool("nsm_enabled", cfg.NSMEnabled()),
		zap.String("store_backend", cfg.Store.Backend))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	if err := eventBus.Close(); err != nil {
		logger.Error("event bus close error", zap.Error(err))
	}

	if err := store.Close(); err != nil {
		logger.Error("message store close error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Redis close error", zap.Error(err))
		}
	}

	logger.Info("demo server shut down complete")
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
