package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mediavault/instafetch/internal/api"
	"github.com/mediavault/instafetch/internal/cache"
	"github.com/mediavault/instafetch/internal/config"
	"github.com/mediavault/instafetch/internal/guard"
	"github.com/mediavault/instafetch/internal/handler"
	"github.com/mediavault/instafetch/internal/httpx"
	"github.com/mediavault/instafetch/internal/logger"
	"github.com/mediavault/instafetch/internal/mailer"
	"github.com/mediavault/instafetch/internal/pipeline"
	"github.com/mediavault/instafetch/internal/ratelimit"
	"github.com/mediavault/instafetch/internal/resolver"
	"github.com/mediavault/instafetch/internal/stream"
	"github.com/mediavault/instafetch/internal/telemetry"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Initialize logger
	log, err := createLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	// Open the resolution cache
	store, err := openCache(cfg, log)
	if err != nil {
		log.Error("Failed to open cache", logger.Error(err))
		return 1
	}
	defer func() { _ = store.Close() }()

	// Run server
	return runServer(cfg, log, store)
}

// loadConfig loads and validates configuration.
func loadConfig() (*config.Config, error) {
	configPath := config.GetConfigPath("config.yml")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if validationErr := cfg.Validate(); validationErr != nil {
		return nil, fmt.Errorf("validate config: %w", validationErr)
	}
	return cfg, nil
}

// createLogger creates a logger instance from configuration.
func createLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(logger.String("service", cfg.Service.Name)), nil
}

// openCache selects the cache backend from configuration.
func openCache(cfg *config.Config, log logger.Logger) (cache.Store, error) {
	if cfg.Cache.Backend == "redis" {
		store, err := cache.NewRedisStore(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB, log)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		log.Info("Resolution cache connected",
			logger.String("backend", "redis"),
			logger.String("addr", cfg.Cache.RedisAddr),
		)
		return store, nil
	}

	log.Info("Resolution cache ready", logger.String("backend", "memory"))
	return cache.NewMemoryStore(), nil
}

// runServer creates all dependencies and starts the HTTP server.
func runServer(cfg *config.Config, log logger.Logger, store cache.Store) int {
	metrics := telemetry.NewProvider()

	// Per-client resolution rate limiter with background bucket cleanup
	limiter := ratelimit.New(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	done := make(chan struct{})
	defer close(done)
	limiter.StartGC(cfg.RateLimit.GCInterval, done)

	res := resolver.New(resolver.Options{
		HTTPClient:        httpx.NewClient(cfg.Upstream.Timeout),
		BaseURL:           cfg.Upstream.BaseURL,
		UserAgent:         cfg.Upstream.UserAgent,
		MaxConcurrent:     cfg.Upstream.MaxConcurrent,
		RequestsPerSecond: cfg.Upstream.RequestsPerSecond,
		Logger:            log,
	})

	pipe := pipeline.New(pipeline.Options{
		Cache:         store,
		Limiter:       limiter,
		Resolver:      res,
		CacheTTL:      cfg.Cache.TTL,
		RetryAttempts: cfg.Upstream.RetryAttempts,
		RetryDelay:    cfg.Upstream.RetryDelay,
		Metrics:       metrics.Metrics,
		Logger:        log,
	})

	gateway := stream.New(httpx.NewStreamingClient(cfg.Upstream.Timeout), log)
	hostGuard := guard.New(cfg.Upstream.AllowedHosts)

	mail := mailer.New(mailer.Options{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		To:       cfg.SMTP.To,
		Logger:   log,
	})

	handlers := api.Handlers{
		Health:  handler.NewHealthHandler(cfg.Service.Version),
		Resolve: handler.NewResolveHandler(pipe, log),
		Media:   handler.NewMediaHandler(hostGuard, gateway, metrics.Metrics, log),
		Contact: handler.NewContactHandler(mail, log),
	}

	server := api.NewServer(cfg.Service.Port, cfg.Service.Debug, log, func(router *gin.Engine) {
		api.SetupRoutes(router, handlers, metrics)
	})

	log.Info("Instafetch starting",
		logger.Int("port", cfg.Service.Port),
		logger.String("cache_backend", cfg.Cache.Backend),
	)

	if err := server.Run(); err != nil {
		log.Error("Server error", logger.Error(err))
		return 1
	}

	log.Info("Instafetch exited cleanly")
	return 0
}
