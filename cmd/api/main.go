// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/agrovia/farmconnect/internal/admin"
	"github.com/agrovia/farmconnect/internal/auth"
	"github.com/agrovia/farmconnect/internal/claim"
	"github.com/agrovia/farmconnect/internal/config"
	"github.com/agrovia/farmconnect/internal/core"
	"github.com/agrovia/farmconnect/internal/crop"
	"github.com/agrovia/farmconnect/internal/dashboard"
	"github.com/agrovia/farmconnect/internal/field"
	"github.com/agrovia/farmconnect/internal/health"
	"github.com/agrovia/farmconnect/internal/middleware"
	"github.com/agrovia/farmconnect/internal/prediction"
	"github.com/agrovia/farmconnect/internal/scheme"
	"github.com/agrovia/farmconnect/internal/server"
	"github.com/agrovia/farmconnect/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)
	core.SetDebugMode(cfg.IsDevelopment())

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if err := core.ApplySchema(ctx, db.DB); err != nil {
		return err
	}
	logger.Info("schema applied")

	var rds *core.Redis
	if cfg.Redis.URL != "" {
		rds, err = core.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, continuing without it",
				"error", err,
			)
			rds = nil
		} else {
			logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
		}
	}

	if err := ensureKeyPair(cfg.JWT, logger); err != nil {
		return err
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
	)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	authSvc := auth.NewService(jwtManager, userSvc, cfg.JWT.TokenExpire)
	authHandler := auth.NewHandler(authSvc)

	fieldRepo := field.NewRepository(db.DB)
	fieldSvc := field.NewService(fieldRepo)
	fieldHandler := field.NewHandler(fieldSvc)

	cropRepo := crop.NewRepository(db.DB)
	cropSvc := crop.NewService(cropRepo, fieldSvc)
	cropHandler := crop.NewHandler(cropSvc)

	claimRepo := claim.NewRepository(db.DB)
	claimSvc := claim.NewService(claimRepo)
	claimHandler := claim.NewHandler(claimSvc)

	schemeRepo := scheme.NewRepository(db.DB)
	schemeSvc := scheme.NewService(schemeRepo)
	schemeHandler := scheme.NewHandler(schemeSvc)

	predictionRepo := prediction.NewRepository(db.DB)
	predictionSvc := prediction.NewService(
		predictionRepo,
		cropSvc,
		fieldSvc,
		prediction.NewBaselineEstimator(),
	)
	predictionHandler := prediction.NewHandler(predictionSvc)

	dashboardRepo := dashboard.NewRepository(db.DB)
	dashboardHandler := dashboard.NewHandler(dashboardRepo)

	var redisChecker health.Checker
	if rds != nil {
		redisChecker = rds
	}
	healthHandler := health.NewHandler(db, redisChecker, cfg.App.Version)

	adminCfg := admin.HandlerConfig{
		DB:      db.DB,
		DBStats: db.Stats,
		DBPing:  db.Ping,
	}
	if rds != nil {
		adminCfg.RedisStats = rds.PoolStats
		adminCfg.RedisPing = rds.Ping
	}
	adminHandler := admin.NewHandler(adminCfg)

	srv := server.New(server.Config{
		ServerConfig: cfg.Server,
		Marker:       healthHandler,
		Logger:       logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))

	var rateLimitClient *redis.Client
	if rds != nil {
		rateLimitClient = rds.Client
	}
	router.Use(
		middleware.NewRateLimiter(rateLimitClient, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	authenticator := middleware.Authenticator(jwtManager)
	governmentOnly := middleware.RequireUserType(user.RoleGovernment)

	router.Route("/api", func(r chi.Router) {
		healthHandler.RegisterAPIRoutes(r)
		schemeHandler.RegisterRoutes(r)

		authHandler.RegisterRoutes(r, authenticator)
		userHandler.RegisterRoutes(r, authenticator)
		fieldHandler.RegisterRoutes(r, authenticator)
		cropHandler.RegisterRoutes(r, authenticator)
		claimHandler.RegisterRoutes(r, authenticator)
		predictionHandler.RegisterRoutes(r, authenticator)
		dashboardHandler.RegisterRoutes(r, authenticator)
		adminHandler.RegisterRoutes(r, authenticator, governmentOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if rds != nil {
		if err := rds.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

// ensureKeyPair generates the ES256 keypair on first boot so a fresh
// deployment comes up without manual key provisioning.
func ensureKeyPair(cfg config.JWTConfig, logger *slog.Logger) error {
	if _, err := os.Stat(cfg.PrivateKeyPath); err == nil {
		return nil
	}

	logger.Info("generating JWT keypair",
		"private_key", cfg.PrivateKeyPath,
		"public_key", cfg.PublicKeyPath,
	)
	return auth.GenerateKeyPair(cfg.PrivateKeyPath, cfg.PublicKeyPath)
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
