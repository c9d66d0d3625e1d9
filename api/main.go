package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-dashboard/internal/alert"
	"github.com/rogerio-castellano/inventory-dashboard/internal/analytics"
	"github.com/rogerio-castellano/inventory-dashboard/internal/auth"
	"github.com/rogerio-castellano/inventory-dashboard/internal/config"
	"github.com/rogerio-castellano/inventory-dashboard/internal/db"
	api "github.com/rogerio-castellano/inventory-dashboard/internal/http"
	"github.com/rogerio-castellano/inventory-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-dashboard/internal/inventory"
	"github.com/rogerio-castellano/inventory-dashboard/internal/logging"
	"github.com/rogerio-castellano/inventory-dashboard/internal/metrics"
	"github.com/rogerio-castellano/inventory-dashboard/internal/redissvc"
	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
)

//go:generate swag init --dir ../ --generalInfo api/main.go --output ../docs --parseInternal

const shutdownTimeout = 10 * time.Second

// @title Inventory Dashboard API
// @version 1.0
// @description Admin API for products, sales, stock alerts and inventory analytics.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "", "path to a config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting inventory dashboard", cfg.Fields()...)

	database, err := db.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx, database, "up"); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	m := metrics.New()
	analyticsCache, alerts, closeRedis := redisBackends(ctx, cfg, logger)
	// Must outlive srv.Shutdown: draining requests still invalidate the cache.
	defer closeRedis()

	products := repo.NewPostgresProductRepository(database, cfg.Database.Timeout)
	analyticsSvc := analytics.NewService(products, analyticsCache, cfg.Cache.TTL, logger.Named("analytics"))
	engine := inventory.NewEngine(products, logger.Named("inventory"),
		inventory.WithInvalidator(analyticsSvc),
		inventory.WithAlerts(alerts),
		inventory.WithMetrics(m),
	)

	issuer := auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	authSvc := auth.NewAuthService(repo.NewPostgresUserRepository(database, cfg.Database.Timeout), issuer)

	limiter := rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.StartCleanupLoop(ctx)

	router := api.NewRouter(api.Deps{
		Server:  handlers.NewServer(engine, analyticsSvc, authSvc, logger.Named("http"), cfg.IsProduction()),
		Issuer:  issuer,
		Limiter: limiter,
		Metrics: m,
		Log:     logger.Named("http"),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// redisBackends returns the analytics cache, the alert log and a func closing the client.
// Without Redis the cache is disabled and alerts are kept in memory.
func redisBackends(ctx context.Context, cfg *config.Config, logger *zap.Logger) (analytics.Cache, alert.Recorder, func()) {
	noop := func() {}
	if !cfg.Redis.Enabled {
		logger.Info("redis disabled, analytics cache off, alerts kept in memory")
		return nil, alert.NewMemoryRecorder(), noop
	}

	rdb, err := redissvc.Connect(ctx, cfg.Redis.Addr)
	if err != nil {
		logger.Warn("could not connect to redis, continuing without it",
			zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		return nil, alert.NewMemoryRecorder(), noop
	}

	rs := redissvc.NewRedisService(rdb)
	closeFn := func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("could not close redis client", zap.Error(err))
		}
	}
	return rs, alert.NewRedisRecorder(rs), closeFn
}
