package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/inventory-service/internal/config"
	"github.com/rogerio-castellano/inventory-service/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-service/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-service/internal/http/router"
	"github.com/rogerio-castellano/inventory-service/internal/inventory"
	"github.com/rogerio-castellano/inventory-service/internal/logger"
	"github.com/rogerio-castellano/inventory-service/internal/redissvc"
	"github.com/rogerio-castellano/inventory-service/internal/repo"
	"go.uber.org/zap"
)

const (
	visitorCleanupInterval = time.Minute
	visitorMaxIdle         = 5 * time.Minute
	redisPingTimeout       = 3 * time.Second
)

func run(ctx context.Context, cfg config.Config) error {
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	productRepo := repo.NewInMemoryProductRepository()
	movementRepo := repo.NewInMemoryMovementRepository()

	opts := []inventory.Option{
		inventory.WithLogger(log),
		inventory.WithLowStockThreshold(cfg.Inventory.LowStockThreshold),
		inventory.WithMetricsRepository(repo.NewInMemoryMetricsRepository(productRepo, movementRepo)),
	}

	var activity handlers.ActivityReader
	if cfg.Redis.Addr != "" {
		redisService, err := connectRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisService.Close()

		opts = append(opts, inventory.WithPublisher(redisService))
		activity = redisService
		log.Info("activity log enabled", zap.String("redis_addr", cfg.Redis.Addr), zap.String("key", cfg.Redis.ActivityKey))
	}

	svc := inventory.NewService(productRepo, movementRepo, opts...)
	h := handlers.NewHandler(svc, activity, log)

	var limiter *rl.Limiter
	if cfg.RateLimit.Enabled {
		limiter = rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go limiter.StartVisitorCleanupLoop(ctx, visitorCleanupInterval, visitorMaxIdle)
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr(),
		Handler: router.NewRouter(h, log, router.Options{
			Limiter:           limiter,
			TrustProxyHeaders: cfg.Server.TrustProxyHeaders,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func connectRedis(ctx context.Context, cfg config.RedisConfig) (*redissvc.RedisService, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	rs := redissvc.NewRedisService(rdb, cfg.ActivityKey, cfg.MaxEntries)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := rs.Ping(pingCtx); err != nil {
		_ = rs.Close()
		return nil, fmt.Errorf("could not connect to Redis at %s: %w", cfg.Addr, err)
	}
	return rs, nil
}
