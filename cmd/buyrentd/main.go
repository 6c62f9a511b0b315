package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/homequant/buyrent/cache"
	"github.com/homequant/buyrent/marketdata"
	"github.com/homequant/buyrent/server"
)

const (
	rateLimitPerMinute = 30
	cacheTTL           = 10 * time.Minute
)

func main() {
	logger, err := server.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg := server.ConfigFromEnv()

	var store cache.Cache = cache.NewMemory()
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedis(cfg.RedisAddr, cacheTTL)
		defer redisCache.Close()
		store = redisCache
		logger.Info("using redis response cache", zap.String("addr", cfg.RedisAddr))
	}

	feed := marketdata.DefaultFeed()
	if cfg.PostgresDSN != "" {
		pgFeed, err := marketdata.OpenPostgres(cfg.PostgresDSN)
		if err != nil {
			logger.Fatal("failed to open assumption feed", zap.Error(err))
		}
		defer pgFeed.Close()
		feed = pgFeed
		logger.Info("using postgres assumption feed")
	}

	limiter := server.NewRateLimiter(rateLimitPerMinute, time.Minute)
	defer limiter.Stop()

	handler := server.NewHandler(feed, store, logger)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler.Routes(limiter),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed", zap.Error(err))
		return
	case <-quit:
		logger.Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
