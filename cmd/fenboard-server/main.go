package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/park285/fen-board/internal/cache"
	appcfg "github.com/park285/fen-board/internal/config"
	"github.com/park285/fen-board/internal/fen"
	"github.com/park285/fen-board/internal/httpapi"
	"github.com/park285/fen-board/internal/obslog"
)

func main() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := obslog.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	var opts []fen.Option
	if cfg.StrictRanks {
		opts = append(opts, fen.WithStrictRanks())
	}

	// Board cache (Redis optional)
	var store *cache.Store
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := cache.NewClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			logger.Fatal("redis init error", zap.Error(err))
		}
		defer func() { _ = rdb.Close() }()
		store = cache.NewStore(rdb, cfg.CacheTTL())
	} else {
		logger.Info("REDIS_URL not set, board cache disabled")
	}

	decoder := cache.NewDecoder(fen.NewDecoder(opts...), store, logger)
	srv := httpapi.NewServer(decoder,
		httpapi.WithLogger(logger),
		httpapi.WithTimeouts(cfg.ReadTimeout, cfg.WriteTimeout),
	)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe(cfg.ListenAddr) }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("http server error", zap.Error(err))
		}
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("shutdown error", zap.Error(err))
	}
}
