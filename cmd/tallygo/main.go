package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Bikash4JP/tally-for-mobile/internal/api"
	"github.com/Bikash4JP/tally-for-mobile/internal/app"
	"github.com/Bikash4JP/tally-for-mobile/internal/entry"
	"github.com/Bikash4JP/tally-for-mobile/internal/i18n"
	"github.com/Bikash4JP/tally-for-mobile/internal/journal"
	"github.com/Bikash4JP/tally-for-mobile/internal/reports"
	"github.com/Bikash4JP/tally-for-mobile/internal/store"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	var kv store.KV
	switch cfg.StorageBackend {
	case "memory":
		kv = store.NewMemoryKV()
	default:
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Error("redis ping", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
		kv = store.NewRedisKV(redisClient)
	}

	opts := store.Options{
		Namespace: cfg.StorageNamespace,
		Logger:    logger,
	}
	if cfg.SeedDemoEntries {
		opts.SeedTransactions = journal.DemoTransactions()
	}
	st, err := store.Open(ctx, kv, opts)
	if err != nil {
		logger.Error("open store", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("books loaded",
		slog.Int("ledgers", st.Registry().Len()),
		slog.Int("transactions", st.Journal().Len()))

	entries := entry.NewService(st.Registry(), st.Journal())
	reportSvc := reports.NewService(st)
	apiHandler := api.NewHandler(logger, st, entries, reportSvc, i18n.ParseLanguage(cfg.DefaultLanguage))

	router := app.NewRouter(app.RouterParams{
		Logger:     logger,
		Config:     cfg,
		APIHandler: apiHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
