package main

import (
	"context"
	"os/signal"
	"syscall"

	httpapi "housing-reviews/analytics-svc/internal/api/http"
	"housing-reviews/analytics-svc/internal/service"
	"housing-reviews/analytics-svc/internal/storage"
	"housing-reviews/config"
	"housing-reviews/logger"
)

func main() {
	cfg := config.Load("analytics-svc")
	logger.Init(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(cfg.Postgres)
	defer db.Close()

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	analytics := service.NewAnalyticsService(storage.NewRedisBoards(rdb), storage.NewPostgresReader(db))
	handler := httpapi.NewHandler(analytics)

	if err := httpapi.StartServer(ctx, cfg.HTTP.Addr, httpapi.NewRouter(handler)); err != nil {
		logger.Fatal(logger.EventServiceShutdown, "http server failed", logger.Fields("error", err.Error()))
	}
}
