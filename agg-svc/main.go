package main

import (
	"context"
	"os/signal"
	"syscall"

	"housing-reviews/agg-svc/internal/service"
	"housing-reviews/agg-svc/internal/storage"
	"housing-reviews/config"
	"housing-reviews/logger"
)

func main() {
	cfg := config.Load("agg-svc")
	logger.Init(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.Kafka, cfg.Kafka.ReviewsTopic, cfg.Kafka.ConsumerGroup)
	defer reader.Close()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb))
	consumer.Start(ctx)
}
