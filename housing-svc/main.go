package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"housing-reviews/config"
	httpapi "housing-reviews/housing-svc/internal/api/http"
	"housing-reviews/housing-svc/internal/service"
	"housing-reviews/housing-svc/internal/storage"
	"housing-reviews/logger"
)

const imagePurgeInterval = 24 * time.Hour

func main() {
	cfg := config.Load("housing-svc")
	logger.Init(cfg.Log)

	if cfg.JWT.Secret == "" {
		logger.Fatal(logger.EventServiceStartup, "JWT_SECRET must be set", nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(cfg.Postgres)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Fatal(logger.EventDBError, "failed to ensure schema", logger.Fields("error", err.Error()))
	}

	redisClient := config.MustInitRedis(cfg.Redis)
	defer redisClient.Close()
	cache := storage.NewRedisCache(redisClient, cfg.Redis.CacheTTL)

	writer := config.NewKafkaWriter(cfg.Kafka, cfg.Kafka.ReviewsTopic)
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	objects := storage.NewMinioStore(config.MustInitMinio(cfg.MinIO), cfg.MinIO.Bucket, cfg.MinIO.PublicBaseURL)

	var mailer service.Mailer
	if cfg.SMTP.Host != "" {
		mailer = storage.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	} else {
		logger.Warn(logger.EventServiceStartup, "SMTP_HOST not set, verification codes will not be mailed", nil)
	}

	reviewer := service.NewAggregateReviewer(storage.NewCompletionClient(cfg.Summarizer, nil))
	tokens := service.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	imageService := service.NewImageService(repo, repo, objects)
	go imageService.RunPurgeSchedule(ctx, imagePurgeInterval)

	handler := httpapi.NewHandler(
		service.NewUserService(repo, tokens, mailer),
		service.NewHousingService(repo, cache, service.DefaultQRGenerator{BaseURL: cfg.HTTP.PublicBaseURL}),
		service.NewReviewService(repo, repo, reviewer, cache, publisher),
		service.NewPostService(repo),
		imageService,
		service.NewFavoriteService(repo, repo, repo),
		tokens,
	)

	if err := httpapi.StartServer(ctx, cfg.HTTP.Addr, httpapi.NewRouter(handler)); err != nil {
		logger.Fatal(logger.EventServiceShutdown, "http server failed", logger.Fields("error", err.Error()))
	}
}
