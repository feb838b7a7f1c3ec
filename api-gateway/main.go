package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"housing-reviews/api-gateway/internal/gateway"
	"housing-reviews/config"
	"housing-reviews/logger"

	"github.com/rs/cors"
)

func main() {
	cfg := config.Load("api-gateway")
	logger.Init(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gw := gateway.NewGateway(gateway.Config{
		HousingSvcURL:   cfg.Gateway.HousingSvcURL,
		AnalyticsSvcURL: cfg.Gateway.AnalyticsSvcURL,
	}, &http.Client{Timeout: 60 * time.Second})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           c.Handler(gw.SetupRoutes()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info(logger.EventServiceStartup, "api gateway listening", logger.Fields(
		"addr", cfg.HTTP.Addr,
		"housing_svc", cfg.Gateway.HousingSvcURL,
		"analytics_svc", cfg.Gateway.AnalyticsSvcURL,
	))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(logger.EventServiceShutdown, "api gateway failed", logger.Fields("error", err.Error()))
	}
	logger.Info(logger.EventServiceShutdown, "api gateway stopped", nil)
}
