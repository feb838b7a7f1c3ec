package service

import (
	"context"
	"encoding/json"
	"time"

	"housing-reviews/agg-svc/internal/domain"
	"housing-reviews/logger"
)

const readRetryDelay = time.Second

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads review events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	logger.Info(logger.EventServiceStartup, "starting review event consumer", nil)
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info(logger.EventServiceShutdown, "review event consumer stopped", nil)
				return
			}
			logger.Error(logger.EventConsume, "failed to read message", logger.Fields("error", err.Error()))
			select {
			case <-ctx.Done():
				return
			case <-time.After(readRetryDelay):
			}
			continue
		}

		var event domain.ReviewEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			logger.Warn(logger.EventConsume, "skipping malformed message", logger.Fields(
				"offset", message.Offset, "error", err.Error()))
			continue
		}

		c.ProcessReview(ctx, event)
	}
}

func (c *Consumer) ProcessReview(ctx context.Context, event domain.ReviewEvent) {
	if !event.Known() || event.HousingID == "" {
		return
	}

	if err := c.Store.MirrorStats(ctx, event); err != nil {
		logger.Error(logger.EventCacheError, "failed to mirror housing stats", logger.Fields(
			"housing_id", event.HousingID, "error", err.Error()))
		return
	}

	if err := c.Store.UpdateAnalytics(ctx, event); err != nil {
		logger.Error(logger.EventCacheError, "failed to update analytics", logger.Fields(
			"housing_id", event.HousingID, "error", err.Error()))
		return
	}

	logger.Info(logger.EventConsume, "processed review event", logger.Fields(
		"type", event.Type,
		"housing_id", event.HousingID,
		"avg_rating", event.AvgRating,
		"review_count", event.ReviewCount,
	))
}
