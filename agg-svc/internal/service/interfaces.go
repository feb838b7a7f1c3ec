package service

import (
	"context"

	"housing-reviews/agg-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	MirrorStats(ctx context.Context, event domain.ReviewEvent) error
	UpdateAnalytics(ctx context.Context, event domain.ReviewEvent) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessReview(ctx context.Context, event domain.ReviewEvent)
}

var _ ConsumerInterface = (*Consumer)(nil)
