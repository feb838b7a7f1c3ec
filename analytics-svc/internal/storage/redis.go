package storage

import (
	"context"
	"strconv"
	"time"

	"housing-reviews/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const topRatedKey = "analytics:top_rated"

type RedisBoards struct {
	Client *redis.Client
}

func NewRedisBoards(client *redis.Client) *RedisBoards {
	return &RedisBoards{Client: client}
}

func (b *RedisBoards) TopRated(ctx context.Context, limit int) ([]domain.Score, error) {
	return b.top(ctx, topRatedKey, limit)
}

func (b *RedisBoards) Trending(ctx context.Context, day time.Time, limit int) ([]domain.Score, error) {
	return b.top(ctx, "analytics:daily:"+day.UTC().Format("2006-01-02"), limit)
}

func (b *RedisBoards) top(ctx context.Context, key string, limit int) ([]domain.Score, error) {
	members, err := b.Client.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	scores := make([]domain.Score, 0, len(members))
	for _, m := range members {
		id, ok := m.Member.(string)
		if !ok {
			continue
		}
		scores = append(scores, domain.Score{HousingID: id, Value: m.Score})
	}
	return scores, nil
}

// Stats returns nil without error when the mirror has no entry.
func (b *RedisBoards) Stats(ctx context.Context, housingID string) (*domain.HousingStats, error) {
	fields, err := b.Client.HGetAll(ctx, "housing:"+housingID+":stats").Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	avg, err := strconv.ParseFloat(fields["avg_rating"], 64)
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(fields["review_count"])
	if err != nil {
		return nil, err
	}
	stats := &domain.HousingStats{HousingID: housingID, AvgRating: avg, ReviewCount: count}
	if unix, err := strconv.ParseInt(fields["last_updated"], 10, 64); err == nil {
		updated := time.Unix(unix, 0).UTC()
		stats.LastUpdated = &updated
	}
	return stats, nil
}
