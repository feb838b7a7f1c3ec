package storage

import (
	"context"
	"time"

	"housing-reviews/agg-svc/internal/domain"
	"housing-reviews/agg-svc/internal/service"

	"github.com/redis/go-redis/v9"
)

const (
	TopRatedKey = "analytics:top_rated"
	statsTTL    = 24 * time.Hour
	dailyTTL    = 7 * 24 * time.Hour
)

func StatsKey(housingID string) string {
	return "housing:" + housingID + ":stats"
}

func DailyKey(day time.Time) string {
	return "analytics:daily:" + day.UTC().Format("2006-01-02")
}

type Store struct {
	rdb *redis.Client
	now func() time.Time
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, now: time.Now}
}

// MirrorStats copies the committed snapshot carried by the event.
func (s *Store) MirrorStats(ctx context.Context, event domain.ReviewEvent) error {
	key := StatsKey(event.HousingID)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"avg_rating":   event.AvgRating,
			"review_count": event.ReviewCount,
			"last_updated": s.now().Unix(),
		})
		pipe.Expire(ctx, key, statsTTL)
		return nil
	})
	return err
}

// UpdateAnalytics bumps today's review counter on creation and keeps the
// top rated set in step with the listing's average.
func (s *Store) UpdateAnalytics(ctx context.Context, event domain.ReviewEvent) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if event.Type == domain.EventReviewCreated {
			day := event.Timestamp
			if day.IsZero() {
				day = s.now()
			}
			dailyKey := DailyKey(day)
			pipe.ZIncrBy(ctx, dailyKey, 1, event.HousingID)
			pipe.Expire(ctx, dailyKey, dailyTTL)
		}

		if event.ReviewCount > 0 {
			pipe.ZAdd(ctx, TopRatedKey, redis.Z{Score: event.AvgRating, Member: event.HousingID})
		} else {
			pipe.ZRem(ctx, TopRatedKey, event.HousingID)
		}
		return nil
	})
	return err
}

var _ service.StoreInterface = (*Store)(nil)
