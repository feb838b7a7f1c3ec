package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"housing-reviews/housing-svc/internal/domain"
	"housing-reviews/logger"

	"github.com/google/uuid"
)

type ReviewService struct {
	reviews   ReviewRepository
	housings  HousingRepository
	reviewer  *AggregateReviewer
	cache     HousingCache
	publisher ReviewPublisher
	now       func() time.Time
}

func NewReviewService(reviews ReviewRepository, housings HousingRepository, reviewer *AggregateReviewer, cache HousingCache, publisher ReviewPublisher) *ReviewService {
	return &ReviewService{
		reviews:   reviews,
		housings:  housings,
		reviewer:  reviewer,
		cache:     cache,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a review and folds it into the housing's rating and summary.
// All three writes commit together or not at all.
func (s *ReviewService) Create(ctx context.Context, housingID string, userID int64, content string, rating float64) (*domain.Review, error) {
	review := &domain.Review{
		ID:        uuid.NewString(),
		HousingID: housingID,
		UserID:    userID,
		Content:   content,
		Rating:    domain.ClampRating(rating),
		Timestamp: s.now(),
		LikedBy:   []int64{},
	}

	var result domain.ReviewMutationResult
	err := s.reviews.WithHousingLock(ctx, housingID, func(tx ReviewTx, housing domain.Housing) error {
		existing, err := tx.ListReviews(ctx)
		if err != nil {
			return err
		}

		result.Stats = housing.Stats().WithReviewAdded(review.Rating)
		result.AggregateReview, err = s.reviewer.AfterAdd(ctx, housing.AggregateReview, existing, review.Content)
		if err != nil {
			return err
		}

		if err := tx.InsertReview(ctx, review); err != nil {
			return err
		}
		return tx.SaveAggregates(ctx, result)
	})
	if err != nil {
		return nil, s.mutationFailed("create", housingID, err)
	}

	s.afterCommit(ctx, domain.EventReviewCreated, review, result.Stats)
	return review, nil
}

// Delete removes the caller's review and reverses its effect on the housing.
func (s *ReviewService) Delete(ctx context.Context, housingID, reviewID string, userID int64) (*domain.Review, error) {
	var (
		deleted *domain.Review
		result  domain.ReviewMutationResult
	)
	err := s.reviews.WithHousingLock(ctx, housingID, func(tx ReviewTx, housing domain.Housing) error {
		review, err := tx.GetReview(ctx, reviewID)
		if err != nil {
			return err
		}
		if review.UserID != userID {
			return domain.ErrNotOwner
		}

		all, err := tx.ListReviews(ctx)
		if err != nil {
			return err
		}
		remaining := make([]domain.Review, 0, len(all))
		for _, r := range all {
			if r.ID != reviewID {
				remaining = append(remaining, r)
			}
		}

		result.Stats = housing.Stats().WithReviewRemoved(review.Rating)
		result.AggregateReview, err = s.reviewer.AfterDelete(ctx, housing.AggregateReview, remaining)
		if err != nil {
			return err
		}

		if err := tx.DeleteReview(ctx, reviewID); err != nil {
			return err
		}
		if err := tx.SaveAggregates(ctx, result); err != nil {
			return err
		}
		deleted = review
		return nil
	})
	if err != nil {
		return nil, s.mutationFailed("delete", housingID, err)
	}

	s.afterCommit(ctx, domain.EventReviewDeleted, deleted, result.Stats)
	return deleted, nil
}

func (s *ReviewService) Get(ctx context.Context, housingID, reviewID string) (*domain.Review, error) {
	return s.reviews.GetReview(ctx, housingID, reviewID)
}

func (s *ReviewService) List(ctx context.Context, housingID string, query domain.ReviewQuery) (*domain.Page[domain.Review], error) {
	if _, err := s.housings.GetHousing(ctx, housingID); err != nil {
		return nil, err
	}

	query.Limit, query.Offset = domain.NormalizePaging(query.Limit, query.Offset)
	if query.SortBy != domain.SortByPopularity {
		query.SortBy = domain.SortByRecency
	}

	reviews, total, err := s.reviews.ListReviews(ctx, housingID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return &domain.Page[domain.Review]{
		Data:       reviews,
		Limit:      query.Limit,
		Offset:     query.Offset,
		Search:     query.Search,
		TotalCount: total,
	}, nil
}

func (s *ReviewService) Upvote(ctx context.Context, housingID, reviewID string, userID int64) (*domain.Review, error) {
	return s.reviews.UpdateLedger(ctx, housingID, reviewID, func(review *domain.Review) error {
		return review.Upvote(userID)
	})
}

func (s *ReviewService) UndoUpvote(ctx context.Context, housingID, reviewID string, userID int64) (*domain.Review, error) {
	return s.reviews.UpdateLedger(ctx, housingID, reviewID, func(review *domain.Review) error {
		return review.UndoUpvote(userID)
	})
}

func (s *ReviewService) LikedBy(ctx context.Context, housingID, reviewID string) ([]int64, error) {
	review, err := s.reviews.GetReview(ctx, housingID, reviewID)
	if err != nil {
		return nil, err
	}
	if review.LikedBy == nil {
		return []int64{}, nil
	}
	return review.LikedBy, nil
}

func (s *ReviewService) mutationFailed(op, housingID string, err error) error {
	if errors.Is(err, domain.ErrExternalService) {
		logger.Error(logger.EventSummarizerFailure, "review mutation rolled back", logger.Fields(
			"op", op, "housing_id", housingID, "error", err.Error()))
	}
	return err
}

// afterCommit runs the side effects that must not undo a committed mutation.
func (s *ReviewService) afterCommit(ctx context.Context, eventType string, review *domain.Review, stats domain.RatingStats) {
	logger.Info(logger.EventReviewMutation, "review mutation committed", logger.Fields(
		"type", eventType,
		"housing_id", review.HousingID,
		"review_id", review.ID,
		"avg_rating", stats.AvgRating,
		"review_count", stats.ReviewCount,
	))

	if s.cache != nil {
		if err := s.cache.InvalidateHousing(ctx, review.HousingID); err != nil {
			logger.Warn(logger.EventCacheError, "failed to invalidate housing cache", logger.Fields(
				"housing_id", review.HousingID, "error", err.Error()))
		}
	}

	if s.publisher == nil {
		return
	}
	event := domain.ReviewEvent{
		Type:        eventType,
		HousingID:   review.HousingID,
		ReviewID:    review.ID,
		UserID:      review.UserID,
		Rating:      review.Rating,
		AvgRating:   stats.AvgRating,
		ReviewCount: stats.ReviewCount,
		Timestamp:   s.now(),
	}
	if err := s.publisher.PublishReviewEvent(ctx, event); err != nil {
		logger.Warn(logger.EventPublishFailure, "failed to publish review event", logger.Fields(
			"housing_id", review.HousingID, "review_id", review.ID, "error", err.Error()))
	}
}
