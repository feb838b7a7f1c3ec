package domain

// NotEnoughInformation is returned by the summarization service when the
// reviews are too thin to summarize. It is never stored.
const NotEnoughInformation = "Not enough information to create an aggregate review"

type RatingStats struct {
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int     `json:"reviewCount"`
}

// ClampRating folds negative ratings to zero.
func ClampRating(rating float64) float64 {
	if rating < 0 {
		return 0
	}
	return rating
}

func (s RatingStats) WithReviewAdded(rating float64) RatingStats {
	count := s.ReviewCount
	if count < 0 {
		count = 0
	}
	return RatingStats{
		AvgRating:   (s.AvgRating*float64(count) + rating) / float64(count+1),
		ReviewCount: count + 1,
	}
}

func (s RatingStats) WithReviewRemoved(rating float64) RatingStats {
	remaining := s.ReviewCount - 1
	if remaining <= 0 {
		return RatingStats{AvgRating: 0, ReviewCount: 0}
	}
	return RatingStats{
		AvgRating:   (s.AvgRating*float64(s.ReviewCount) - rating) / float64(remaining),
		ReviewCount: remaining,
	}
}

// ReviewMutationResult is the combined listing update written in the same
// transaction as the review row itself.
type ReviewMutationResult struct {
	Stats           RatingStats
	AggregateReview *string
}
