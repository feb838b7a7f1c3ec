package domain_test

import (
	"testing"

	"housing-reviews/housing-svc/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestReview_UpvoteTwiceConflicts(t *testing.T) {
	review := &domain.Review{ID: "r-1"}

	assert.NoError(t, review.Upvote(7))
	err := review.Upvote(7)

	assert.ErrorIs(t, err, domain.ErrAlreadyUpvoted)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 1, review.UpvoteCount)
	assert.Equal(t, []int64{7}, review.LikedBy)
}

func TestReview_UndoWithoutVote(t *testing.T) {
	review := &domain.Review{ID: "r-1", LikedBy: []int64{3}, UpvoteCount: 1}

	err := review.UndoUpvote(9)

	assert.ErrorIs(t, err, domain.ErrNotUpvoted)
	assert.Equal(t, 1, review.UpvoteCount)
	assert.Equal(t, []int64{3}, review.LikedBy)
}

func TestReview_LedgerCountMatchesSet(t *testing.T) {
	review := &domain.Review{ID: "r-1"}
	for _, id := range []int64{1, 2, 3, 4} {
		assert.NoError(t, review.Upvote(id))
	}
	assert.NoError(t, review.UndoUpvote(2))
	assert.NoError(t, review.UndoUpvote(4))
	assert.NoError(t, review.Upvote(2))

	assert.Equal(t, len(review.LikedBy), review.UpvoteCount)
	assert.ElementsMatch(t, []int64{1, 3, 2}, review.LikedBy)
	assert.True(t, review.HasUpvoted(2))
	assert.False(t, review.HasUpvoted(4))
}

func TestReview_UndoDoesNotAliasOriginalSlice(t *testing.T) {
	original := []int64{1, 2, 3}
	review := &domain.Review{LikedBy: original, UpvoteCount: 3}

	assert.NoError(t, review.UndoUpvote(1))

	assert.Equal(t, []int64{1, 2, 3}, original)
	assert.Equal(t, []int64{2, 3}, review.LikedBy)
}

func TestNormalizePaging(t *testing.T) {
	limit, offset := domain.NormalizePaging(0, -3)
	assert.Equal(t, domain.DefaultLimit, limit)
	assert.Equal(t, 0, offset)

	limit, offset = domain.NormalizePaging(500, 20)
	assert.Equal(t, domain.MaxLimit, limit)
	assert.Equal(t, 20, offset)
}
